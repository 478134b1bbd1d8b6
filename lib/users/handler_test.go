package usersprovider

import (
	"ets-backend/db/dbtest"
	"ets-backend/models"
	authapimodels "ets-backend/models/api/auth"
	userapimodels "ets-backend/models/api/user"
	dbmodels "ets-backend/models/db"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type presenceStub map[string]bool

func (p presenceStub) IsConnected(userID string) bool {
	return p[userID]
}

func TestUsers(t *testing.T) {
	DB := dbtest.NewSeeded(t)
	handler := NewInstance(DB, bcrypt.MinCost, presenceStub{"3": true})
	var registeredID string

	t.Run("seeded login check", func(t *testing.T) {
		user, err := handler.Login("hr@test.com", "password123")
		require.NoError(t, err)
		require.Equal(t, "8", user.ID)
		require.Equal(t, models.HRRole, user.Role)
	})
	t.Run("wrong password check", func(t *testing.T) {
		_, err := handler.Login("hr@test.com", "password")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		require.Equal(t, "Invalid email or password.", err.Error())
		_, err = handler.Login("nobody@test.com", "password123")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
	t.Run("register defaults check", func(t *testing.T) {
		user, err := handler.Register(authapimodels.RegisterRequest{
			Name:      "Nina New",
			Email:     "nina@test.com",
			Password:  "secret1",
			Role:      models.EmployeeRole,
			ManagerID: "2",
			CompanyID: "comp-1",
		})
		require.NoError(t, err)
		require.NotEmpty(t, user.ID)
		registeredID = user.ID
		require.Equal(t, models.DefaultJobTitle, user.JobTitle)
		require.Equal(t, models.UserActiveStatus, user.Status)
		require.Empty(t, user.Skills)
		require.Equal(t, dbmodels.UserStats{Workload: models.WorkloadLight}, user.Stats)
		require.False(t, user.JoinedDate.IsZero())

		got, err := handler.Get(user.ID)
		require.NoError(t, err)
		require.Equal(t, "nina@test.com", got.Email)

		_, err = handler.Login("nina@test.com", "secret1")
		require.NoError(t, err)
	})
	t.Run("register duplicate email check", func(t *testing.T) {
		_, err := handler.Register(authapimodels.RegisterRequest{
			Name:     "Copy",
			Email:    "admin@test.com",
			Password: "secret1",
			Role:     models.AdminRole,
		})
		require.ErrorIs(t, err, ErrEmailExists)
		require.Equal(t, "An account with this email already exists.", err.Error())
	})
	t.Run("register unknown manager check", func(t *testing.T) {
		_, err := handler.Register(authapimodels.RegisterRequest{
			Name:      "Orphan",
			Email:     "orphan@test.com",
			Password:  "secret1",
			Role:      models.EmployeeRole,
			ManagerID: "missing",
		})
		require.ErrorIs(t, err, ErrManagerNotFound)
	})
	t.Run("update password check", func(t *testing.T) {
		err := handler.UpdatePassword("drone@example.com", "wrong", "another1")
		require.ErrorIs(t, err, ErrIncorrectPassword)
		err = handler.UpdatePassword("drone@example.com", "password123", "short")
		require.ErrorIs(t, err, ErrPasswordTooShort)
		err = handler.UpdatePassword("drone@example.com", "password123", "another1")
		require.NoError(t, err)
		_, err = handler.Login("drone@example.com", "password123")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		_, err = handler.Login("drone@example.com", "another1")
		require.NoError(t, err)
	})
	t.Run("partial update check", func(t *testing.T) {
		title := "Senior Designer"
		skills := []string{"Figma"}
		user, err := handler.Update("4", userapimodels.UserUpdate{
			JobTitle: &title,
			Skills:   &skills,
			Address:  &dbmodels.Address{City: "Austin"},
		})
		require.NoError(t, err)
		require.Equal(t, title, user.JobTitle)
		require.Equal(t, skills, user.Skills)
		require.Equal(t, "Austin", user.Address.City)
		require.Equal(t, "Sarah Chen", user.Name)
		require.Equal(t, []string{"dept-5"}, user.DepartmentIDs)

		_, err = handler.Update("missing", userapimodels.UserUpdate{JobTitle: &title})
		require.ErrorIs(t, err, ErrUserNotFound)
	})
	t.Run("team and managers check", func(t *testing.T) {
		team, err := handler.TeamMembers("2")
		require.NoError(t, err)
		ids := []string{}
		for _, member := range team {
			ids = append(ids, member.ID)
		}
		require.ElementsMatch(t, []string{"3", "4", "5", "6", registeredID}, ids)

		managers, err := handler.Managers()
		require.NoError(t, err)
		require.Len(t, managers, 1)
		require.Equal(t, "2", managers[0].ID)
	})
	t.Run("online flag check", func(t *testing.T) {
		user, err := handler.Get("3")
		require.NoError(t, err)
		require.True(t, user.IsOnline)
		user, err = handler.Get("4")
		require.NoError(t, err)
		require.False(t, user.IsOnline)
	})
	t.Run("delete removes password check", func(t *testing.T) {
		require.NoError(t, handler.Delete("6"))

		_, err := handler.Get("6")
		require.True(t, errors.Is(err, models.ErrNotFound))
		list, err := handler.List(userapimodels.UserFilter{})
		require.NoError(t, err)
		for _, user := range list {
			require.NotEqual(t, "6", user.ID)
		}
		var count int64
		require.NoError(t, DB.Model(&dbmodels.UserPassword{}).Where("email = ?", "jessica.b@test.com").Count(&count).Error)
		require.Zero(t, count)

		// assigned tasks are left untouched
		var task dbmodels.Task
		require.NoError(t, DB.First(&task, "id = ?", "task-7").Error)
		require.Equal(t, "6", *task.AssigneeID)

		require.ErrorIs(t, handler.Delete("6"), ErrUserNotFound)
	})
}
