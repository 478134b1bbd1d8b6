package departmentprovider

import (
	"ets-backend/db/dbtest"
	"ets-backend/models"
	dictapimodels "ets-backend/models/api/dict"
	dbmodels "ets-backend/models/db"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestDepartments(t *testing.T) {
	tx := dbtest.NewSeeded(t)
	handler := NewInstance(tx)

	t.Run("find by company check", func(t *testing.T) {
		list, err := handler.Find(dictapimodels.DepartmentFind{CompanyID: "comp-1"})
		require.NoError(t, err)
		require.Len(t, list, 8)

		list, err = handler.Find(dictapimodels.DepartmentFind{CompanyID: "comp-1", Name: "sales"})
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "dept-6", list[0].ID)
	})
	t.Run("name unique within company check", func(t *testing.T) {
		_, err := handler.Create(dictapimodels.DepartmentData{CompanyID: "comp-1", Name: "Sales"})
		require.True(t, errors.Is(err, models.ErrBadRequest))

		id, err := handler.Create(dictapimodels.DepartmentData{CompanyID: "comp-1", Name: "Legal"})
		require.NoError(t, err)
		require.NotEmpty(t, id)

		err = handler.Update(id, dictapimodels.DepartmentData{Name: "Marketing"})
		require.True(t, errors.Is(err, models.ErrBadRequest))
		require.NoError(t, handler.Update(id, dictapimodels.DepartmentData{Name: "Legal & Compliance"}))

		got, err := handler.Get(id)
		require.NoError(t, err)
		require.Equal(t, "Legal & Compliance", got.Name)
	})
	t.Run("unknown company check", func(t *testing.T) {
		_, err := handler.Create(dictapimodels.DepartmentData{CompanyID: "comp-x", Name: "Legal"})
		require.True(t, errors.Is(err, models.ErrBadRequest))
	})
	t.Run("delete keeps project references check", func(t *testing.T) {
		require.NoError(t, handler.Delete("dept-5"))
		_, err := handler.Get("dept-5")
		require.True(t, errors.Is(err, ErrDepartmentNotFound))

		project := dbmodels.Project{}
		require.NoError(t, tx.Preload("Departments").Where("id = ?", "proj-2").First(&project).Error)
		require.Contains(t, project.DepartmentIDs(), "dept-5")

		err = handler.Delete("dept-5")
		require.True(t, errors.Is(err, models.ErrNotFound))
	})
}
