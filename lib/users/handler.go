package usersprovider

import (
	"ets-backend/db"
	"ets-backend/lib/users/store"
	initchecker "ets-backend/lib/utils/init-checker"
	connectionhub "ets-backend/lib/ws/hub/connection-hub"
	"ets-backend/models"
	authapimodels "ets-backend/models/api/auth"
	userapimodels "ets-backend/models/api/user"
	dbmodels "ets-backend/models/db"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Provider interface {
	Register(request authapimodels.RegisterRequest) (user userapimodels.UserView, err error)
	Login(email, password string) (user userapimodels.UserView, err error)
	UpdatePassword(email, currentPassword, newPassword string) error
	Update(id string, request userapimodels.UserUpdate) (user userapimodels.UserView, err error)
	Delete(id string) error
	Get(id string) (user userapimodels.UserView, err error)
	List(filter userapimodels.UserFilter) (list []userapimodels.UserView, err error)
	TeamMembers(managerID string) (list []userapimodels.UserView, err error)
	Managers() (list []userapimodels.UserView, err error)
}

// Presence reports whether a user has a live connection.
type Presence interface {
	IsConnected(userID string) bool
}

var Instance Provider

const minPasswordLength = 6

var (
	ErrUserNotFound       = models.NotFound("user not found")
	ErrEmailExists        = models.BadRequest("An account with this email already exists.")
	ErrInvalidCredentials = models.BadRequest("Invalid email or password.")
	ErrIncorrectPassword  = models.BadRequest("Incorrect current password.")
	ErrPasswordTooShort   = models.BadRequest("New password must be at least 6 characters long.")
	ErrManagerNotFound    = models.BadRequest("manager not found")
)

func NewHandler() {
	Instance = NewInstance(db.DB, bcrypt.DefaultCost, connectionhub.Instance)
}

func NewInstance(DB *gorm.DB, bcryptCost int, presence Presence) Provider {
	instance := impl{
		store:      store.NewInstance(DB),
		bcryptCost: bcryptCost,
		presence:   presence,
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	return instance
}

type impl struct {
	store      store.Provider
	bcryptCost int
	presence   Presence
}

func (i impl) getLogger(userID, email string) *log.Entry {
	logger := log.NewEntry(log.StandardLogger())
	if userID != "" {
		logger = logger.WithField("user_id", userID)
	}
	if email != "" {
		logger = logger.WithField("email", email)
	}
	return logger
}

func (i impl) Register(request authapimodels.RegisterRequest) (user userapimodels.UserView, err error) {
	logger := i.getLogger("", request.Email)
	existed, err := i.store.GetByEmail(request.Email)
	if err != nil {
		return userapimodels.UserView{}, err
	}
	if existed != nil {
		return userapimodels.UserView{}, ErrEmailExists
	}
	if request.ManagerID != "" {
		manager, err := i.store.GetByID(request.ManagerID)
		if err != nil {
			return userapimodels.UserView{}, err
		}
		if manager == nil {
			return userapimodels.UserView{}, ErrManagerNotFound
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), i.bcryptCost)
	if err != nil {
		return userapimodels.UserView{}, errors.Wrap(err, "failed to hash password")
	}
	rec := dbmodels.User{
		Name:          request.Name,
		Email:         request.Email,
		Role:          request.Role,
		CompanyID:     request.CompanyID,
		ManagerID:     request.ManagerID,
		DepartmentIDs: dbmodels.NewStringList(request.DepartmentIDs),
		JobTitle:      models.DefaultJobTitle,
		Status:        models.UserActiveStatus,
		JoinedDate:    time.Now(),
		Skills:        dbmodels.NewStringList(nil),
		Stats: dbmodels.NewJSONType(dbmodels.UserStats{
			Workload: models.WorkloadLight,
		}),
	}
	id, err := i.store.Create(rec, string(hash))
	if err != nil {
		return userapimodels.UserView{}, err
	}
	rec.ID = id
	logger.
		WithField("user_id", id).
		WithField("role", rec.Role).
		Info("user registered")
	return i.convert(rec), nil
}

func (i impl) Login(email, password string) (user userapimodels.UserView, err error) {
	rec, err := i.store.GetByEmail(email)
	if err != nil {
		return userapimodels.UserView{}, err
	}
	if rec == nil {
		return userapimodels.UserView{}, ErrInvalidCredentials
	}
	ok, err := i.checkPassword(email, password)
	if err != nil {
		return userapimodels.UserView{}, err
	}
	if !ok {
		i.getLogger(rec.ID, email).Warn("login with wrong password")
		return userapimodels.UserView{}, ErrInvalidCredentials
	}
	return i.convert(*rec), nil
}

func (i impl) UpdatePassword(email, currentPassword, newPassword string) error {
	ok, err := i.checkPassword(email, currentPassword)
	if err != nil {
		return err
	}
	if !ok {
		return ErrIncorrectPassword
	}
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), i.bcryptCost)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}
	err = i.store.SetPasswordHash(email, string(hash))
	if err != nil {
		return err
	}
	i.getLogger("", email).Info("password updated")
	return nil
}

func (i impl) checkPassword(email, password string) (bool, error) {
	hash, err := i.store.GetPasswordHash(email)
	if err != nil {
		return false, err
	}
	if hash == "" {
		return false, nil
	}
	err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (i impl) Update(id string, request userapimodels.UserUpdate) (user userapimodels.UserView, err error) {
	logger := i.getLogger(id, "")
	rec, err := i.store.GetByID(id)
	if err != nil {
		return userapimodels.UserView{}, err
	}
	if rec == nil {
		return userapimodels.UserView{}, ErrUserNotFound
	}
	err = i.store.Update(id, request.ToUpdMap())
	if err != nil {
		return userapimodels.UserView{}, err
	}
	logger.Info("user updated")
	return i.Get(id)
}

// Delete does not touch tasks assigned to the user.
func (i impl) Delete(id string) error {
	logger := i.getLogger(id, "")
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrUserNotFound
	}
	err = i.store.Delete(*rec)
	if err != nil {
		return err
	}
	logger.Info("user deleted")
	return nil
}

func (i impl) Get(id string) (user userapimodels.UserView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return userapimodels.UserView{}, err
	}
	if rec == nil {
		return userapimodels.UserView{}, ErrUserNotFound
	}
	return i.convert(*rec), nil
}

func (i impl) List(filter userapimodels.UserFilter) (list []userapimodels.UserView, err error) {
	recList, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	result := make([]userapimodels.UserView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, i.convert(rec))
	}
	return result, nil
}

func (i impl) TeamMembers(managerID string) (list []userapimodels.UserView, err error) {
	return i.List(userapimodels.UserFilter{
		Role:      models.EmployeeRole,
		ManagerID: managerID,
	})
}

func (i impl) Managers() (list []userapimodels.UserView, err error) {
	return i.List(userapimodels.UserFilter{
		Role: models.ManagerRole,
	})
}

func (i impl) convert(rec dbmodels.User) userapimodels.UserView {
	view := userapimodels.UserConvert(rec)
	if i.presence != nil {
		view.IsOnline = i.presence.IsConnected(rec.ID)
	}
	return view
}
