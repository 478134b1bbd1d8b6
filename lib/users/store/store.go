package store

import (
	"ets-backend/models"
	userapimodels "ets-backend/models/api/user"
	dbmodels "ets-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	// Create stores the user and the password hash in one transaction.
	Create(rec dbmodels.User, passwordHash string) (id string, err error)
	GetByID(id string) (rec *dbmodels.User, err error)
	GetByEmail(email string) (rec *dbmodels.User, err error)
	List(filter userapimodels.UserFilter) (list []dbmodels.User, err error)
	Update(id string, updMap map[string]interface{}) error
	// Delete removes the user together with the password entry.
	Delete(rec dbmodels.User) error
	GetPasswordHash(email string) (hash string, err error)
	SetPasswordHash(email, hash string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User, passwordHash string) (id string, err error) {
	err = rec.Validate()
	if err != nil {
		return "", models.BadRequest(err.Error())
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}
		return tx.
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(&dbmodels.UserPassword{Email: rec.Email, Hash: passwordHash}).
			Error
	})
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.User, error) {
	return i.getBy("id = ?", id)
}

func (i impl) GetByEmail(email string) (*dbmodels.User, error) {
	return i.getBy("email = ?", email)
}

func (i impl) getBy(query string, arg string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
		Where(query, arg).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(filter userapimodels.UserFilter) (list []dbmodels.User, err error) {
	list = []dbmodels.User{}
	tx := i.db.Model(dbmodels.User{})
	if filter.Role != "" {
		tx = tx.Where("role = ?", filter.Role)
	}
	if filter.CompanyID != "" {
		tx = tx.Where("company_id = ?", filter.CompanyID)
	}
	if filter.ManagerID != "" {
		tx = tx.Where("manager_id = ?", filter.ManagerID)
	}
	err = tx.
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.User{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(rec dbmodels.User) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("email = ?", rec.Email).
			Delete(&dbmodels.UserPassword{}).
			Error
		if err != nil {
			return err
		}
		return tx.
			Delete(&dbmodels.User{}, "id = ?", rec.ID).
			Error
	})
}

func (i impl) GetPasswordHash(email string) (string, error) {
	rec := dbmodels.UserPassword{}
	err := i.db.
		Where("email = ?", email).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return rec.Hash, nil
}

func (i impl) SetPasswordHash(email, hash string) error {
	return i.db.
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dbmodels.UserPassword{Email: email, Hash: hash}).
		Error
}
