package store

import (
	"ets-backend/models"
	dbmodels "ets-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Department) (id string, err error)
	GetByID(id string) (rec *dbmodels.Department, err error)
	Find(companyID, name string) (list []dbmodels.Department, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Department) (id string, err error) {
	err = rec.Validate()
	if err != nil {
		return "", models.BadRequest(err.Error())
	}
	err = i.isUnique(rec.CompanyID, "", rec.Name)
	if err != nil {
		return "", err
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Department, error) {
	rec := dbmodels.Department{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) Find(companyID, name string) (list []dbmodels.Department, err error) {
	list = []dbmodels.Department{}
	tx := i.db.Model(dbmodels.Department{})
	if companyID != "" {
		tx = tx.Where("company_id = ?", companyID)
	}
	if name != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
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
	name, ok := updMap["name"]
	if ok {
		rec, err := i.GetByID(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return models.NotFound("department not found")
		}
		err = i.isUnique(rec.CompanyID, id, name.(string))
		if err != nil {
			return err
		}
	}
	return i.db.
		Model(&dbmodels.Department{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Department{
		BaseModel: dbmodels.BaseModel{
			ID: id,
		},
	}
	return i.db.
		Delete(&rec).
		Error
}

func (i impl) isUnique(companyID string, selfID, name string) error {
	var rowCount int64
	tx := i.db.Model(dbmodels.Department{}).
		Where("company_id = ?", companyID).
		Where("name = ?", name)
	if selfID != "" {
		tx = tx.Where("id <> ?", selfID)
	}
	err := tx.Count(&rowCount).Error
	if err != nil {
		return errors.Wrap(err, "failed to check department name")
	}
	if rowCount != 0 {
		return models.BadRequest("department already exists")
	}
	return nil
}
