package departmentprovider

import (
	"ets-backend/db"
	companystore "ets-backend/lib/dicts/company/store"
	"ets-backend/lib/dicts/department/store"
	initchecker "ets-backend/lib/utils/init-checker"
	"ets-backend/models"
	dictapimodels "ets-backend/models/api/dict"
	dbmodels "ets-backend/models/db"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(request dictapimodels.DepartmentData) (id string, err error)
	Update(id string, request dictapimodels.DepartmentData) error
	Get(id string) (item dictapimodels.DepartmentView, err error)
	Find(request dictapimodels.DepartmentFind) (list []dictapimodels.DepartmentView, err error)
	Delete(id string) error
}

var Instance Provider

var ErrDepartmentNotFound = models.NotFound("department not found")

func NewHandler() {
	Instance = NewInstance(db.DB)
}

func NewInstance(DB *gorm.DB) Provider {
	instance := impl{
		store:        store.NewInstance(DB),
		companyStore: companystore.NewInstance(DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"companyStore", instance.companyStore,
	)
	return instance
}

type impl struct {
	store        store.Provider
	companyStore companystore.Provider
}

func (i impl) Create(request dictapimodels.DepartmentData) (id string, err error) {
	logger := log.WithField("company_id", request.CompanyID)
	company, err := i.companyStore.GetByID(request.CompanyID)
	if err != nil {
		return "", err
	}
	if company == nil {
		return "", models.BadRequest("company not found")
	}
	rec := dbmodels.Department{
		CompanyID: request.CompanyID,
		Name:      request.Name,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	logger.
		WithField("department_name", rec.Name).
		WithField("rec_id", id).
		Info("department created")
	return id, nil
}

// Update renames a department. The company it belongs to never changes.
func (i impl) Update(id string, request dictapimodels.DepartmentData) error {
	logger := log.WithField("rec_id", id)
	updMap := map[string]interface{}{
		"name": request.Name,
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	logger.Info("department updated")
	return nil
}

func (i impl) Get(id string) (item dictapimodels.DepartmentView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.DepartmentView{}, err
	}
	if rec == nil {
		return dictapimodels.DepartmentView{}, ErrDepartmentNotFound
	}
	return dictapimodels.DepartmentConvert(*rec), nil
}

func (i impl) Find(request dictapimodels.DepartmentFind) (list []dictapimodels.DepartmentView, err error) {
	recList, err := i.store.Find(request.CompanyID, request.Name)
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.DepartmentView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.DepartmentConvert(rec))
	}
	return result, nil
}

// Delete leaves project and user references to the department in place.
func (i impl) Delete(id string) error {
	logger := log.WithField("rec_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrDepartmentNotFound
	}
	err = i.store.Delete(id)
	if err != nil {
		return err
	}
	logger.Info("department deleted")
	return nil
}
