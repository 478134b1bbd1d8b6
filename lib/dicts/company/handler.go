package companyprovider

import (
	"ets-backend/db"
	"ets-backend/lib/dicts/company/store"
	initchecker "ets-backend/lib/utils/init-checker"
	"ets-backend/models"
	dictapimodels "ets-backend/models/api/dict"
	dbmodels "ets-backend/models/db"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(ownerID string, request dictapimodels.CompanyData) (id string, err error)
	Update(id string, request dictapimodels.CompanyData) error
	Get(id string) (item dictapimodels.CompanyView, err error)
	FindByName(request dictapimodels.CompanyData) (list []dictapimodels.CompanyView, err error)
}

var Instance Provider

var ErrCompanyNotFound = models.NotFound("company not found")

func NewHandler() {
	Instance = NewInstance(db.DB)
}

func NewInstance(DB *gorm.DB) Provider {
	instance := impl{
		store: store.NewInstance(DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	return instance
}

type impl struct {
	store store.Provider
}

func (i impl) Create(ownerID string, request dictapimodels.CompanyData) (id string, err error) {
	logger := log.WithField("owner_id", ownerID)
	rec := dbmodels.Company{
		Name:    request.Name,
		OwnerID: ownerID,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	logger.
		WithField("company_name", rec.Name).
		WithField("rec_id", id).
		Info("company created")
	return id, nil
}

func (i impl) Update(id string, request dictapimodels.CompanyData) error {
	logger := log.WithField("rec_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrCompanyNotFound
	}
	updMap := map[string]interface{}{
		"name": request.Name,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	logger.Info("company updated")
	return nil
}

func (i impl) Get(id string) (item dictapimodels.CompanyView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.CompanyView{}, err
	}
	if rec == nil {
		return dictapimodels.CompanyView{}, ErrCompanyNotFound
	}
	return dictapimodels.CompanyConvert(*rec), nil
}

func (i impl) FindByName(request dictapimodels.CompanyData) (list []dictapimodels.CompanyView, err error) {
	recList, err := i.store.FindByName(request.Name)
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.CompanyView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.CompanyConvert(rec))
	}
	return result, nil
}
