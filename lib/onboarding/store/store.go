package store

import (
	"ets-backend/models"
	onboardingapimodels "ets-backend/models/api/onboarding"
	dbmodels "ets-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.OnboardingSubmission) (id string, err error)
	GetByID(id string) (rec *dbmodels.OnboardingSubmission, err error)
	List(filter onboardingapimodels.SubmissionFilter) (list []dbmodels.OnboardingSubmission, err error)
	Start(id string, steps []dbmodels.OnboardingStep) error
	SaveStep(step dbmodels.OnboardingStep, status models.OnboardingStatus) error
	Update(id string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.OnboardingSubmission) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) preload(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Steps", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func (i impl) GetByID(id string) (*dbmodels.OnboardingSubmission, error) {
	rec := dbmodels.OnboardingSubmission{}
	err := i.preload(i.db).
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

func (i impl) List(filter onboardingapimodels.SubmissionFilter) (list []dbmodels.OnboardingSubmission, err error) {
	list = []dbmodels.OnboardingSubmission{}
	tx := i.preload(i.db.Model(dbmodels.OnboardingSubmission{}))
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	err = tx.
		Order("submission_date desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ErrNotPendingReview is returned by Start when another caller has already started the submission.
var ErrNotPendingReview = models.BadRequest("submission is no longer pending review")

func (i impl) Start(id string, steps []dbmodels.OnboardingStep) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		// the status guard makes a concurrent second start a no-op
		result := tx.
			Model(&dbmodels.OnboardingSubmission{}).
			Where("id = ? AND status = ?", id, models.OnboardingPendingReview).
			Update("status", models.OnboardingInProgress)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotPendingReview
		}
		return tx.Create(&steps).Error
	})
}

func (i impl) SaveStep(step dbmodels.OnboardingStep, status models.OnboardingStatus) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Model(&dbmodels.OnboardingStep{}).
			Where("id = ?", step.ID).
			Updates(map[string]interface{}{
				"status":       step.Status,
				"completed_by": step.CompletedBy,
				"completed_at": step.CompletedAt,
			}).
			Error
		if err != nil {
			return err
		}
		return tx.
			Model(&dbmodels.OnboardingSubmission{}).
			Where("id = ?", step.SubmissionID).
			Update("status", status).
			Error
	})
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.OnboardingSubmission{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}
