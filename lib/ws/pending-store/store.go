package pendingstore

import (
	dbmodels "ets-backend/models/db"
	"time"

	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.PendingEvent) error
	List(userID string) ([]dbmodels.PendingEvent, error)
	Delete(ids []string) error
	// DeleteOlderThan drops events nobody picked up before the given moment.
	DeleteOlderThan(before time.Time) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.PendingEvent) error {
	return i.db.
		Save(&rec).
		Error
}

func (i impl) List(userID string) (list []dbmodels.PendingEvent, err error) {
	tx := i.db.Model(dbmodels.PendingEvent{})
	err = tx.
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(ids []string) error {
	return i.db.Delete(&dbmodels.PendingEvent{}, "id in (?)", ids).Error
}

func (i impl) DeleteOlderThan(before time.Time) (int64, error) {
	tx := i.db.Where("created_at < ?", before).Delete(&dbmodels.PendingEvent{})
	return tx.RowsAffected, tx.Error
}
