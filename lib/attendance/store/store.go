package store

import (
	dbmodels "ets-backend/models/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	// Mark is idempotent per user and date.
	Mark(rec dbmodels.Attendance) error
	UserIDsByDate(date string) ([]string, error)
	// DatesByPrefix returns a user's dates starting with prefix (YYYY-MM-), ascending.
	DatesByPrefix(userID, prefix string) ([]string, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Mark(rec dbmodels.Attendance) error {
	return i.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoNothing: true,
		}).
		Create(&rec).
		Error
}

func (i impl) UserIDsByDate(date string) ([]string, error) {
	list := []string{}
	err := i.db.
		Model(&dbmodels.Attendance{}).
		Where("date = ?", date).
		Order("user_id").
		Pluck("user_id", &list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) DatesByPrefix(userID, prefix string) ([]string, error) {
	list := []string{}
	err := i.db.
		Model(&dbmodels.Attendance{}).
		Where("user_id = ? AND date LIKE ?", userID, prefix+"%").
		Order("date").
		Pluck("date", &list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
