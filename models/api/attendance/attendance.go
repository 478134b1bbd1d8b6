package attendanceapimodels

import (
	"ets-backend/models"

	"github.com/pkg/errors"
)

type MarkRequest struct {
	UserID string `json:"user_id"` // defaults to the caller
	Date   string `json:"date"`
}

func (r MarkRequest) Validate() error {
	if r.Date == "" {
		return errors.New("date is required")
	}
	return models.ValidateDate(r.Date)
}

type DayView struct {
	Date    string   `json:"date"`
	UserIDs []string `json:"user_ids"`
}

type MonthView struct {
	UserID string   `json:"user_id"`
	Year   int      `json:"year"`
	Month  int      `json:"month"`
	Dates  []string `json:"dates"`
}
