package models

import (
	"time"

	"github.com/pkg/errors"
)

const DateLayout = "2006-01-02"

// ValidateDate accepts an empty value or a YYYY-MM-DD date.
func ValidateDate(value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		return errors.New("date must be in YYYY-MM-DD format")
	}
	return nil
}
