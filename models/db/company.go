package dbmodels

import (
	"github.com/pkg/errors"
)

type Company struct {
	BaseModel
	Name    string `gorm:"type:varchar(255)"`
	OwnerID string `gorm:"type:varchar(36)"`
}

func (c *Company) Validate() error {
	if c.Name == "" {
		return errors.New("company name is required")
	}
	return nil
}
