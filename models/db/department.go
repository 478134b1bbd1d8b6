package dbmodels

import (
	"github.com/pkg/errors"
)

// Department deletion does not cascade: projects and users keep their references.
type Department struct {
	BaseModel
	CompanyID string `gorm:"type:varchar(36);index:idx_company"`
	Name      string `gorm:"type:varchar(255)"`
}

func (d *Department) Validate() error {
	if d.CompanyID == "" {
		return errors.New("company reference is missing")
	}
	if d.Name == "" {
		return errors.New("department name is required")
	}
	return nil
}
