package dictapimodels

import (
	dbmodels "ets-backend/models/db"

	"github.com/pkg/errors"
)

type DepartmentData struct {
	Name      string `json:"name"`
	CompanyID string `json:"company_id"`
}

type DepartmentView struct {
	DepartmentData
	ID string `json:"id"`
}

type DepartmentFind struct {
	Name      string `json:"name"`
	CompanyID string `json:"company_id"`
}

func (c DepartmentData) Validate() error {
	if c.CompanyID == "" {
		return errors.New("company reference is missing")
	}
	if c.Name == "" {
		return errors.New("department name is required")
	}
	return nil
}

func DepartmentConvert(rec dbmodels.Department) DepartmentView {
	return DepartmentView{
		DepartmentData: DepartmentData{
			Name:      rec.Name,
			CompanyID: rec.CompanyID,
		},
		ID: rec.ID,
	}
}
