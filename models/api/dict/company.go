package dictapimodels

import (
	dbmodels "ets-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type CompanyData struct {
	Name string `json:"name"`
}

type CompanyView struct {
	CompanyData
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *CompanyData) Validate() error {
	if c.Name == "" {
		return errors.New("company name is required")
	}
	return nil
}

func CompanyConvert(rec dbmodels.Company) CompanyView {
	return CompanyView{
		CompanyData: CompanyData{
			Name: rec.Name,
		},
		ID:        rec.ID,
		OwnerID:   rec.OwnerID,
		CreatedAt: rec.CreatedAt,
	}
}
