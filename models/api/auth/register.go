package authapimodels

import (
	"ets-backend/models"
	"net/mail"

	"github.com/pkg/errors"
)

type RegisterRequest struct {
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Password      string          `json:"password"`
	Role          models.UserRole `json:"role"`
	ManagerID     string          `json:"manager_id"`
	DepartmentIDs []string        `json:"department_ids"`
	CompanyID     string          `json:"company_id"`
}

func (r RegisterRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("email has an invalid format")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	if !r.Role.IsValid() {
		return errors.New("unknown role")
	}
	return nil
}
