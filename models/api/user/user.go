package userapimodels

import (
	"ets-backend/models"
	dbmodels "ets-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type UserView struct {
	ID              string                    `json:"id"`
	Name            string                    `json:"name"`
	Email           string                    `json:"email"`
	Role            models.UserRole           `json:"role"`
	CompanyID       string                    `json:"company_id,omitempty"`
	ManagerID       string                    `json:"manager_id,omitempty"`
	DepartmentIDs   []string                  `json:"department_ids"`
	JobTitle        string                    `json:"job_title,omitempty"`
	Status          models.UserStatus         `json:"status,omitempty"`
	JoinedDate      time.Time                 `json:"joined_date"`
	Skills          []string                  `json:"skills"`
	Stats           dbmodels.UserStats        `json:"stats"`
	PersonalDetails *dbmodels.PersonalDetails `json:"personal_details,omitempty"`
	ContactNumber   string                    `json:"contact_number,omitempty"`
	Address         *dbmodels.Address         `json:"address,omitempty"`
	FamilyMembers   []dbmodels.FamilyMember   `json:"family_members,omitempty"`
	Education       []dbmodels.Education      `json:"education,omitempty"`
	Compensation    *dbmodels.Compensation    `json:"compensation,omitempty"`
	Documents       []dbmodels.Document       `json:"documents,omitempty"`
	Rating          float64                   `json:"rating,omitempty"`
	IsOnline        bool                      `json:"is_online"` // has an open websocket session
}

func UserConvert(rec dbmodels.User) UserView {
	return UserView{
		ID:              rec.ID,
		Name:            rec.Name,
		Email:           rec.Email,
		Role:            rec.Role,
		CompanyID:       rec.CompanyID,
		ManagerID:       rec.ManagerID,
		DepartmentIDs:   nonNil(rec.DepartmentIDs.Data()),
		JobTitle:        rec.JobTitle,
		Status:          rec.Status,
		JoinedDate:      rec.JoinedDate,
		Skills:          nonNil(rec.Skills.Data()),
		Stats:           rec.Stats.Data(),
		PersonalDetails: rec.PersonalDetails.Data(),
		ContactNumber:   rec.ContactNumber,
		Address:         rec.Address.Data(),
		FamilyMembers:   rec.FamilyMembers.Data(),
		Education:       rec.Education.Data(),
		Compensation:    rec.Compensation.Data(),
		Documents:       rec.Documents.Data(),
		Rating:          rec.Rating,
	}
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

// UserUpdate is a partial update: nil fields stay untouched.
type UserUpdate struct {
	Name            *string                   `json:"name"`
	Role            *models.UserRole          `json:"role"`
	CompanyID       *string                   `json:"company_id"`
	ManagerID       *string                   `json:"manager_id"`
	DepartmentIDs   *[]string                 `json:"department_ids"`
	JobTitle        *string                   `json:"job_title"`
	Status          *models.UserStatus        `json:"status"`
	Skills          *[]string                 `json:"skills"`
	PersonalDetails *dbmodels.PersonalDetails `json:"personal_details"`
	ContactNumber   *string                   `json:"contact_number"`
	Address         *dbmodels.Address         `json:"address"`
	FamilyMembers   *[]dbmodels.FamilyMember  `json:"family_members"`
	Education       *[]dbmodels.Education     `json:"education"`
	Compensation    *dbmodels.Compensation    `json:"compensation"`
	Documents       *[]dbmodels.Document      `json:"documents"`
	Rating          *float64                  `json:"rating"`
}

func (r UserUpdate) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return errors.New("name must not be empty")
	}
	if r.Role != nil && !r.Role.IsValid() {
		return errors.New("unknown role")
	}
	if r.Status != nil && !r.Status.IsValid() {
		return errors.New("unknown user status")
	}
	return nil
}

func (r UserUpdate) ToUpdMap() map[string]interface{} {
	updMap := map[string]interface{}{}
	if r.Name != nil {
		updMap["name"] = *r.Name
	}
	if r.Role != nil {
		updMap["role"] = *r.Role
	}
	if r.CompanyID != nil {
		updMap["company_id"] = *r.CompanyID
	}
	if r.ManagerID != nil {
		updMap["manager_id"] = *r.ManagerID
	}
	if r.DepartmentIDs != nil {
		updMap["department_ids"] = dbmodels.NewStringList(*r.DepartmentIDs)
	}
	if r.JobTitle != nil {
		updMap["job_title"] = *r.JobTitle
	}
	if r.Status != nil {
		updMap["status"] = *r.Status
	}
	if r.Skills != nil {
		updMap["skills"] = dbmodels.NewStringList(*r.Skills)
	}
	if r.PersonalDetails != nil {
		updMap["personal_details"] = dbmodels.NewJSONType(r.PersonalDetails)
	}
	if r.ContactNumber != nil {
		updMap["contact_number"] = *r.ContactNumber
	}
	if r.Address != nil {
		updMap["address"] = dbmodels.NewJSONType(r.Address)
	}
	if r.FamilyMembers != nil {
		updMap["family_members"] = dbmodels.NewJSONType(*r.FamilyMembers)
	}
	if r.Education != nil {
		updMap["education"] = dbmodels.NewJSONType(*r.Education)
	}
	if r.Compensation != nil {
		updMap["compensation"] = dbmodels.NewJSONType(r.Compensation)
	}
	if r.Documents != nil {
		updMap["documents"] = dbmodels.NewJSONType(*r.Documents)
	}
	if r.Rating != nil {
		updMap["rating"] = *r.Rating
	}
	return updMap
}

type UserFilter struct {
	Role      models.UserRole `json:"role"`
	CompanyID string          `json:"company_id"`
	ManagerID string          `json:"manager_id"`
}
