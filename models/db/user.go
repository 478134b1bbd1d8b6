package dbmodels

import (
	"ets-backend/models"
	"time"

	"github.com/pkg/errors"
)

type User struct {
	BaseModel
	Name            string          `gorm:"type:varchar(255)"`
	Email           string          `gorm:"type:varchar(255);uniqueIndex"`
	Role            models.UserRole `gorm:"type:varchar(20);index"`
	CompanyID       string          `gorm:"type:varchar(36);index"`
	ManagerID       string          `gorm:"type:varchar(36);index"`
	DepartmentIDs   StringList
	JobTitle        string            `gorm:"type:varchar(255)"`
	Status          models.UserStatus `gorm:"type:varchar(20)"`
	JoinedDate      time.Time
	Skills          StringList
	Stats           JSONType[UserStats]
	PersonalDetails JSONType[*PersonalDetails]
	ContactNumber   string `gorm:"type:varchar(50)"`
	Address         JSONType[*Address]
	FamilyMembers   JSONType[[]FamilyMember]
	Education       JSONType[[]Education]
	Compensation    JSONType[*Compensation]
	Documents       JSONType[[]Document]
	Rating          float64
}

func (u *User) Validate() error {
	if u.Name == "" {
		return errors.New("name is required")
	}
	if u.Email == "" {
		return errors.New("email is required")
	}
	if !u.Role.IsValid() {
		return errors.Errorf("unknown role %q", u.Role)
	}
	return nil
}

// UserPassword is the password map: one bcrypt hash per email.
type UserPassword struct {
	Email     string `gorm:"primaryKey;type:varchar(255)"`
	Hash      string `gorm:"type:varchar(100)"`
	UpdatedAt time.Time
}

type UserStats struct {
	CompletedTasks  int             `json:"completedTasks"`
	InProgressTasks int             `json:"inProgressTasks"`
	Efficiency      int             `json:"efficiency"`
	TotalHours      int             `json:"totalHours"`
	Workload        models.Workload `json:"workload"`
}

type PersonalDetails struct {
	DateOfBirth   string `json:"dateOfBirth"`
	Nationality   string `json:"nationality"`
	MaritalStatus string `json:"maritalStatus"`
	Gender        string `json:"gender"`
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type FamilyMember struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	DateOfBirth  string `json:"dateOfBirth"`
}

type Education struct {
	ID               string `json:"id"`
	Degree           string `json:"degree"`
	Institution      string `json:"institution"`
	YearOfCompletion int    `json:"yearOfCompletion"`
}

type BankDetails struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	IfscCode      string `json:"ifscCode"`
}

type Compensation struct {
	Salary       float64     `json:"salary"`
	PayFrequency string      `json:"payFrequency"`
	BankDetails  BankDetails `json:"bankDetails"`
}

type Document struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"` // Pending | Submitted | Verified
	URL    string `json:"url,omitempty"`
}
