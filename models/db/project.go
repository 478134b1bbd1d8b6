package dbmodels

import (
	"ets-backend/models"

	"github.com/pkg/errors"
)

type Project struct {
	BaseModel
	Name          string `gorm:"type:varchar(255)"`
	Description   string
	ManagerID     string          `gorm:"type:varchar(36);index"`
	CompanyID     string          `gorm:"type:varchar(36);index"`
	Deadline      string          `gorm:"type:varchar(10)"`
	Priority      models.Priority `gorm:"type:varchar(10)"`
	EstimatedTime float64
	Departments   []ProjectDepartment `gorm:"foreignKey:ProjectID"`
	Roadmap       []ProjectMilestone  `gorm:"foreignKey:ProjectID"`
}

func (p *Project) Validate() error {
	if p.Name == "" {
		return errors.New("project name is required")
	}
	if p.ManagerID == "" {
		return errors.New("project manager is required")
	}
	if p.CompanyID == "" {
		return errors.New("company reference is missing")
	}
	if !p.Priority.IsValid() {
		return errors.Errorf("unknown priority %q", p.Priority)
	}
	return nil
}

func (p Project) DepartmentIDs() []string {
	result := make([]string, 0, len(p.Departments))
	for _, rec := range p.Departments {
		result = append(result, rec.DepartmentID)
	}
	return result
}

type ProjectDepartment struct {
	ProjectID    string `gorm:"primaryKey;type:varchar(36)"`
	DepartmentID string `gorm:"primaryKey;type:varchar(36);index"`
}

type ProjectMilestone struct {
	BaseModel
	ProjectID   string `gorm:"type:varchar(36);index"`
	Position    int
	Name        string `gorm:"type:varchar(255)"`
	Description string
	StartDate   string                 `gorm:"type:varchar(10)"`
	EndDate     string                 `gorm:"type:varchar(10)"`
	Status      models.MilestoneStatus `gorm:"type:varchar(20)"`
}
