package projectapimodels

import (
	"ets-backend/models"
	dbmodels "ets-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type ProjectData struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	ManagerID     string          `json:"manager_id"`
	DepartmentIDs []string        `json:"department_ids"`
	Deadline      string          `json:"deadline"` // YYYY-MM-DD
	Priority      models.Priority `json:"priority"`
	EstimatedTime float64         `json:"estimated_time"` // hours
	CompanyID     string          `json:"company_id"`
}

func (r ProjectData) Validate() error {
	if r.Name == "" {
		return errors.New("project name is required")
	}
	if r.ManagerID == "" {
		return errors.New("project manager is required")
	}
	if r.CompanyID == "" {
		return errors.New("company reference is missing")
	}
	if !r.Priority.IsValid() {
		return errors.New("unknown priority")
	}
	if err := models.ValidateDate(r.Deadline); err != nil {
		return errors.Wrap(err, "deadline")
	}
	return nil
}

// ProjectUpdate is a partial update: nil fields stay untouched.
type ProjectUpdate struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	ManagerID     *string          `json:"manager_id"`
	DepartmentIDs *[]string        `json:"department_ids"`
	Deadline      *string          `json:"deadline"`
	Priority      *models.Priority `json:"priority"`
	EstimatedTime *float64         `json:"estimated_time"`
}

func (r ProjectUpdate) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return errors.New("project name must not be empty")
	}
	if r.Priority != nil && !r.Priority.IsValid() {
		return errors.New("unknown priority")
	}
	if r.Deadline != nil {
		if err := models.ValidateDate(*r.Deadline); err != nil {
			return errors.Wrap(err, "deadline")
		}
	}
	return nil
}

func (r ProjectUpdate) ToUpdMap() map[string]interface{} {
	updMap := map[string]interface{}{}
	if r.Name != nil {
		updMap["name"] = *r.Name
	}
	if r.Description != nil {
		updMap["description"] = *r.Description
	}
	if r.ManagerID != nil {
		updMap["manager_id"] = *r.ManagerID
	}
	if r.Deadline != nil {
		updMap["deadline"] = *r.Deadline
	}
	if r.Priority != nil {
		updMap["priority"] = *r.Priority
	}
	if r.EstimatedTime != nil {
		updMap["estimated_time"] = *r.EstimatedTime
	}
	return updMap
}

type ProjectFilter struct {
	ManagerID    string `json:"manager_id"`
	CompanyID    string `json:"company_id"`
	DepartmentID string `json:"department_id"`
}

type MilestoneData struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	StartDate   string                 `json:"start_date"`
	EndDate     string                 `json:"end_date"`
	Status      models.MilestoneStatus `json:"status"`
}

func (r MilestoneData) Validate() error {
	if r.Name == "" {
		return errors.New("milestone name is required")
	}
	if !r.Status.IsValid() {
		return errors.New("unknown milestone status")
	}
	if err := models.ValidateDate(r.StartDate); err != nil {
		return errors.Wrap(err, "start date")
	}
	if err := models.ValidateDate(r.EndDate); err != nil {
		return errors.Wrap(err, "end date")
	}
	if r.StartDate != "" && r.EndDate != "" && r.EndDate < r.StartDate {
		return errors.New("milestone ends before it starts")
	}
	return nil
}

type RoadmapData struct {
	Milestones []MilestoneData `json:"milestones"`
}

func (r RoadmapData) Validate() error {
	for idx, m := range r.Milestones {
		if err := m.Validate(); err != nil {
			return errors.Wrapf(err, "milestone %d", idx+1)
		}
	}
	return nil
}

type ProjectView struct {
	ProjectData
	ID        string          `json:"id"`
	Roadmap   []MilestoneData `json:"roadmap"`
	CreatedAt time.Time       `json:"created_at"`
}

func ProjectConvert(rec dbmodels.Project) ProjectView {
	roadmap := make([]MilestoneData, 0, len(rec.Roadmap))
	for _, m := range rec.Roadmap {
		roadmap = append(roadmap, MilestoneData{
			ID:          m.ID,
			Name:        m.Name,
			Description: m.Description,
			StartDate:   m.StartDate,
			EndDate:     m.EndDate,
			Status:      m.Status,
		})
	}
	return ProjectView{
		ProjectData: ProjectData{
			Name:          rec.Name,
			Description:   rec.Description,
			ManagerID:     rec.ManagerID,
			DepartmentIDs: rec.DepartmentIDs(),
			Deadline:      rec.Deadline,
			Priority:      rec.Priority,
			EstimatedTime: rec.EstimatedTime,
			CompanyID:     rec.CompanyID,
		},
		ID:        rec.ID,
		Roadmap:   roadmap,
		CreatedAt: rec.CreatedAt,
	}
}
