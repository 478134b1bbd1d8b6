package taskapimodels

import (
	"ets-backend/models"
	dbmodels "ets-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type TaskData struct {
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	DueDate       string            `json:"due_date"` // YYYY-MM-DD
	ProjectID     string            `json:"project_id"`
	AssigneeID    string            `json:"assignee_id"`
	Status        models.TaskStatus `json:"status"` // defaults to To-Do
	Category      string            `json:"category"`
	Priority      models.Priority   `json:"priority"`
	Tags          []string          `json:"tags"`
	EstimatedTime float64           `json:"estimated_time"`
}

func (r TaskData) Validate() error {
	if r.Name == "" {
		return errors.New("task name is required")
	}
	if r.ProjectID == "" {
		return errors.New("project reference is missing")
	}
	if r.Status != "" && !r.Status.IsValid() {
		return errors.New("unknown task status")
	}
	if !r.Priority.IsValid() {
		return errors.New("unknown priority")
	}
	if err := models.ValidateDate(r.DueDate); err != nil {
		return errors.Wrap(err, "due date")
	}
	return nil
}

// TaskUpdate is a partial update. Dependency fields are not part of it:
// they change only through the dependency endpoints.
type TaskUpdate struct {
	Name          *string            `json:"name"`
	Description   *string            `json:"description"`
	DueDate       *string            `json:"due_date"`
	AssigneeID    *string            `json:"assignee_id"` // empty string unassigns
	Status        *models.TaskStatus `json:"status"`
	Category      *string            `json:"category"`
	Priority      *models.Priority   `json:"priority"`
	Tags          *[]string          `json:"tags"`
	EstimatedTime *float64           `json:"estimated_time"`
}

func (r TaskUpdate) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return errors.New("task name must not be empty")
	}
	if r.Status != nil && !r.Status.IsValid() {
		return errors.New("unknown task status")
	}
	if r.Priority != nil && !r.Priority.IsValid() {
		return errors.New("unknown priority")
	}
	if r.DueDate != nil {
		if err := models.ValidateDate(*r.DueDate); err != nil {
			return errors.Wrap(err, "due date")
		}
	}
	return nil
}

func (r TaskUpdate) ToUpdMap() map[string]interface{} {
	updMap := map[string]interface{}{}
	if r.Name != nil {
		updMap["name"] = *r.Name
	}
	if r.Description != nil {
		updMap["description"] = *r.Description
	}
	if r.DueDate != nil {
		updMap["due_date"] = *r.DueDate
	}
	if r.AssigneeID != nil {
		if *r.AssigneeID == "" {
			updMap["assignee_id"] = nil
		} else {
			updMap["assignee_id"] = *r.AssigneeID
		}
	}
	if r.Status != nil {
		updMap["status"] = *r.Status
	}
	if r.Category != nil {
		updMap["category"] = *r.Category
	}
	if r.Priority != nil {
		updMap["priority"] = *r.Priority
	}
	if r.Tags != nil {
		updMap["tags"] = dbmodels.NewStringList(*r.Tags)
	}
	if r.EstimatedTime != nil {
		updMap["estimated_time"] = *r.EstimatedTime
	}
	return updMap
}

type TaskFilter struct {
	ProjectID  string   `json:"project_id"`
	AssigneeID string   `json:"assignee_id"`
	TeamIDs    []string `json:"team_ids"` // members' tasks plus unassigned ones
}

type DependencyData struct {
	UserID string `json:"user_id"` // the user the task waits for
	Reason string `json:"reason"`
}

func (r DependencyData) Validate() error {
	if r.UserID == "" {
		return errors.New("blocking user is required")
	}
	if r.Reason == "" {
		return errors.New("dependency reason is required")
	}
	return nil
}

type NoteData struct {
	Content string `json:"content"`
}

func (r NoteData) Validate() error {
	if r.Content == "" {
		return errors.New("note must not be empty")
	}
	return nil
}

type NoteView struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type DependencyLogView struct {
	AuthorID           string                  `json:"author_id"`
	Action             models.DependencyAction `json:"action"`
	Reason             string                  `json:"reason,omitempty"`
	DependencyOnUserID string                  `json:"dependency_on_user_id,omitempty"`
	Timestamp          time.Time               `json:"timestamp"`
}

type TaskView struct {
	TaskData
	ID             string              `json:"id"`
	Dependency     *DependencyData     `json:"dependency,omitempty"`
	Notes          []NoteView          `json:"notes"`
	DependencyLogs []DependencyLogView `json:"dependency_logs"`
	CreatedAt      time.Time           `json:"created_at"`
}

func TaskConvert(rec dbmodels.Task) TaskView {
	view := TaskView{
		TaskData: TaskData{
			Name:          rec.Name,
			Description:   rec.Description,
			DueDate:       rec.DueDate,
			ProjectID:     rec.ProjectID,
			Status:        rec.Status,
			Category:      rec.Category,
			Priority:      rec.Priority,
			Tags:          rec.Tags.Data(),
			EstimatedTime: rec.EstimatedTime,
		},
		ID:             rec.ID,
		Notes:          make([]NoteView, 0, len(rec.Notes)),
		DependencyLogs: make([]DependencyLogView, 0, len(rec.DependencyLogs)),
		CreatedAt:      rec.CreatedAt,
	}
	if view.Tags == nil {
		view.Tags = []string{}
	}
	if rec.AssigneeID != nil {
		view.AssigneeID = *rec.AssigneeID
	}
	if rec.HasDependency() {
		view.Dependency = &DependencyData{
			UserID: *rec.DependencyUserID,
			Reason: rec.DependencyReason,
		}
	}
	for _, note := range rec.Notes {
		view.Notes = append(view.Notes, NoteView{
			ID:        note.ID,
			AuthorID:  note.AuthorID,
			Content:   note.Content,
			Timestamp: note.CreatedAt,
		})
	}
	for _, logRec := range rec.DependencyLogs {
		view.DependencyLogs = append(view.DependencyLogs, DependencyLogView{
			AuthorID:           logRec.AuthorID,
			Action:             logRec.Action,
			Reason:             logRec.Reason,
			DependencyOnUserID: logRec.DependencyOnUserID,
			Timestamp:          logRec.CreatedAt,
		})
	}
	return view
}
