package dbmodels

import (
	"ets-backend/models"

	"github.com/pkg/errors"
)

type Task struct {
	BaseModel
	Name             string `gorm:"type:varchar(255)"`
	Description      string
	DueDate          string            `gorm:"type:varchar(10)"`
	ProjectID        string            `gorm:"type:varchar(36);index"`
	AssigneeID       *string           `gorm:"type:varchar(36);index"`
	Status           models.TaskStatus `gorm:"type:varchar(20)"`
	Category         string            `gorm:"type:varchar(100)"`
	Priority         models.Priority   `gorm:"type:varchar(10)"`
	Tags             StringList
	EstimatedTime    float64
	DependencyUserID *string `gorm:"type:varchar(36)"`
	DependencyReason string
	Notes            []TaskNote          `gorm:"foreignKey:TaskID"`
	DependencyLogs   []TaskDependencyLog `gorm:"foreignKey:TaskID"`
}

func (t *Task) Validate() error {
	if t.Name == "" {
		return errors.New("task name is required")
	}
	if t.ProjectID == "" {
		return errors.New("project reference is missing")
	}
	if !t.Status.IsValid() {
		return errors.Errorf("unknown task status %q", t.Status)
	}
	if !t.Priority.IsValid() {
		return errors.Errorf("unknown priority %q", t.Priority)
	}
	return nil
}

func (t Task) HasDependency() bool {
	return t.DependencyUserID != nil && *t.DependencyUserID != ""
}

type TaskNote struct {
	BaseModel
	TaskID   string `gorm:"type:varchar(36);index"`
	AuthorID string `gorm:"type:varchar(36)"`
	Content  string
}

// TaskDependencyLog is append-only.
type TaskDependencyLog struct {
	BaseModel
	TaskID             string                  `gorm:"type:varchar(36);index"`
	AuthorID           string                  `gorm:"type:varchar(36)"`
	Action             models.DependencyAction `gorm:"type:varchar(10)"`
	Reason             string
	DependencyOnUserID string `gorm:"type:varchar(36)"`
}
