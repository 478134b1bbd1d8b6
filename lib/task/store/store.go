package store

import (
	"ets-backend/models"
	taskapimodels "ets-backend/models/api/task"
	dbmodels "ets-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Task) (id string, err error)
	GetByID(id string) (rec *dbmodels.Task, err error)
	List(filter taskapimodels.TaskFilter) (list []dbmodels.Task, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	AddNote(rec dbmodels.TaskNote) error
	// ApplyDependency writes the task fields and the log entry in one transaction.
	ApplyDependency(id string, updMap map[string]interface{}, logRec dbmodels.TaskDependencyLog) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Task) (id string, err error) {
	err = rec.Validate()
	if err != nil {
		return "", models.BadRequest(err.Error())
	}
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) preload(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Notes", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at")
		}).
		Preload("DependencyLogs", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at")
		})
}

func (i impl) GetByID(id string) (*dbmodels.Task, error) {
	rec := dbmodels.Task{}
	err := i.preload(i.db).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(filter taskapimodels.TaskFilter) (list []dbmodels.Task, err error) {
	list = []dbmodels.Task{}
	tx := i.preload(i.db.Model(dbmodels.Task{}))
	if filter.ProjectID != "" {
		tx = tx.Where("project_id = ?", filter.ProjectID)
	}
	if filter.AssigneeID != "" {
		tx = tx.Where("assignee_id = ?", filter.AssigneeID)
	}
	if filter.TeamIDs != nil {
		if len(filter.TeamIDs) == 0 {
			tx = tx.Where("assignee_id IS NULL")
		} else {
			tx = tx.Where("assignee_id IN (?) OR assignee_id IS NULL", filter.TeamIDs)
		}
	}
	err = tx.
		Order("created_at, id").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.Task{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("task_id = ?", id).
			Delete(&dbmodels.TaskNote{}).
			Error
		if err != nil {
			return err
		}
		err = tx.
			Where("task_id = ?", id).
			Delete(&dbmodels.TaskDependencyLog{}).
			Error
		if err != nil {
			return err
		}
		return tx.
			Where("id = ?", id).
			Delete(&dbmodels.Task{}).
			Error
	})
}

func (i impl) AddNote(rec dbmodels.TaskNote) error {
	return i.db.
		Create(&rec).
		Error
}

func (i impl) ApplyDependency(id string, updMap map[string]interface{}, logRec dbmodels.TaskDependencyLog) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Model(&dbmodels.Task{}).
			Where("id = ?", id).
			Updates(updMap).
			Error
		if err != nil {
			return err
		}
		return tx.
			Create(&logRec).
			Error
	})
}
