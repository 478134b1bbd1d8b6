package store

import (
	"ets-backend/models"
	projectapimodels "ets-backend/models/api/project"
	dbmodels "ets-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Project) (id string, err error)
	GetByID(id string) (rec *dbmodels.Project, err error)
	List(filter projectapimodels.ProjectFilter) (list []dbmodels.Project, err error)
	// Update applies updMap and, when departmentIDs is not nil, replaces the department links.
	Update(id string, updMap map[string]interface{}, departmentIDs *[]string) error
	SaveRoadmap(projectID string, milestones []dbmodels.ProjectMilestone) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Project) (id string, err error) {
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
		Preload("Departments").
		Preload("Roadmap", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		})
}

func (i impl) GetByID(id string) (*dbmodels.Project, error) {
	rec := dbmodels.Project{}
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

func (i impl) List(filter projectapimodels.ProjectFilter) (list []dbmodels.Project, err error) {
	list = []dbmodels.Project{}
	tx := i.preload(i.db.Model(dbmodels.Project{}))
	if filter.ManagerID != "" {
		tx = tx.Where("manager_id = ?", filter.ManagerID)
	}
	if filter.CompanyID != "" {
		tx = tx.Where("company_id = ?", filter.CompanyID)
	}
	if filter.DepartmentID != "" {
		tx = tx.Where("id IN (?)", i.db.
			Model(dbmodels.ProjectDepartment{}).
			Select("project_id").
			Where("department_id = ?", filter.DepartmentID))
	}
	err = tx.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}, departmentIDs *[]string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		if len(updMap) > 0 {
			err := tx.
				Model(&dbmodels.Project{}).
				Where("id = ?", id).
				Updates(updMap).
				Error
			if err != nil {
				return err
			}
		}
		if departmentIDs == nil {
			return nil
		}
		err := tx.
			Where("project_id = ?", id).
			Delete(&dbmodels.ProjectDepartment{}).
			Error
		if err != nil {
			return err
		}
		links := make([]dbmodels.ProjectDepartment, 0, len(*departmentIDs))
		for _, departmentID := range *departmentIDs {
			links = append(links, dbmodels.ProjectDepartment{ProjectID: id, DepartmentID: departmentID})
		}
		if len(links) == 0 {
			return nil
		}
		return tx.Create(&links).Error
	})
}

func (i impl) SaveRoadmap(projectID string, milestones []dbmodels.ProjectMilestone) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("project_id = ?", projectID).
			Delete(&dbmodels.ProjectMilestone{}).
			Error
		if err != nil {
			return err
		}
		if len(milestones) == 0 {
			return nil
		}
		for idx := range milestones {
			milestones[idx].ProjectID = projectID
			milestones[idx].Position = idx
		}
		return tx.Create(&milestones).Error
	})
}
