package projecthandler

import (
	"ets-backend/db"
	"ets-backend/lib/project/store"
	initchecker "ets-backend/lib/utils/init-checker"
	"ets-backend/models"
	projectapimodels "ets-backend/models/api/project"
	dbmodels "ets-backend/models/db"
	"slices"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(request projectapimodels.ProjectData) (item projectapimodels.ProjectView, err error)
	Update(id string, request projectapimodels.ProjectUpdate) (item projectapimodels.ProjectView, err error)
	Get(id string) (item projectapimodels.ProjectView, err error)
	List(filter projectapimodels.ProjectFilter) (list []projectapimodels.ProjectView, err error)
	// SaveRoadmap replaces the whole milestone list, keeping the given order.
	SaveRoadmap(id string, request projectapimodels.RoadmapData) (item projectapimodels.ProjectView, err error)
}

var Instance Provider

var ErrProjectNotFound = models.NotFound("project not found")

func NewHandler() {
	Instance = NewInstance(db.DB)
}

func NewInstance(DB *gorm.DB) Provider {
	instance := impl{
		store: store.NewInstance(DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	return instance
}

type impl struct {
	store store.Provider
}

func (i impl) Create(request projectapimodels.ProjectData) (item projectapimodels.ProjectView, err error) {
	rec := dbmodels.Project{
		Name:          request.Name,
		Description:   request.Description,
		ManagerID:     request.ManagerID,
		CompanyID:     request.CompanyID,
		Deadline:      request.Deadline,
		Priority:      request.Priority,
		EstimatedTime: request.EstimatedTime,
	}
	for _, departmentID := range uniq(request.DepartmentIDs) {
		rec.Departments = append(rec.Departments, dbmodels.ProjectDepartment{DepartmentID: departmentID})
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return projectapimodels.ProjectView{}, err
	}
	log.
		WithField("project_id", id).
		WithField("manager_id", rec.ManagerID).
		Info("project created")
	return i.Get(id)
}

func (i impl) Update(id string, request projectapimodels.ProjectUpdate) (item projectapimodels.ProjectView, err error) {
	logger := log.WithField("project_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		return projectapimodels.ProjectView{}, err
	}
	if rec == nil {
		return projectapimodels.ProjectView{}, ErrProjectNotFound
	}
	var departmentIDs *[]string
	if request.DepartmentIDs != nil {
		list := uniq(*request.DepartmentIDs)
		departmentIDs = &list
	}
	err = i.store.Update(id, request.ToUpdMap(), departmentIDs)
	if err != nil {
		return projectapimodels.ProjectView{}, err
	}
	logger.Info("project updated")
	return i.Get(id)
}

func (i impl) Get(id string) (item projectapimodels.ProjectView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return projectapimodels.ProjectView{}, err
	}
	if rec == nil {
		return projectapimodels.ProjectView{}, ErrProjectNotFound
	}
	return projectapimodels.ProjectConvert(*rec), nil
}

func (i impl) List(filter projectapimodels.ProjectFilter) (list []projectapimodels.ProjectView, err error) {
	recList, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	result := make([]projectapimodels.ProjectView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, projectapimodels.ProjectConvert(rec))
	}
	return result, nil
}

func (i impl) SaveRoadmap(id string, request projectapimodels.RoadmapData) (item projectapimodels.ProjectView, err error) {
	logger := log.WithField("project_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		return projectapimodels.ProjectView{}, err
	}
	if rec == nil {
		return projectapimodels.ProjectView{}, ErrProjectNotFound
	}
	// ids of this project's milestones survive a resave, anything else gets a new id
	known := map[string]bool{}
	for _, m := range rec.Roadmap {
		known[m.ID] = true
	}
	milestones := make([]dbmodels.ProjectMilestone, 0, len(request.Milestones))
	for _, m := range request.Milestones {
		milestone := dbmodels.ProjectMilestone{
			Name:        m.Name,
			Description: m.Description,
			StartDate:   m.StartDate,
			EndDate:     m.EndDate,
			Status:      m.Status,
		}
		if known[m.ID] {
			milestone.ID = m.ID
			delete(known, m.ID)
		}
		milestones = append(milestones, milestone)
	}
	err = i.store.SaveRoadmap(id, milestones)
	if err != nil {
		return projectapimodels.ProjectView{}, err
	}
	logger.
		WithField("milestones", len(milestones)).
		Info("project roadmap saved")
	return i.Get(id)
}

func uniq(list []string) []string {
	result := make([]string, 0, len(list))
	for _, item := range list {
		if item == "" || slices.Contains(result, item) {
			continue
		}
		result = append(result, item)
	}
	return result
}
