package taskhandler

import (
	"bytes"
	"ets-backend/db"
	xlsexport "ets-backend/lib/export/xls"
	projectstore "ets-backend/lib/project/store"
	taskstore "ets-backend/lib/task/store"
	userstore "ets-backend/lib/users/store"
	initchecker "ets-backend/lib/utils/init-checker"
	connectionhub "ets-backend/lib/ws/hub/connection-hub"
	"ets-backend/models"
	taskapimodels "ets-backend/models/api/task"
	userapimodels "ets-backend/models/api/user"
	dbmodels "ets-backend/models/db"
	"regexp"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(request taskapimodels.TaskData) (item taskapimodels.TaskView, err error)
	// Update never touches the dependency and refuses to take a blocked task off hold.
	Update(id string, request taskapimodels.TaskUpdate) (item taskapimodels.TaskView, err error)
	Get(id string) (item taskapimodels.TaskView, err error)
	Delete(id string) error
	List(filter taskapimodels.TaskFilter) (list []taskapimodels.TaskView, err error)
	AddNote(id, authorID string, request taskapimodels.NoteData) (item taskapimodels.TaskView, err error)
	// SetDependency overwrites any existing dependency and puts the task on hold.
	SetDependency(id, authorID string, request taskapimodels.DependencyData) (item taskapimodels.TaskView, err error)
	// ClearDependency removes the dependency and returns the task to To-Do.
	ClearDependency(id, authorID string) (item taskapimodels.TaskView, err error)
	ExportProject(projectID string) (*bytes.Buffer, error)
	GetRbacAssigneeAllow() models.RbacFunc
}

// Notifier delivers an event to a user.
type Notifier interface {
	Notify(userID string, code models.EventCode, msg string, data any) error
}

var Instance Provider

var (
	ErrTaskNotFound    = models.NotFound("task not found")
	ErrProjectNotFound = models.BadRequest("project not found")
	ErrAssigneeUnknown = models.BadRequest("assignee not found")
	ErrBlockerUnknown  = models.BadRequest("blocking user not found")
	ErrTaskOnHold      = models.BadRequest("task is on hold until its dependency is cleared")
	ErrNoDependency    = models.BadRequest("task has no dependency")
)

func NewHandler() {
	Instance = NewInstance(db.DB, connectionhub.Instance)
}

func NewInstance(DB *gorm.DB, notifier Notifier) Provider {
	instance := impl{
		store:        taskstore.NewInstance(DB),
		projectStore: projectstore.NewInstance(DB),
		userStore:    userstore.NewInstance(DB),
		exporter:     xlsexport.NewInstance(),
		notifier:     notifier,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"projectStore", instance.projectStore,
		"userStore", instance.userStore,
		"exporter", instance.exporter,
	)
	return instance
}

type impl struct {
	store        taskstore.Provider
	projectStore projectstore.Provider
	userStore    userstore.Provider
	exporter     xlsexport.Provider
	notifier     Notifier
}

func (i impl) Create(request taskapimodels.TaskData) (item taskapimodels.TaskView, err error) {
	project, err := i.projectStore.GetByID(request.ProjectID)
	if err != nil {
		return taskapimodels.TaskView{}, err
	}
	if project == nil {
		return taskapimodels.TaskView{}, ErrProjectNotFound
	}
	rec := dbmodels.Task{
		Name:          request.Name,
		Description:   request.Description,
		DueDate:       request.DueDate,
		ProjectID:     request.ProjectID,
		Status:        request.Status,
		Category:      request.Category,
		Priority:      request.Priority,
		Tags:          dbmodels.NewStringList(request.Tags),
		EstimatedTime: request.EstimatedTime,
	}
	if rec.Status == "" {
		rec.Status = models.TaskTodo
	}
	if request.AssigneeID != "" {
		if err = i.checkUser(request.AssigneeID, ErrAssigneeUnknown); err != nil {
			return taskapimodels.TaskView{}, err
		}
		rec.AssigneeID = &request.AssigneeID
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return taskapimodels.TaskView{}, err
	}
	log.
		WithField("task_id", id).
		WithField("project_id", rec.ProjectID).
		Info("task created")
	return i.Get(id)
}

func (i impl) Update(id string, request taskapimodels.TaskUpdate) (item taskapimodels.TaskView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return taskapimodels.TaskView{}, err
	}
	if err = checkUpdate(*rec, request); err != nil {
		return taskapimodels.TaskView{}, err
	}
	if request.AssigneeID != nil && *request.AssigneeID != "" {
		if err = i.checkUser(*request.AssigneeID, ErrAssigneeUnknown); err != nil {
			return taskapimodels.TaskView{}, err
		}
	}
	err = i.store.Update(id, request.ToUpdMap())
	if err != nil {
		return taskapimodels.TaskView{}, err
	}
	log.WithField("task_id", id).Info("task updated")
	return i.Get(id)
}

func (i impl) Get(id string) (item taskapimodels.TaskView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return taskapimodels.TaskView{}, err
	}
	return taskapimodels.TaskConvert(*rec), nil
}

func (i impl) Delete(id string) error {
	if _, err := i.getRec(id); err != nil {
		return err
	}
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("task_id", id).Info("task deleted")
	return nil
}

func (i impl) List(filter taskapimodels.TaskFilter) (list []taskapimodels.TaskView, err error) {
	recList, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	result := make([]taskapimodels.TaskView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, taskapimodels.TaskConvert(rec))
	}
	return result, nil
}

func (i impl) AddNote(id, authorID string, request taskapimodels.NoteData) (item taskapimodels.TaskView, err error) {
	if _, err = i.getRec(id); err != nil {
		return taskapimodels.TaskView{}, err
	}
	err = i.store.AddNote(dbmodels.TaskNote{
		TaskID:   id,
		AuthorID: authorID,
		Content:  request.Content,
	})
	if err != nil {
		return taskapimodels.TaskView{}, err
	}
	return i.Get(id)
}

func (i impl) SetDependency(id, authorID string, request taskapimodels.DependencyData) (item taskapimodels.TaskView, err error) {
	logger := log.
		WithField("task_id", id).
		WithField("author_id", authorID)
	if err = request.Validate(); err != nil {
		return taskapimodels.TaskView{}, models.BadRequest(err.Error())
	}
	rec, err := i.getRec(id)
	if err != nil {
		return taskapimodels.TaskView{}, err
	}
	if err = i.checkUser(request.UserID, ErrBlockerUnknown); err != nil {
		return taskapimodels.TaskView{}, err
	}
	updMap, logRec := setDependency(*rec, authorID, request)
	err = i.store.ApplyDependency(id, updMap, logRec)
	if err != nil {
		return taskapimodels.TaskView{}, err
	}
	logger.
		WithField("blocking_user_id", request.UserID).
		Info("task dependency set")
	item, err = i.Get(id)
	if err != nil {
		return taskapimodels.TaskView{}, err
	}
	i.notify(request.UserID, authorID, "a task is waiting for you", item)
	return item, nil
}

func (i impl) ClearDependency(id, authorID string) (item taskapimodels.TaskView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return taskapimodels.TaskView{}, err
	}
	updMap, logRec, err := clearDependency(*rec, authorID)
	if err != nil {
		return taskapimodels.TaskView{}, err
	}
	err = i.store.ApplyDependency(id, updMap, logRec)
	if err != nil {
		return taskapimodels.TaskView{}, err
	}
	log.
		WithField("task_id", id).
		WithField("author_id", authorID).
		Info("task dependency cleared")
	item, err = i.Get(id)
	if err != nil {
		return taskapimodels.TaskView{}, err
	}
	if rec.AssigneeID != nil {
		i.notify(*rec.AssigneeID, authorID, "task dependency cleared", item)
	}
	return item, nil
}

func (i impl) ExportProject(projectID string) (*bytes.Buffer, error) {
	project, err := i.projectStore.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	list, err := i.store.List(taskapimodels.TaskFilter{ProjectID: projectID})
	if err != nil {
		return nil, err
	}
	users, err := i.userStore.List(userapimodels.UserFilter{CompanyID: project.CompanyID})
	if err != nil {
		return nil, err
	}
	userNames := make(map[string]string, len(users))
	for _, user := range users {
		userNames[user.ID] = user.Name
	}
	return i.exporter.ExportTaskList(project.Name, list, userNames)
}

var taskPathID = regexp.MustCompile(`/tasks/([^/]+)`)

// GetRbacAssigneeAllow lets employees act only on tasks assigned to them.
func (i impl) GetRbacAssigneeAllow() models.RbacFunc {
	return func(userID string, role models.UserRole, path string) bool {
		if role != models.EmployeeRole {
			return role.IsValid()
		}
		match := taskPathID.FindStringSubmatch(path)
		if len(match) != 2 {
			return false
		}
		rec, err := i.store.GetByID(match[1])
		if err != nil {
			log.WithError(err).WithField("task_id", match[1]).Error("rbac task lookup failed")
			return false
		}
		return rec != nil && rec.AssigneeID != nil && *rec.AssigneeID == userID
	}
}

func (i impl) getRec(id string) (*dbmodels.Task, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrTaskNotFound
	}
	return rec, nil
}

func (i impl) checkUser(userID string, notFound error) error {
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return notFound
	}
	return nil
}

func (i impl) notify(userID, authorID, msg string, item taskapimodels.TaskView) {
	if i.notifier == nil || userID == authorID {
		return
	}
	err := i.notifier.Notify(userID, models.TaskDependencyEvent, msg, item)
	if err != nil {
		log.
			WithError(err).
			WithField("task_id", item.ID).
			WithField("user_id", userID).
			Warn("task dependency notification failed")
	}
}
