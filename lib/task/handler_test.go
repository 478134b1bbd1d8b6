package taskhandler

import (
	"ets-backend/db/dbtest"
	"ets-backend/models"
	taskapimodels "ets-backend/models/api/task"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type notifyCall struct {
	userID string
	code   models.EventCode
}

type notifierStub struct {
	calls []notifyCall
}

func (n *notifierStub) Notify(userID string, code models.EventCode, msg string, data any) error {
	n.calls = append(n.calls, notifyCall{userID: userID, code: code})
	return nil
}

func TestTasks(t *testing.T) {
	notifier := &notifierStub{}
	handler := NewInstance(dbtest.NewSeeded(t), notifier)

	t.Run("seeded task check", func(t *testing.T) {
		task, err := handler.Get("task-3")
		require.NoError(t, err)
		require.Len(t, task.Notes, 2)
		require.Equal(t, "note-1", task.Notes[0].ID)
		require.Nil(t, task.Dependency)

		task, err = handler.Get("task-4")
		require.NoError(t, err)
		require.Equal(t, models.TaskOnHold, task.Status)
		require.NotNil(t, task.Dependency)
		require.Equal(t, "4", task.Dependency.UserID)
		require.Len(t, task.DependencyLogs, 1)

		_, err = handler.Get("missing")
		require.ErrorIs(t, err, ErrTaskNotFound)
	})
	t.Run("create check", func(t *testing.T) {
		task, err := handler.Create(taskapimodels.TaskData{
			Name:       "Write release notes",
			ProjectID:  "proj-2",
			AssigneeID: "3",
			Priority:   models.PriorityLow,
			Tags:       []string{"docs"},
		})
		require.NoError(t, err)
		require.NotEmpty(t, task.ID)
		require.Equal(t, models.TaskTodo, task.Status)
		require.Equal(t, "3", task.AssigneeID)
		require.Empty(t, task.Notes)

		_, err = handler.Create(taskapimodels.TaskData{Name: "Orphan", ProjectID: "missing"})
		require.ErrorIs(t, err, ErrProjectNotFound)

		_, err = handler.Create(taskapimodels.TaskData{Name: "Ghost", ProjectID: "proj-2", AssigneeID: "missing"})
		require.ErrorIs(t, err, ErrAssigneeUnknown)
	})
	t.Run("set dependency check", func(t *testing.T) {
		task, err := handler.SetDependency("task-8", "2", taskapimodels.DependencyData{UserID: "6", Reason: "UAT first"})
		require.NoError(t, err)
		require.Equal(t, models.TaskOnHold, task.Status)
		require.Equal(t, &taskapimodels.DependencyData{UserID: "6", Reason: "UAT first"}, task.Dependency)
		require.Len(t, task.DependencyLogs, 1)
		require.Equal(t, models.DependencySet, task.DependencyLogs[0].Action)
		require.Equal(t, "2", task.DependencyLogs[0].AuthorID)
		require.Contains(t, notifier.calls, notifyCall{userID: "6", code: models.TaskDependencyEvent})

		// overwrite keeps a single dependency and adds one more log
		task, err = handler.SetDependency("task-8", "2", taskapimodels.DependencyData{UserID: "7", Reason: "servers"})
		require.NoError(t, err)
		require.Equal(t, "7", task.Dependency.UserID)
		require.Len(t, task.DependencyLogs, 2)

		_, err = handler.SetDependency("task-8", "2", taskapimodels.DependencyData{UserID: "missing", Reason: "x"})
		require.ErrorIs(t, err, ErrBlockerUnknown)
		_, err = handler.SetDependency("task-8", "2", taskapimodels.DependencyData{UserID: "7"})
		require.ErrorIs(t, err, models.ErrBadRequest)
	})
	t.Run("blocked task update check", func(t *testing.T) {
		status := models.TaskInProgress
		_, err := handler.Update("task-7", taskapimodels.TaskUpdate{Status: &status})
		require.ErrorIs(t, err, ErrTaskOnHold)

		name := "UAT with focus group"
		task, err := handler.Update("task-7", taskapimodels.TaskUpdate{Name: &name})
		require.NoError(t, err)
		require.Equal(t, name, task.Name)
		require.Equal(t, models.TaskOnHold, task.Status)
		require.NotNil(t, task.Dependency)
	})
	t.Run("clear dependency check", func(t *testing.T) {
		task, err := handler.ClearDependency("task-7", "6")
		require.NoError(t, err)
		require.Equal(t, models.TaskTodo, task.Status)
		require.Nil(t, task.Dependency)
		require.Len(t, task.DependencyLogs, 2)
		require.Equal(t, models.DependencyCleared, task.DependencyLogs[1].Action)
		require.Equal(t, "2", task.DependencyLogs[1].DependencyOnUserID)

		_, err = handler.ClearDependency("task-7", "6")
		require.ErrorIs(t, err, ErrNoDependency)

		status := models.TaskInProgress
		task, err = handler.Update("task-7", taskapimodels.TaskUpdate{Status: &status})
		require.NoError(t, err)
		require.Equal(t, models.TaskInProgress, task.Status)
	})
	t.Run("notes check", func(t *testing.T) {
		task, err := handler.AddNote("task-3", "3", taskapimodels.NoteData{Content: "Headline updated."})
		require.NoError(t, err)
		require.Len(t, task.Notes, 3)
		require.Equal(t, "Headline updated.", task.Notes[2].Content)
		require.Equal(t, models.TaskInProgress, task.Status)
	})
	t.Run("list filters check", func(t *testing.T) {
		list, err := handler.List(taskapimodels.TaskFilter{ProjectID: "proj-3"})
		require.NoError(t, err)
		require.Len(t, list, 4)

		list, err = handler.List(taskapimodels.TaskFilter{AssigneeID: "7"})
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "task-14", list[0].ID)

		list, err = handler.List(taskapimodels.TaskFilter{ProjectID: "proj-3", TeamIDs: []string{"3"}})
		require.NoError(t, err)
		ids := []string{}
		for _, item := range list {
			ids = append(ids, item.ID)
		}
		require.ElementsMatch(t, []string{"task-10", "task-12"}, ids)
	})
	t.Run("unassign check", func(t *testing.T) {
		empty := ""
		task, err := handler.Update("task-13", taskapimodels.TaskUpdate{AssigneeID: &empty})
		require.NoError(t, err)
		require.Empty(t, task.AssigneeID)
	})
	t.Run("delete check", func(t *testing.T) {
		require.NoError(t, handler.Delete("task-3"))
		_, err := handler.Get("task-3")
		require.ErrorIs(t, err, ErrTaskNotFound)
		require.ErrorIs(t, handler.Delete("task-3"), ErrTaskNotFound)
	})
	t.Run("export check", func(t *testing.T) {
		buf, err := handler.ExportProject("proj-1")
		require.NoError(t, err)
		f, err := excelize.OpenReader(buf)
		require.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows("Q3 Marketing Campaign")
		require.NoError(t, err)
		require.Equal(t, "Task", rows[0][0])
		require.Len(t, rows, 4)
		require.Equal(t, "Drone TV", rows[1][2])

		_, err = handler.ExportProject("missing")
		require.ErrorIs(t, err, ErrProjectNotFound)
	})
	t.Run("assignee rbac check", func(t *testing.T) {
		allow := handler.GetRbacAssigneeAllow()
		require.True(t, allow("5", models.EmployeeRole, "/api/v1/tasks/task-6/notes"))
		require.False(t, allow("3", models.EmployeeRole, "/api/v1/tasks/task-6/notes"))
		require.False(t, allow("3", models.EmployeeRole, "/api/v1/tasks/missing"))
		require.True(t, allow("2", models.ManagerRole, "/api/v1/tasks/task-6"))
	})
}
