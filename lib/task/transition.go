package taskhandler

import (
	"ets-backend/models"
	taskapimodels "ets-backend/models/api/task"
	dbmodels "ets-backend/models/db"
)

// Status and dependency only change together through the functions below.

func checkUpdate(rec dbmodels.Task, request taskapimodels.TaskUpdate) error {
	if !rec.HasDependency() || request.Status == nil {
		return nil
	}
	if *request.Status != models.TaskOnHold {
		return ErrTaskOnHold
	}
	return nil
}

func setDependency(rec dbmodels.Task, authorID string, request taskapimodels.DependencyData) (map[string]interface{}, dbmodels.TaskDependencyLog) {
	updMap := map[string]interface{}{
		"status":             models.TaskOnHold,
		"dependency_user_id": request.UserID,
		"dependency_reason":  request.Reason,
	}
	return updMap, dbmodels.TaskDependencyLog{
		TaskID:             rec.ID,
		AuthorID:           authorID,
		Action:             models.DependencySet,
		Reason:             request.Reason,
		DependencyOnUserID: request.UserID,
	}
}

// clearDependency always returns the task to To-Do, whatever it was before the hold.
func clearDependency(rec dbmodels.Task, authorID string) (map[string]interface{}, dbmodels.TaskDependencyLog, error) {
	if !rec.HasDependency() {
		return nil, dbmodels.TaskDependencyLog{}, ErrNoDependency
	}
	updMap := map[string]interface{}{
		"status":             models.TaskTodo,
		"dependency_user_id": nil,
		"dependency_reason":  "",
	}
	return updMap, dbmodels.TaskDependencyLog{
		TaskID:             rec.ID,
		AuthorID:           authorID,
		Action:             models.DependencyCleared,
		DependencyOnUserID: *rec.DependencyUserID,
	}, nil
}
