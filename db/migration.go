package db

import (
	dbmodels "ets-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func AutoMigrateDB(tx *gorm.DB) error {
	log.Info("running migrations")
	migrations := []struct {
		name  string
		model any
	}{
		{"Company", &dbmodels.Company{}},
		{"Department", &dbmodels.Department{}},
		{"User", &dbmodels.User{}},
		{"UserPassword", &dbmodels.UserPassword{}},
		{"Project", &dbmodels.Project{}},
		{"ProjectDepartment", &dbmodels.ProjectDepartment{}},
		{"ProjectMilestone", &dbmodels.ProjectMilestone{}},
		{"Task", &dbmodels.Task{}},
		{"TaskNote", &dbmodels.TaskNote{}},
		{"TaskDependencyLog", &dbmodels.TaskDependencyLog{}},
		{"OnboardingSubmission", &dbmodels.OnboardingSubmission{}},
		{"OnboardingStep", &dbmodels.OnboardingStep{}},
		{"Attendance", &dbmodels.Attendance{}},
		{"ChatConversation", &dbmodels.ChatConversation{}},
		{"ChatParticipant", &dbmodels.ChatParticipant{}},
		{"ChatMessage", &dbmodels.ChatMessage{}},
		{"PendingEvent", &dbmodels.PendingEvent{}},
	}
	for _, m := range migrations {
		if err := tx.AutoMigrate(m.model); err != nil {
			return errors.Wrapf(err, "failed to migrate %s", m.name)
		}
	}
	log.Info("migrations applied")
	return nil
}
