package initializers

import (
	"context"
	"ets-backend/config"
	"ets-backend/db"
	"ets-backend/fiberlog"
	attendancehandler "ets-backend/lib/attendance"
	authhandler "ets-backend/lib/auth"
	chathandler "ets-backend/lib/chat"
	companyprovider "ets-backend/lib/dicts/company"
	departmentprovider "ets-backend/lib/dicts/department"
	onboardinghandler "ets-backend/lib/onboarding"
	projecthandler "ets-backend/lib/project"
	"ets-backend/lib/rbac"
	taskhandler "ets-backend/lib/task"
	usersprovider "ets-backend/lib/users"
	connectionhub "ets-backend/lib/ws/hub/connection-hub"
	pendingcleanupworker "ets-backend/lib/ws/pending-cleanup-worker"
	"time"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	connectionhub.Init(db.DB)
	companyprovider.NewHandler()
	departmentprovider.NewHandler()
	usersprovider.NewHandler()
	authhandler.NewHandler()
	projecthandler.NewHandler()
	taskhandler.NewHandler()
	// task rules need the assignee check
	rbac.NewHandler(taskhandler.Instance.GetRbacAssigneeAllow())
	onboardinghandler.NewHandler()
	attendancehandler.NewHandler()
	chathandler.NewHandler()
	initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// events for users who never reconnect
	ttl := time.Duration(config.Conf.Ws.PendingEventTTLDays) * 24 * time.Hour
	pendingcleanupworker.StartWorker(ctx, db.DB, ttl)
}
