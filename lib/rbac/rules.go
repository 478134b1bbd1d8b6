package rbac

import (
	"ets-backend/models"
)

var (
	AdminRoleSet          = []models.UserRole{models.AdminRole}
	AdminManagerRoleSet   = []models.UserRole{models.AdminRole, models.ManagerRole}
	AdminHrRoleSet        = []models.UserRole{models.AdminRole, models.HRRole}
	AdminHrManagerRoleSet = []models.UserRole{models.AdminRole, models.HRRole, models.ManagerRole}
	AllRoles              = []models.UserRole{models.AdminRole, models.ManagerRole, models.EmployeeRole, models.HRRole}
)

func (i *impl) initRules(taskAssigneeAllow models.RbacFunc) {
	i.users()
	i.dicts()
	i.projects()
	i.tasks(taskAssigneeAllow)
	i.onboarding()
	i.attendance()
	i.chat()
}

func (i *impl) users() {
	//VIEW
	i.mustRegister(models.UsersModule, models.ViewPermission, AllRoles, "/api/v1/users/list [post]", nil)
	i.mustRegister(models.UsersModule, models.ViewPermission, AllRoles, "/api/v1/users/managers [get]", nil)
	i.mustRegister(models.UsersModule, models.ViewPermission, AllRoles, "/api/v1/users/{id} [get]", nil)
	i.mustRegister(models.UsersModule, models.ViewPermission, AdminHrManagerRoleSet, "/api/v1/users/{id}/team [get]", nil)
	//EDIT: own profile or admin/hr
	i.mustRegister(models.UsersModule, models.EditPermission, AdminHrRoleSet, "/api/v1/users/{id} [put]", AllowSelfFunc(AdminHrRoleSet, "users"))
	//MANAGE
	i.mustRegister(models.UsersModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/users/{id} [delete]", nil)
}

func (i *impl) dicts() {
	//VIEW
	i.mustRegister(models.DictModule, models.ViewPermission, AllRoles, "/api/v1/dict/company/{id} [get]", nil)
	i.mustRegister(models.DictModule, models.ViewPermission, AllRoles, "/api/v1/dict/company/find [post]", nil)
	i.mustRegister(models.DictModule, models.ViewPermission, AllRoles, "/api/v1/dict/department/{id} [get]", nil)
	i.mustRegister(models.DictModule, models.ViewPermission, AllRoles, "/api/v1/dict/department/find [post]", nil)
	//CREATE/EDIT
	i.mustRegister(models.DictModule, models.CreatePermission, AdminRoleSet, "/api/v1/dict/company [post]", nil)
	i.mustRegister(models.DictModule, models.EditPermission, AdminRoleSet, "/api/v1/dict/company/{id} [put]", nil)
	i.mustRegister(models.DictModule, models.CreatePermission, AdminRoleSet, "/api/v1/dict/department [post]", nil)
	i.mustRegister(models.DictModule, models.EditPermission, AdminRoleSet, "/api/v1/dict/department/{id} [put]", nil)
	i.mustRegister(models.DictModule, models.EditPermission, AdminRoleSet, "/api/v1/dict/department/{id} [delete]", nil)
}

func (i *impl) projects() {
	//VIEW
	i.mustRegister(models.ProjectsModule, models.ViewPermission, AllRoles, "/api/v1/projects/list [post]", nil)
	i.mustRegister(models.ProjectsModule, models.ViewPermission, AllRoles, "/api/v1/projects/{id} [get]", nil)
	//CREATE/EDIT
	i.mustRegister(models.ProjectsModule, models.CreatePermission, AdminManagerRoleSet, "/api/v1/projects [post]", nil)
	i.mustRegister(models.ProjectsModule, models.EditPermission, AdminManagerRoleSet, "/api/v1/projects/{id} [put]", nil)
	i.mustRegister(models.ProjectsModule, models.EditPermission, AdminManagerRoleSet, "/api/v1/projects/{id}/roadmap [put]", nil)
	//EXPORT
	i.mustRegister(models.ProjectsModule, models.ExportPermission, AdminManagerRoleSet, "/api/v1/projects/{id}/tasks/export [get]", nil)
}

func (i *impl) tasks(assigneeAllow models.RbacFunc) {
	//VIEW
	i.mustRegister(models.TasksModule, models.ViewPermission, AllRoles, "/api/v1/tasks/list [post]", nil)
	i.mustRegister(models.TasksModule, models.ViewPermission, AllRoles, "/api/v1/tasks/{id} [get]", nil)
	//CREATE/EDIT
	i.mustRegister(models.TasksModule, models.CreatePermission, AdminManagerRoleSet, "/api/v1/tasks [post]", nil)
	i.mustRegister(models.TasksModule, models.EditPermission, AllRoles, "/api/v1/tasks/{id} [put]", assigneeAllow)
	i.mustRegister(models.TasksModule, models.EditPermission, AdminManagerRoleSet, "/api/v1/tasks/{id} [delete]", nil)
	//NOTES: anyone who can see the task
	i.mustRegister(models.TasksModule, models.NotesPermission, AllRoles, "/api/v1/tasks/{id}/notes [post]", nil)
	//DEPENDENCY
	i.mustRegister(models.TasksModule, models.DependencyPermission, AllRoles, "/api/v1/tasks/{id}/dependency [put]", assigneeAllow)
	i.mustRegister(models.TasksModule, models.DependencyPermission, AllRoles, "/api/v1/tasks/{id}/dependency [delete]", assigneeAllow)
}

func (i *impl) onboarding() {
	//VIEW
	i.mustRegister(models.OnboardingModule, models.ViewPermission, AdminHrRoleSet, "/api/v1/onboarding/list [post]", nil)
	i.mustRegister(models.OnboardingModule, models.ViewPermission, AdminHrRoleSet, "/api/v1/onboarding/{id} [get]", nil)
	i.mustRegister(models.OnboardingModule, models.ViewPermission, AdminHrRoleSet, "/api/v1/onboarding/{id}/summary [get]", nil)
	i.mustRegister(models.OnboardingModule, models.ViewPermission, AdminHrRoleSet, "/api/v1/onboarding/{id}/documents/{kind} [get]", nil)
	//FLOW
	i.mustRegister(models.OnboardingModule, models.FlowPermission, AdminHrRoleSet, "/api/v1/onboarding/{id}/start [put]", nil)
	i.mustRegister(models.OnboardingModule, models.FlowPermission, AdminHrRoleSet, "/api/v1/onboarding/{id}/steps/{stepId}/complete [put]", nil)
	//EDIT
	i.mustRegister(models.OnboardingModule, models.EditPermission, AdminHrRoleSet, "/api/v1/onboarding/{id}/documents/{kind} [post]", nil)
	//EXPORT
	i.mustRegister(models.OnboardingModule, models.ExportPermission, AdminHrRoleSet, "/api/v1/onboarding/export [post]", nil)
}

func (i *impl) attendance() {
	//VIEW
	i.mustRegister(models.AttendanceModule, models.ViewPermission, AdminHrManagerRoleSet, "/api/v1/attendance/date/{date} [get]", nil)
	i.mustRegister(models.AttendanceModule, models.ViewPermission, AdminHrManagerRoleSet, "/api/v1/attendance/user/{id} [get]", AllowSelfFunc(AdminHrManagerRoleSet, "user"))
	//EDIT: employees mark themselves, the controller pins the user id
	i.mustRegister(models.AttendanceModule, models.EditPermission, AllRoles, "/api/v1/attendance [post]", nil)
}

func (i *impl) chat() {
	i.mustRegister(models.ChatModule, models.ViewPermission, AllRoles, "/api/v1/chat/conversations [get]", nil)
	i.mustRegister(models.ChatModule, models.ViewPermission, AllRoles, "/api/v1/chat/conversations/{id} [get]", nil)
	i.mustRegister(models.ChatModule, models.ViewPermission, AllRoles, "/api/v1/chat/conversations/{id}/messages [get]", nil)
	i.mustRegister(models.ChatModule, models.ViewPermission, AllRoles, "/api/v1/chat/online/{id} [get]", nil)
	i.mustRegister(models.ChatModule, models.CreatePermission, AllRoles, "/api/v1/chat/conversations/{id}/messages [post]", nil)
	i.mustRegister(models.ChatModule, models.CreatePermission, AllRoles, "/api/v1/chat/groups [post]", nil)
	i.mustRegister(models.ChatModule, models.CreatePermission, AllRoles, "/api/v1/chat/direct [post]", nil)
}
