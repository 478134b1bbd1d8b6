package models

type RbacFunc func(userID string, role UserRole, path string) bool

type Module string

const (
	UsersModule      Module = "USERS"
	DictModule       Module = "DICT"
	ProjectsModule   Module = "PROJECTS"
	TasksModule      Module = "TASKS"
	OnboardingModule Module = "ONBOARDING"
	AttendanceModule Module = "ATTENDANCE"
	ChatModule       Module = "CHAT"
)

type Permission string

const (
	CreatePermission     Permission = "CREATE"
	EditPermission       Permission = "EDIT"
	ViewPermission       Permission = "VIEW"
	ManagePermission     Permission = "MANAGE"
	FlowPermission       Permission = "FLOW"
	NotesPermission      Permission = "NOTES"
	DependencyPermission Permission = "DEPENDENCY"
	ExportPermission     Permission = "EXPORT"
)
