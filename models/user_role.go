package models

type UserRole string

const (
	AdminRole    UserRole = "Admin"
	ManagerRole  UserRole = "Manager"
	EmployeeRole UserRole = "Employee"
	HRRole       UserRole = "HR"
)

var roleHumanName = map[UserRole]string{
	AdminRole:    "Administrator",
	ManagerRole:  "Manager",
	EmployeeRole: "Employee",
	HRRole:       "Human Resources",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, ok := roleHumanName[r]
	return ok
}

func (r UserRole) IsAdmin() bool {
	return r == AdminRole
}

type UserStatus string

const (
	UserActiveStatus  UserStatus = "Active"
	UserBusyStatus    UserStatus = "Busy"
	UserOfflineStatus UserStatus = "Offline"
)

func (s UserStatus) IsValid() bool {
	switch s {
	case UserActiveStatus, UserBusyStatus, UserOfflineStatus:
		return true
	}
	return false
}

type Workload string

const (
	WorkloadLight  Workload = "Light"
	WorkloadNormal Workload = "Normal"
	WorkloadHeavy  Workload = "Heavy"
)

const DefaultJobTitle = "New Employee"
