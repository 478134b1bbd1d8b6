package dictapimodels

import "ets-backend/models"

func GetRoles() []RoleView {
	return []RoleView{
		GetRole(models.AdminRole),
		GetRole(models.ManagerRole),
		GetRole(models.EmployeeRole),
		GetRole(models.HRRole),
	}
}

func GetRole(role models.UserRole) RoleView {
	return RoleView{
		Code: string(role),
		Name: role.ToHuman(),
	}
}

type RoleView struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
