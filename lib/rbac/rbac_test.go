package rbac

import (
	"ets-backend/models"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRbac(t *testing.T) {
	t.Run(`pathToRegex check`, func(t *testing.T) {
		path, method, err := parseSwaggerPattern("/api/v1/onboarding/{id}/start [put]")
		require.Nil(t, err)
		require.Equal(t, PUT, method)
		r1 := pathToRegex(path)

		require.True(t, r1.MatchString("/api/v1/onboarding/sub-1/start"))
		require.False(t, r1.MatchString("/api/v1/onboarding/start"))

		path, method, err = parseSwaggerPattern("/api/v1/onboarding/{id}/steps/{stepId}/complete [put]")
		require.Nil(t, err)
		require.Equal(t, PUT, method)
		r2 := pathToRegex(path)

		require.True(t, r2.MatchString("/api/v1/onboarding/sub-1/steps/qwe-ewr123-wr-12/complete"))
		require.False(t, r2.MatchString("/api/v1/onboarding/sub-1/complete"))

		_, _, err = parseSwaggerPattern("/api/v1/onboarding")
		require.Error(t, err)
	})
	t.Run(`normalizePath check`, func(t *testing.T) {
		require.Equal(t, "/api/v1/tasks", normalizePath("api//v1/tasks/"))
		require.Equal(t, "/", normalizePath(""))
	})
}

func TestRules(t *testing.T) {
	assigneeAllow := func(userID string, role models.UserRole, path string) bool {
		return role != models.EmployeeRole || userID == "3"
	}
	instance := NewInstance(assigneeAllow)

	check := func(method, path, userID string, role models.UserRole) bool {
		handler, found := instance.GetRuleFunc(method, path)
		require.True(t, found, "%s %s", method, path)
		return handler(userID, role, path)
	}

	t.Run(`role rules check`, func(t *testing.T) {
		require.True(t, check("POST", "/api/v1/projects", "2", models.ManagerRole))
		require.False(t, check("POST", "/api/v1/projects", "3", models.EmployeeRole))
		require.True(t, check("PUT", "/api/v1/onboarding/sub-1/start", "8", models.HRRole))
		require.False(t, check("PUT", "/api/v1/onboarding/sub-1/start", "2", models.ManagerRole))
		require.True(t, check("DELETE", "/api/v1/dict/department/dept-1", "1", models.AdminRole))
		require.False(t, check("DELETE", "/api/v1/dict/department/dept-1", "2", models.ManagerRole))
	})
	t.Run(`exact before pattern check`, func(t *testing.T) {
		require.True(t, check("GET", "/api/v1/users/managers", "3", models.EmployeeRole))
		require.True(t, check("POST", "/api/v1/tasks/list", "3", models.EmployeeRole))
	})
	t.Run(`self rules check`, func(t *testing.T) {
		require.True(t, check("PUT", "/api/v1/users/3", "3", models.EmployeeRole))
		require.False(t, check("PUT", "/api/v1/users/4", "3", models.EmployeeRole))
		require.True(t, check("PUT", "/api/v1/users/4", "8", models.HRRole))
		require.True(t, check("GET", "/api/v1/attendance/user/5", "5", models.EmployeeRole))
		require.False(t, check("GET", "/api/v1/attendance/user/4", "5", models.EmployeeRole))
	})
	t.Run(`assignee rules check`, func(t *testing.T) {
		require.True(t, check("PUT", "/api/v1/tasks/task-1/dependency", "3", models.EmployeeRole))
		require.False(t, check("PUT", "/api/v1/tasks/task-1/dependency", "4", models.EmployeeRole))
		require.True(t, check("DELETE", "/api/v1/tasks/task-1/dependency", "2", models.ManagerRole))
	})
	t.Run(`unknown route check`, func(t *testing.T) {
		_, found := instance.GetRuleFunc("GET", "/api/v1/unknown")
		require.False(t, found)
	})
	t.Run(`permissions check`, func(t *testing.T) {
		perms := instance.GetPermissions(models.HRRole)
		require.ElementsMatch(t, []models.Permission{models.ViewPermission, models.FlowPermission, models.EditPermission, models.ExportPermission},
			perms[models.OnboardingModule])
		require.NotContains(t, instance.GetPermissions(models.EmployeeRole), models.OnboardingModule)
	})
}
