package middleware

import (
	"ets-backend/config"
	"ets-backend/lib/rbac"
	authutils "ets-backend/lib/utils/auth-utils"
	"ets-backend/models"
	apimodels "ets-backend/models/api"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func initTestConfig() {
	conf := new(config.Configuration)
	conf.Auth.JWTSecret = "test-secret"
	conf.Auth.JWTExpireInSec = 60
	conf.Auth.JWTRefreshExpireInSec = 120
	config.Conf = conf
}

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Route("/api/v1/tasks", func(router fiber.Router) {
		router.Use(AuthorizationRequired(), RbacMiddleware())
		router.Post("", func(ctx *fiber.Ctx) error {
			return ctx.SendString(GetUserID(ctx))
		})
		router.Put(":id", func(ctx *fiber.Ctx) error {
			return ctx.SendString(ctx.Locals("userID").(string))
		})
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string) int {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAuthAndRbac(t *testing.T) {
	initTestConfig()
	assigneeAllow := func(userID string, role models.UserRole, path string) bool {
		return role != models.EmployeeRole || strings.HasSuffix(path, "/task-of-"+userID)
	}
	rbac.Instance = rbac.NewInstance(assigneeAllow)
	app := newTestApp()

	managerToken, err := authutils.GetToken("2", "Mia Manager", "comp-1", models.ManagerRole)
	require.NoError(t, err)
	employeeToken, err := authutils.GetToken("3", "Eve Employee", "comp-1", models.EmployeeRole)
	require.NoError(t, err)

	t.Run("missing token check", func(t *testing.T) {
		require.Equal(t, http.StatusUnauthorized, doRequest(t, app, http.MethodPost, "/api/v1/tasks", ""))
	})
	t.Run("foreign secret check", func(t *testing.T) {
		token, err := authutils.Sign("other", jwt.MapClaims{"sub": "2", "role": "Manager"}, time.Minute)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, doRequest(t, app, http.MethodPost, "/api/v1/tasks", token))
	})
	t.Run("refresh token is rejected check", func(t *testing.T) {
		token, err := authutils.GetRefreshToken("2", "Mia Manager")
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, doRequest(t, app, http.MethodPost, "/api/v1/tasks", token))
	})
	t.Run("token without role check", func(t *testing.T) {
		token, err := authutils.Sign("test-secret", jwt.MapClaims{"sub": "2"}, time.Minute)
		require.NoError(t, err)
		require.Equal(t, http.StatusForbidden, doRequest(t, app, http.MethodPost, "/api/v1/tasks", token))
	})
	t.Run("role rule check", func(t *testing.T) {
		require.Equal(t, http.StatusOK, doRequest(t, app, http.MethodPost, "/api/v1/tasks", managerToken))
		require.Equal(t, http.StatusForbidden, doRequest(t, app, http.MethodPost, "/api/v1/tasks", employeeToken))
	})
	t.Run("assignee rule check", func(t *testing.T) {
		require.Equal(t, http.StatusOK, doRequest(t, app, http.MethodPut, "/api/v1/tasks/task-of-3", employeeToken))
		require.Equal(t, http.StatusForbidden, doRequest(t, app, http.MethodPut, "/api/v1/tasks/task-of-4", employeeToken))
		require.Equal(t, http.StatusOK, doRequest(t, app, http.MethodPut, "/api/v1/tasks/task-of-4", managerToken))
	})
	t.Run("token in query check", func(t *testing.T) {
		require.Equal(t, http.StatusOK, doRequest(t, app, http.MethodPost, "/api/v1/tasks?token="+managerToken, ""))
	})
}

func TestWithBodyLimit(t *testing.T) {
	app := fiber.New()
	app.Use(WithBodyLimit(10, "/documents/"))
	app.Post("/*", func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})
	send := func(path, body string) int {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}
	t.Run("small body check", func(t *testing.T) {
		require.Equal(t, http.StatusOK, send("/api/v1/tasks", "{}"))
	})
	t.Run("large body check", func(t *testing.T) {
		require.Equal(t, http.StatusRequestEntityTooLarge, send("/api/v1/tasks", strings.Repeat("x", 11)))
	})
	t.Run("skipped path check", func(t *testing.T) {
		require.Equal(t, http.StatusOK, send("/api/v1/onboarding/1/documents/resume", strings.Repeat("x", 11)))
	})
}

func startReportReceiver(t *testing.T) (addr string, reports chan errReport) {
	reports = make(chan errReport, 4)
	receiver := fiber.New()
	receiver.Post("/report", func(ctx *fiber.Ctx) error {
		var report errReport
		if err := ctx.BodyParser(&report); err != nil {
			return ctx.SendStatus(fiber.StatusBadRequest)
		}
		reports <- report
		return ctx.SendStatus(fiber.StatusOK)
	})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = receiver.Listener(ln)
	}()
	t.Cleanup(func() {
		_ = receiver.Shutdown()
	})
	return "http://" + ln.Addr().String() + "/report", reports
}

func TestErrNotify(t *testing.T) {
	addr, reports := startReportReceiver(t)
	app := fiber.New()
	app.Use(ErrNotify(addr))
	app.Get("/api/v1/tasks/:id", func(ctx *fiber.Ctx) error {
		if ctx.Params("id") == "broken" {
			return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("db is down"))
		}
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("task not found"))
	})

	t.Run("5xx is reported check", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/tasks/broken", nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		select {
		case report := <-reports:
			require.Equal(t, http.StatusInternalServerError, report.Code)
			require.Equal(t, http.MethodGet, report.Method)
			require.Equal(t, "/api/v1/tasks/:id", report.Path)
			require.Equal(t, "db is down", report.Error)
		case <-time.After(5 * time.Second):
			require.FailNow(t, "no error report received")
		}
	})
	t.Run("4xx is not reported check", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/tasks/missing", nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		select {
		case report := <-reports:
			require.FailNow(t, "unexpected report", report.Path)
		case <-time.After(300 * time.Millisecond):
		}
	})
	t.Run("unreachable receiver check", func(t *testing.T) {
		require.NotPanics(t, func() {
			sendErrReport("http://127.0.0.1:1/report", errReport{Code: 500, Path: "/x"})
		})
	})
}
