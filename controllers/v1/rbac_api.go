package apiv1

import (
	"ets-backend/controllers"
	"ets-backend/lib/rbac"
	"ets-backend/middleware"
	apimodels "ets-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type rbacApiController struct {
	controllers.BaseAPIController
}

func InitRbacApiRouters(app *fiber.App) {
	controller := rbacApiController{}
	app.Route("rbac", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired(), middleware.RbacMiddleware())
		router.Get("permissions", controller.permissions)
	})
}

// @Summary Permissions
// @Tags RBAC
// @Description Module permissions of the current user's role
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=map[string][]string}
// @Failure 401
// @router /api/v1/rbac/permissions [get]
func (c *rbacApiController) permissions(ctx *fiber.Ctx) error {
	resp := rbac.Instance.GetPermissions(middleware.GetUserRole(ctx))
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
