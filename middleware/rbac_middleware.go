package middleware

import (
	"ets-backend/lib/rbac"
	apimodels "ets-backend/models/api"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

const rbacForbidden = "RBAC_FORBIDDEN"

// RbacMiddleware checks the route rule for the caller. Routes without a rule pass.
func RbacMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID := GetUserID(ctx)
		userRole := GetUserRole(ctx)
		if userID == "" || userRole == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(rbacForbidden))
		}

		handler, found := rbac.Instance.GetRuleFunc(ctx.Method(), ctx.Path())
		if !found {
			return ctx.Next()
		}

		if !handler(userID, userRole, ctx.Path()) {
			log.
				WithField("user_id", userID).
				WithField("role", userRole).
				WithField("method", ctx.Method()).
				WithField("path", ctx.Path()).
				Info("rbac: access denied")
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(rbacForbidden))
		}

		return ctx.Next()
	}
}
