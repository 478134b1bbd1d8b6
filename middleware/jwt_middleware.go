package middleware

import (
	"ets-backend/config"
	authutils "ets-backend/lib/utils/auth-utils"
	apimodels "ets-backend/models/api"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AuthorizationRequired accepts the token from the Authorization header or,
// for websocket upgrades, from the token query parameter.
func AuthorizationRequired() fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims: jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: jwtware.HS256,
			Key:    []byte(config.Conf.Auth.JWTSecret),
		},
		TokenLookup: "header:Authorization,query:token",
		AuthScheme:  "Bearer",
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("unauthorized"))
		},
		SuccessHandler: func(ctx *fiber.Ctx) error {
			if refresh, _ := authutils.GetClaims(ctx)["refresh"].(bool); refresh {
				return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("unauthorized"))
			}
			ctx.Locals("userID", GetUserID(ctx))
			return ctx.Next()
		},
	})
}
