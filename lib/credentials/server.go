package credentials

import (
	"ets-backend/models"
	credentialsapimodels "ets-backend/models/api/credentials"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	msgInvalidPath    = "Invalid path"
	msgInternalError  = "Internal server error"
	msgSignUpOK       = "Sign Up Successful"
	msgLoginOK        = "Login Successful"
	msgTooManyRequest = "Too many requests"
)

// NewApp builds the credential service: POST /signup and POST /login, nothing else.
// rateLimit is the number of requests per minute per client ip, 0 disables the limit.
func NewApp(handler Provider, rateLimit int) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			log.WithError(err).Error("credential service request failed")
			return ctx.Status(fiber.StatusInternalServerError).JSON(credentialsapimodels.Response{Message: msgInternalError})
		},
	})
	app.Use(recover.New())
	if rateLimit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        rateLimit,
			Expiration: time.Minute,
			LimitReached: func(ctx *fiber.Ctx) error {
				return ctx.Status(fiber.StatusTooManyRequests).JSON(credentialsapimodels.Response{Message: msgTooManyRequest})
			},
		}))
	}
	c := controller{handler: handler}
	app.Post("/signup", c.signUp)
	app.Post("/login", c.login)
	app.Use(func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusNotFound).JSON(credentialsapimodels.Response{Message: msgInvalidPath})
	})
	return app
}

type controller struct {
	handler Provider
}

func (c controller) signUp(ctx *fiber.Ctx) error {
	var payload credentialsapimodels.SignUpRequest
	if err := parseBody(ctx, &payload); err != nil {
		return err
	}
	token, err := c.handler.SignUp(ctx.UserContext(), payload)
	if err != nil {
		return sendError(ctx, err)
	}
	return ctx.JSON(credentialsapimodels.Response{Message: msgSignUpOK, Token: token})
}

func (c controller) login(ctx *fiber.Ctx) error {
	var payload credentialsapimodels.LoginRequest
	if err := parseBody(ctx, &payload); err != nil {
		return err
	}
	token, err := c.handler.Login(ctx.UserContext(), payload)
	if err != nil {
		return sendError(ctx, err)
	}
	return ctx.JSON(credentialsapimodels.Response{Message: msgLoginOK, Token: token})
}

// parseBody treats an empty body as an empty object.
func parseBody(ctx *fiber.Ctx, out interface{}) error {
	if len(ctx.Body()) == 0 {
		return nil
	}
	if err := ctx.BodyParser(out); err != nil {
		return errors.Wrap(err, "invalid request body")
	}
	return nil
}

func sendError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, models.ErrBadRequest) {
		return ctx.Status(fiber.StatusBadRequest).JSON(credentialsapimodels.Response{Message: err.Error()})
	}
	return err
}
