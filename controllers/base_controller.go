package controllers

import (
	"ets-backend/models"
	apimodels "ets-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("failed to parse request body")
		return errors.New("unable to read request data")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetParam(ctx, "id")
}

func (c *BaseAPIController) GetParam(ctx *fiber.Ctx, name string) (string, error) {
	value := ctx.Params(name)
	if value == "" {
		return "", errors.Errorf("parameter %s is required", name)
	}
	return value, nil
}

// SendError maps domain errors to 400/403/404 and everything else to 500.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, models.ErrBadRequest):
		status = fiber.StatusBadRequest
	case errors.Is(err, models.ErrForbidden):
		status = fiber.StatusForbidden
	}
	return ctx.Status(status).JSON(apimodels.NewError(err.Error()))
}
