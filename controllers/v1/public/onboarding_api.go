package publicapi

import (
	"ets-backend/controllers"
	onboardinghandler "ets-backend/lib/onboarding"
	apimodels "ets-backend/models/api"
	onboardingapimodels "ets-backend/models/api/onboarding"

	"github.com/gofiber/fiber/v2"
)

type publicOnboardingApiController struct {
	controllers.BaseAPIController
}

func InitPublicOnboardingApiRouters(app *fiber.App) {
	controller := publicOnboardingApiController{}
	app.Route("onboarding", func(router fiber.Router) {
		router.Post("", controller.submit)
	})
}

// @Summary Submit onboarding form
// @Tags Onboarding form
// @Description Stores the application in Pending Review and notifies HR. No authorization.
// @Param	body body	 onboardingapimodels.SubmissionData	true	"request body"
// @Success 200 {object} apimodels.Response{data=onboardingapimodels.SubmissionView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/onboarding [post]
func (c *publicOnboardingApiController) submit(ctx *fiber.Ctx) error {
	var payload onboardingapimodels.SubmissionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := onboardinghandler.Instance.Submit(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
