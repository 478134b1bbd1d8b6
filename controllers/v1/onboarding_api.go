package apiv1

import (
	"ets-backend/controllers"
	onboardinghandler "ets-backend/lib/onboarding"
	"ets-backend/middleware"
	apimodels "ets-backend/models/api"
	onboardingapimodels "ets-backend/models/api/onboarding"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type onboardingApiController struct {
	controllers.BaseAPIController
}

func InitOnboardingApiRouters(app *fiber.App) {
	controller := onboardingApiController{}
	app.Route("onboarding", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired(), middleware.RbacMiddleware())
		router.Post("list", controller.list)
		router.Post("export", controller.export)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("start", controller.start)
			idRoute.Put("steps/:stepId/complete", controller.completeStep)
			idRoute.Post("documents/:kind", controller.uploadDocument)
			idRoute.Get("documents/:kind", controller.getDocument)
			idRoute.Get("summary", controller.summary)
		})
	})
}

// @Summary Submission list
// @Tags Onboarding
// @Description Newest first, optionally by status
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 onboardingapimodels.SubmissionFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]onboardingapimodels.SubmissionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/onboarding/list [post]
func (c *onboardingApiController) list(ctx *fiber.Ctx) error {
	var payload onboardingapimodels.SubmissionFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, err := onboardinghandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get by ID
// @Tags Onboarding
// @Description Submission with its checklist
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "submission ID"
// @Success 200 {object} apimodels.Response{data=onboardingapimodels.SubmissionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/onboarding/{id} [get]
func (c *onboardingApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := onboardinghandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Start onboarding
// @Tags Onboarding
// @Description Creates the checklist and moves the submission to In Progress
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "submission ID"
// @Success 200 {object} apimodels.Response{data=onboardingapimodels.SubmissionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/onboarding/{id}/start [put]
func (c *onboardingApiController) start(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := onboardinghandler.Instance.Start(id, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Complete step
// @Tags Onboarding
// @Description Completing the last step completes the onboarding
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "submission ID"
// @Param   stepId         		path    string  				    	true         "step ID"
// @Success 200 {object} apimodels.Response{data=onboardingapimodels.SubmissionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/onboarding/{id}/steps/{stepId}/complete [put]
func (c *onboardingApiController) completeStep(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	stepID, err := c.GetParam(ctx, "stepId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := onboardinghandler.Instance.CompleteStep(id, stepID, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Upload document
// @Tags Onboarding
// @Description Kind is one of address_proof, college_certificates, college_id, photo
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "submission ID"
// @Param   kind          		path    string  				    	true         "document kind"
// @Param   file				formData	file 	true 	"document file"
// @Success 200 {object} apimodels.Response{data=onboardingapimodels.SubmissionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/onboarding/{id}/documents/{kind} [post]
func (c *onboardingApiController) uploadDocument(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	kind, err := c.GetParam(ctx, "kind")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("failed to open uploaded document")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()

	resp, err := onboardinghandler.Instance.UploadDocument(ctx.UserContext(), id, onboardingapimodels.DocumentKind(kind), file.Filename, buffer, file.Size)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Download document
// @Tags Onboarding
// @Description Download an uploaded document
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "submission ID"
// @Param   kind          		path    string  				    	true         "document kind"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/onboarding/{id}/documents/{kind} [get]
func (c *onboardingApiController) getDocument(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	kind, err := c.GetParam(ctx, "kind")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	file, err := onboardinghandler.Instance.GetDocument(ctx.UserContext(), id, onboardingapimodels.DocumentKind(kind))
	if err != nil {
		return c.SendError(ctx, err)
	}
	if file.ContentType != "" {
		ctx.Set(fiber.HeaderContentType, file.ContentType)
	}
	ctx.Set(fiber.HeaderContentDisposition, `inline; filename="`+file.FileName+`"`)
	return ctx.Send(file.Body)
}

// @Summary Export submissions
// @Tags Onboarding
// @Description Submissions as an XLSX workbook
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 onboardingapimodels.SubmissionFilter	true	"request body"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/onboarding/export [post]
func (c *onboardingApiController) export(ctx *fiber.Ctx) error {
	var payload onboardingapimodels.SubmissionFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	data, err := onboardinghandler.Instance.Export(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	fileName := fmt.Sprintf("onboarding-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set(fiber.HeaderContentType, xlsxContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Submission summary
// @Tags Onboarding
// @Description PDF summary of the application
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "submission ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/onboarding/{id}/summary [get]
func (c *onboardingApiController) summary(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	body, err := onboardinghandler.Instance.SummaryPDF(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, pdfContentType)
	ctx.Set(fiber.HeaderContentDisposition, `inline; filename="onboarding-`+id+`.pdf"`)
	return ctx.Send(body)
}
