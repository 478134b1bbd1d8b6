package apiv1

import (
	"ets-backend/controllers"
	projecthandler "ets-backend/lib/project"
	taskhandler "ets-backend/lib/task"
	"ets-backend/middleware"
	apimodels "ets-backend/models/api"
	projectapimodels "ets-backend/models/api/project"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

type projectApiController struct {
	controllers.BaseAPIController
}

func InitProjectApiRouters(app *fiber.App) {
	controller := projectApiController{}
	app.Route("projects", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired(), middleware.RbacMiddleware())
		router.Post("", controller.create)
		router.Post("list", controller.list)
		router.Route(":id", func(projectRoute fiber.Router) {
			projectRoute.Get("", controller.get)
			projectRoute.Put("", controller.update)
			projectRoute.Put("roadmap", controller.saveRoadmap)
			projectRoute.Get("tasks/export", controller.exportTasks)
		})
	})
}

// @Summary Create
// @Tags Projects
// @Description Company defaults to the caller's company
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 projectapimodels.ProjectData	true	"request body"
// @Success 200 {object} apimodels.Response{data=projectapimodels.ProjectView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects [post]
func (c *projectApiController) create(ctx *fiber.Ctx) error {
	var payload projectapimodels.ProjectData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if payload.CompanyID == "" {
		payload.CompanyID = middleware.GetUserCompany(ctx)
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := projecthandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Project list
// @Tags Projects
// @Description Filter by manager, company and department
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 projectapimodels.ProjectFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]projectapimodels.ProjectView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects/list [post]
func (c *projectApiController) list(ctx *fiber.Ctx) error {
	var payload projectapimodels.ProjectFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, err := projecthandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get by ID
// @Tags Projects
// @Description Project with its roadmap
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "project ID"
// @Success 200 {object} apimodels.Response{data=projectapimodels.ProjectView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects/{id} [get]
func (c *projectApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := projecthandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update
// @Tags Projects
// @Description Partial update
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "project ID"
// @Param	body body	 projectapimodels.ProjectUpdate	true	"request body"
// @Success 200 {object} apimodels.Response{data=projectapimodels.ProjectView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects/{id} [put]
func (c *projectApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload projectapimodels.ProjectUpdate
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := projecthandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Save roadmap
// @Tags Projects
// @Description Replaces the whole milestone list
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "project ID"
// @Param	body body	 projectapimodels.RoadmapData	true	"request body"
// @Success 200 {object} apimodels.Response{data=projectapimodels.ProjectView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects/{id}/roadmap [put]
func (c *projectApiController) saveRoadmap(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload projectapimodels.RoadmapData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := projecthandler.Instance.SaveRoadmap(id, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Export tasks
// @Tags Projects
// @Description Project tasks as an XLSX workbook
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "project ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects/{id}/tasks/export [get]
func (c *projectApiController) exportTasks(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	data, err := taskhandler.Instance.ExportProject(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	fileName := fmt.Sprintf("tasks-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set(fiber.HeaderContentType, xlsxContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}
