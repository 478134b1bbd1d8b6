package apiv1

import (
	"ets-backend/controllers"
	taskhandler "ets-backend/lib/task"
	"ets-backend/middleware"
	"ets-backend/models"
	apimodels "ets-backend/models/api"
	taskapimodels "ets-backend/models/api/task"

	"github.com/gofiber/fiber/v2"
)

type taskApiController struct {
	controllers.BaseAPIController
}

func InitTaskApiRouters(app *fiber.App) {
	controller := taskApiController{}
	app.Route("tasks", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired(), middleware.RbacMiddleware())
		router.Post("", controller.create)
		router.Post("list", controller.list)
		router.Route(":id", func(taskRoute fiber.Router) {
			taskRoute.Get("", controller.get)
			taskRoute.Put("", controller.update)
			taskRoute.Delete("", controller.delete)
			taskRoute.Post("notes", controller.addNote)
			taskRoute.Put("dependency", controller.setDependency)
			taskRoute.Delete("dependency", controller.clearDependency)
		})
	})
}

// @Summary Create
// @Tags Tasks
// @Description Status defaults to To-Do
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 taskapimodels.TaskData	true	"request body"
// @Success 200 {object} apimodels.Response{data=taskapimodels.TaskView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/tasks [post]
func (c *taskApiController) create(ctx *fiber.Ctx) error {
	var payload taskapimodels.TaskData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := taskhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Task list
// @Tags Tasks
// @Description Filter by project, assignee or team. Employees always get their own tasks.
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 taskapimodels.TaskFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]taskapimodels.TaskView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/tasks/list [post]
func (c *taskApiController) list(ctx *fiber.Ctx) error {
	var payload taskapimodels.TaskFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if middleware.GetUserRole(ctx) == models.EmployeeRole {
		payload.AssigneeID = middleware.GetUserID(ctx)
		payload.TeamIDs = nil
	}

	list, err := taskhandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get by ID
// @Tags Tasks
// @Description Task with notes and dependency history
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "task ID"
// @Success 200 {object} apimodels.Response{data=taskapimodels.TaskView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/tasks/{id} [get]
func (c *taskApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := taskhandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update
// @Tags Tasks
// @Description Partial update. A task blocked by a dependency stays On Hold.
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "task ID"
// @Param	body body	 taskapimodels.TaskUpdate	true	"request body"
// @Success 200 {object} apimodels.Response{data=taskapimodels.TaskView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/tasks/{id} [put]
func (c *taskApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload taskapimodels.TaskUpdate
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := taskhandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete
// @Tags Tasks
// @Description Delete with notes and dependency history
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "task ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/tasks/{id} [delete]
func (c *taskApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = taskhandler.Instance.Delete(id); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Add note
// @Tags Tasks
// @Description Note author is the current user
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "task ID"
// @Param	body body	 taskapimodels.NoteData	true	"request body"
// @Success 200 {object} apimodels.Response{data=taskapimodels.TaskView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/tasks/{id}/notes [post]
func (c *taskApiController) addNote(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload taskapimodels.NoteData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := taskhandler.Instance.AddNote(id, middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Set dependency
// @Tags Tasks
// @Description Puts the task On Hold until the given user unblocks it
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "task ID"
// @Param	body body	 taskapimodels.DependencyData	true	"request body"
// @Success 200 {object} apimodels.Response{data=taskapimodels.TaskView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/tasks/{id}/dependency [put]
func (c *taskApiController) setDependency(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload taskapimodels.DependencyData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := taskhandler.Instance.SetDependency(id, middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Clear dependency
// @Tags Tasks
// @Description Returns the task to To-Do and appends one "cleared" log entry. A task without a dependency is rejected with 400 and no log entry is written.
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "task ID"
// @Success 200 {object} apimodels.Response{data=taskapimodels.TaskView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/tasks/{id}/dependency [delete]
func (c *taskApiController) clearDependency(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := taskhandler.Instance.ClearDependency(id, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
