package apiv1

import (
	"ets-backend/controllers"
	attendancehandler "ets-backend/lib/attendance"
	"ets-backend/middleware"
	"ets-backend/models"
	apimodels "ets-backend/models/api"
	attendanceapimodels "ets-backend/models/api/attendance"
	"time"

	"github.com/gofiber/fiber/v2"
)

type attendanceApiController struct {
	controllers.BaseAPIController
}

func InitAttendanceApiRouters(app *fiber.App) {
	controller := attendanceApiController{}
	app.Route("attendance", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired(), middleware.RbacMiddleware())
		router.Post("", controller.mark)
		router.Get("date/:date", controller.byDate)
		router.Get("user/:id", controller.forUser)
	})
}

// @Summary Attendance by date
// @Tags Attendance
// @Description Ids of users present on the date
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   date          		path    string  				    	true         "YYYY-MM-DD"
// @Success 200 {object} apimodels.Response{data=attendanceapimodels.DayView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/date/{date} [get]
func (c *attendanceApiController) byDate(ctx *fiber.Ctx) error {
	date, err := c.GetParam(ctx, "date")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := attendancehandler.Instance.ByDate(date)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Attendance of a user
// @Tags Attendance
// @Description Dates the user was present in the month. Defaults to the current month.
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "user ID"
// @Param   year          		query    int  				    	false         "year"
// @Param   month          		query    int  				    	false         "month 1..12"
// @Success 200 {object} apimodels.Response{data=attendanceapimodels.MonthView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/user/{id} [get]
func (c *attendanceApiController) forUser(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	now := time.Now()
	year := ctx.QueryInt("year", now.Year())
	month := ctx.QueryInt("month", int(now.Month()))

	resp, err := attendancehandler.Instance.ForUserByMonth(id, year, month)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Mark attendance
// @Tags Attendance
// @Description Marking twice is a no-op. Employees can only mark themselves.
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 attendanceapimodels.MarkRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=attendanceapimodels.DayView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance [post]
func (c *attendanceApiController) mark(ctx *fiber.Ctx) error {
	var payload attendanceapimodels.MarkRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if payload.UserID == "" || middleware.GetUserRole(ctx) == models.EmployeeRole {
		payload.UserID = middleware.GetUserID(ctx)
	}

	resp, err := attendancehandler.Instance.Mark(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
