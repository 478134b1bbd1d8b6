package dict

import (
	"ets-backend/controllers"
	companyprovider "ets-backend/lib/dicts/company"
	"ets-backend/middleware"
	apimodels "ets-backend/models/api"
	dictapimodels "ets-backend/models/api/dict"

	"github.com/gofiber/fiber/v2"
)

type companyDictApiController struct {
	controllers.BaseAPIController
}

func InitCompanyDictApiRouters(app *fiber.App) {
	controller := companyDictApiController{}
	app.Route("company", func(router fiber.Router) {
		router.Post("find", controller.companyFindByName)
		router.Post("", controller.companyCreate)
		router.Put(":id", controller.companyUpdate)
		router.Get(":id", controller.companyGet)
	})
}

// @Summary Create
// @Tags Dictionary. Company
// @Description Create a company owned by the current user
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.CompanyData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/company [post]
func (c *companyDictApiController) companyCreate(ctx *fiber.Ctx) error {
	var payload dictapimodels.CompanyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := companyprovider.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update
// @Tags Dictionary. Company
// @Description Update
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.CompanyData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/company/{id} [put]
func (c *companyDictApiController) companyUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload dictapimodels.CompanyData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = companyprovider.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Get by ID
// @Tags Dictionary. Company
// @Description Get by ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.CompanyView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/company/{id} [get]
func (c *companyDictApiController) companyGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := companyprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Find by name
// @Tags Dictionary. Company
// @Description Empty name lists every company
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.CompanyData	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.CompanyView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/company/find [post]
func (c *companyDictApiController) companyFindByName(ctx *fiber.Ctx) error {
	var payload dictapimodels.CompanyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, err := companyprovider.Instance.FindByName(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
