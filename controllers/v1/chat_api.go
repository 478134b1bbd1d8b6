package apiv1

import (
	"ets-backend/controllers"
	chathandler "ets-backend/lib/chat"
	"ets-backend/middleware"
	apimodels "ets-backend/models/api"
	chatapimodels "ets-backend/models/api/chat"

	"github.com/gofiber/fiber/v2"
)

type chatApiController struct {
	controllers.BaseAPIController
}

func InitChatApiRouters(app *fiber.App) {
	controller := chatApiController{}
	app.Route("chat", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired(), middleware.RbacMiddleware())
		router.Get("conversations", controller.conversations)
		router.Get("conversations/:id", controller.conversation)
		router.Get("conversations/:id/messages", controller.messages)
		router.Post("conversations/:id/messages", controller.send)
		router.Post("groups", controller.createGroup)
		router.Post("direct", controller.direct)
		router.Get("online/:id", controller.online)
	})
}

// @Summary Conversations
// @Tags Chat
// @Description Conversations of the current user, latest activity first
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]chatapimodels.ConversationView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/chat/conversations [get]
func (c *chatApiController) conversations(ctx *fiber.Ctx) error {
	list, err := chathandler.Instance.ListForUser(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get conversation
// @Tags Chat
// @Description Only participants can read a conversation
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "conversation ID"
// @Success 200 {object} apimodels.Response{data=chatapimodels.ConversationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/chat/conversations/{id} [get]
func (c *chatApiController) conversation(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := chathandler.Instance.Get(id, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Messages
// @Tags Chat
// @Description Messages in send order
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "conversation ID"
// @Success 200 {object} apimodels.Response{data=[]chatapimodels.MessageView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/chat/conversations/{id}/messages [get]
func (c *chatApiController) messages(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, err := chathandler.Instance.Messages(id, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Send message
// @Tags Chat
// @Description Other participants receive a websocket event
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "conversation ID"
// @Param	body body	 chatapimodels.SendMessage	true	"request body"
// @Success 200 {object} apimodels.Response{data=chatapimodels.MessageView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/chat/conversations/{id}/messages [post]
func (c *chatApiController) send(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload chatapimodels.SendMessage
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := chathandler.Instance.Send(id, middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Create group
// @Tags Chat
// @Description The creator becomes the group admin
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 chatapimodels.CreateGroup	true	"request body"
// @Success 200 {object} apimodels.Response{data=chatapimodels.ConversationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/chat/groups [post]
func (c *chatApiController) createGroup(ctx *fiber.Ctx) error {
	var payload chatapimodels.CreateGroup
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := chathandler.Instance.CreateGroup(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Direct conversation
// @Tags Chat
// @Description Returns the existing conversation with the user or creates one
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 chatapimodels.DirectRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=chatapimodels.ConversationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/chat/direct [post]
func (c *chatApiController) direct(ctx *fiber.Ctx) error {
	var payload chatapimodels.DirectRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := chathandler.Instance.GetOrCreateDirect(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Online status
// @Tags Chat
// @Description Whether the user has an open websocket session
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "user ID"
// @Success 200 {object} apimodels.Response{data=chatapimodels.OnlineView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @router /api/v1/chat/online/{id} [get]
func (c *chatApiController) online(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(chathandler.Instance.IsOnline(id)))
}
