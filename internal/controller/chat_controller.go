package controller

import (
	"faq-chat-be/internal/dto"
	"faq-chat-be/internal/handler"
	"faq-chat-be/internal/pkg/serverutils"
	"faq-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	OpenSession(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	CloseSession(ctx *fiber.Ctx) error
	ReopenSession(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	GetSuggestions(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
	wsHandler   *handler.ChatWsHandler
}

func NewChatController(chatService service.IChatService, wsHandler *handler.ChatWsHandler) IChatController {
	return &chatController{
		chatService: chatService,
		wsHandler:   wsHandler,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("/sessions", c.OpenSession)
	h.Post("/sessions/:id/messages", c.SendMessage)
	h.Post("/sessions/:id/close", c.CloseSession)
	h.Post("/sessions/:id/reopen", c.ReopenSession)
	h.Get("/sessions/:id/history", c.GetHistory)
	h.Get("/suggestions", c.GetSuggestions)

	if c.wsHandler != nil {
		h.Get("/ws", c.wsHandler.ServeWs)
	}
}

func (c *chatController) OpenSession(ctx *fiber.Ctx) error {
	res, err := c.chatService.OpenSession(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Session opened", res))
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SendMessage(ctx.UserContext(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Message answered", res))
}

func (c *chatController) CloseSession(ctx *fiber.Ctx) error {
	res, err := c.chatService.CloseSession(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Session closed", res))
}

func (c *chatController) ReopenSession(ctx *fiber.Ctx) error {
	res, err := c.chatService.ReopenSession(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Session reopened", res))
}

func (c *chatController) GetHistory(ctx *fiber.Ctx) error {
	res, err := c.chatService.GetHistory(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Chat history", res))
}

func (c *chatController) GetSuggestions(ctx *fiber.Ctx) error {
	res, err := c.chatService.DefaultSuggestions(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Suggestions", res))
}
