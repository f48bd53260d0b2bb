package handler

import (
	"context"
	"errors"

	"faq-chat-be/internal/dto"
	"faq-chat-be/internal/pkg/logger"
	"faq-chat-be/internal/pkg/serverutils"
	"faq-chat-be/internal/service"
	internalWS "faq-chat-be/internal/websocket"
	"faq-chat-be/pkg/faq"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type ChatWsHandler struct {
	chatService service.IChatService
	hub         *internalWS.Hub
	logger      logger.ILogger
}

func NewChatWsHandler(chatService service.IChatService, hub *internalWS.Hub, log logger.ILogger) *ChatWsHandler {
	return &ChatWsHandler{
		chatService: chatService,
		hub:         hub,
		logger:      log,
	}
}

// ServeWs upgrades GET /ws?session_id=... to a chat socket for an existing session.
func (h *ChatWsHandler) ServeWs(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Missing session_id"))
	}

	if _, err := h.chatService.GetHistory(c.UserContext(), sessionID); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, err.Error()))
		}
		return err
	}

	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("ChatWsHandler", "Starting chat socket", map[string]interface{}{"session_id": sessionID})
		internalWS.ServeWs(h.hub, conn, sessionID, h.HandleMessage)
		h.logger.Info("ChatWsHandler", "Chat socket ended", map[string]interface{}{"session_id": sessionID})
	})(c)
}

// HandleMessage runs one turn and builds the frame sent back to the session.
func (h *ChatWsHandler) HandleMessage(ctx context.Context, sessionID, text string) interface{} {
	res, err := h.chatService.SendMessage(ctx, sessionID, &dto.SendMessageRequest{Text: text})
	if err != nil {
		msg := err.Error()
		if errors.Is(err, faq.ErrSessionClosed) {
			msg = "La conversación está cerrada."
		}
		return dto.WsChatMessage{Type: "error", SessionId: sessionID, Text: msg}
	}

	return dto.WsChatMessage{
		Type:             "reply",
		SessionId:        sessionID,
		Text:             res.Reply,
		RelatedQuestions: res.RelatedQuestions,
		Suggestions:      res.Suggestions,
		Outcome:          res.Outcome,
	}
}
