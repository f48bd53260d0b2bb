package controller

import (
	"faq-chat-be/internal/pkg/serverutils"
	"faq-chat-be/internal/service"
	"faq-chat-be/pkg/faq"

	"github.com/gofiber/fiber/v2"
)

// ErrorStatuses maps domain errors to HTTP status codes for ErrorHandlerMiddleware.
var ErrorStatuses = []serverutils.ErrorStatus{
	{Err: service.ErrSessionNotFound, Status: fiber.StatusNotFound},
	{Err: faq.ErrSessionClosed, Status: fiber.StatusConflict},
	{Err: faq.ErrKnowledgeBaseNotReady, Status: fiber.StatusServiceUnavailable},
	{Err: service.ErrInvalidCredentials, Status: fiber.StatusUnauthorized},
	{Err: service.ErrDatabaseUnavailable, Status: fiber.StatusServiceUnavailable},
	{Err: service.ErrFaqEntryNotFound, Status: fiber.StatusNotFound},
}
