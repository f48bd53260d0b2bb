package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorStatus maps a sentinel error to the HTTP status returned for it.
type ErrorStatus struct {
	Err    error
	Status int
}

// ErrorHandlerMiddleware turns errors returned by handlers into the standard
// envelope. Sentinels listed in statuses are matched with errors.Is.
func ErrorHandlerMiddleware(statuses ...ErrorStatus) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			res := ErrorResponse(fiber.StatusBadRequest, "Validation failed")
			res.Data = validationErr.Fields
			return ctx.Status(fiber.StatusBadRequest).JSON(res)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		for _, s := range statuses {
			if errors.Is(err, s.Err) {
				return ctx.Status(s.Status).JSON(ErrorResponse(s.Status, err.Error()))
			}
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, err.Error()))
	}
}
