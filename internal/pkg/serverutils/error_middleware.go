package serverutils

import (
	"errors"

	"triponic-be/internal/pkg/limiter"
	"triponic-be/pkg/assistant"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates errors bubbled out of handlers into
// a consistent JSON envelope. Handlers that already wrote a response are
// left alone.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var genErr *assistant.GenerationUnavailableError
		var persistErr *assistant.PersistenceError
		var fiberErr *fiber.Error

		switch {
		case errors.Is(err, assistant.ErrInvalidInput):
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, err.Error()))
		case errors.Is(err, limiter.ErrLimitExceeded):
			return ctx.Status(fiber.StatusTooManyRequests).JSON(ErrorResponse(fiber.StatusTooManyRequests, err.Error()))
		case errors.As(err, &genErr):
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse(fiber.StatusServiceUnavailable, "AI service is temporarily unavailable"))
		case errors.As(err, &persistErr):
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "internal error"))
		case errors.As(err, &fiberErr):
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, err.Error()))
		}
	}
}
