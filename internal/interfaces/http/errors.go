package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/YudheerRM/bidding-insights/internal/application/dto"
	"github.com/YudheerRM/bidding-insights/internal/domain"
)

// statusFor maps an error kind to its HTTP status.
func statusFor(kind error) int {
	switch kind {
	case domain.ErrInvalidInput:
		return fiber.StatusBadRequest
	case domain.ErrUnauthenticated:
		return fiber.StatusUnauthorized
	case domain.ErrForbidden:
		return fiber.StatusForbidden
	case domain.ErrNotFound:
		return fiber.StatusNotFound
	case domain.ErrConflict:
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}

var defaultCodes = map[error]string{
	domain.ErrInvalidInput:    "VALIDATION_ERROR",
	domain.ErrUnauthenticated: "UNAUTHORIZED",
	domain.ErrForbidden:       "FORBIDDEN",
	domain.ErrNotFound:        "NOT_FOUND",
	domain.ErrConflict:        "CONFLICT",
}

// writeError renders err as {"code","message"}. Internal errors are logged here, once,
// and never leak their text to the client.
func writeError(c *fiber.Ctx, err error) error {
	var de *domain.Error
	if errors.As(err, &de) {
		return c.Status(statusFor(de.Kind)).JSON(dto.ErrorResponse{Code: de.Code, Message: de.Message})
	}
	if kind := domain.KindOf(err); kind != nil {
		return c.Status(statusFor(kind)).JSON(dto.ErrorResponse{Code: defaultCodes[kind], Message: err.Error()})
	}
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("user_id", GetUserID(c)).
		Msg("internal error")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "internal server error"})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
}

// ErrorHandler fiber-level fallback for errors returned by middleware or the router itself.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
	}
	return writeError(c, err)
}
