package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/instock-api/internal/application/dto"
	"github.com/jhoicas/instock-api/internal/domain"
	"github.com/jhoicas/instock-api/pkg/logger"
)

// Códigos de error de la API.
const (
	CodeValidation  = "VALIDATION"
	CodeInvalidBody = "INVALID_BODY"
	CodeInvalidID   = "INVALID_ID"
	CodeNotFound    = "NOT_FOUND"
	CodeInternal    = "INTERNAL"
)

const internalMessage = "Internal server error"

// respondError traduce errores de dominio a HTTP. Los fallos no esperados se registran
// con el detalle completo y al cliente solo le llega un mensaje opaco.
func respondError(c *fiber.Ctx, log *logger.Logger, err error, notFound string) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: verr.Message})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: CodeNotFound, Message: notFound})
	}
	log.Error().Err(err).
		Str("request_id", GetRequestID(c)).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: CodeInternal, Message: internalMessage})
}

// paramID lee :id como entero positivo.
func paramID(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidID, Message: "id must be a positive integer"})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidBody, Message: "Invalid request body"})
}
