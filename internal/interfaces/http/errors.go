package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/ordena-api/internal/application/dto"
	"github.com/jhoicas/ordena-api/internal/domain"
)

// respondError traduce los errores de dominio al contrato HTTP de la API.
// Los textos y códigos son literales que los clientes existentes parsean.
func respondError(c *fiber.Ctx, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, domain.ErrMalformedID):
		return c.Status(fiber.StatusTeapot).JSON(dto.MessageResponse{Message: dto.MsgTeapot})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: notFoundMsg})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: dto.MsgNoPermissions})
	case errors.Is(err, domain.ErrInvalidCredential):
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: dto.MsgBadLogin})
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidReference),
		errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: dto.MsgListFailure})
	}
}

// respondListError cubre los read-all: el fallo de persistencia en listados
// responde 409, no 500 (contrato histórico, los clientes lo reintentan).
func respondListError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("fallo de persistencia en listado")
	return c.Status(fiber.StatusConflict).JSON(dto.MessageResponse{Message: dto.MsgListFailure})
}

// respondSuccess es el acuse de update/delete: 200 con mensaje fijo, sin eco
// de la entidad. Los create devuelven la entidad creada.
func respondSuccess(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Message: dto.MsgSuccess})
}

func respondBadBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid request body"})
}
