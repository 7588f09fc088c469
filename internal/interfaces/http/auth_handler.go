package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ordena-api/internal/application/auth"
	"github.com/jhoicas/ordena-api/internal/application/dto"
)

// AuthHandler maneja la autenticación.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler inyectando el caso de uso.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Autenticar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.MessageResponse
// @Router       /api/auth [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err, dto.MsgBadLogin)
	}
	// El token también viaja en el header para clientes que no leen el body.
	c.Set(HeaderAuthToken, out.Token)
	return c.Status(fiber.StatusOK).JSON(out)
}
