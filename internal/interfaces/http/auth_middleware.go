package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ordena-api/internal/application/dto"
	"github.com/jhoicas/ordena-api/internal/domain/access"
	"github.com/jhoicas/ordena-api/pkg/jwt"
)

// Header de autenticación de la API. No es Bearer: el token viaja pelado.
const HeaderAuthToken = "x-auth-token"

// Locals key para el Principal resuelto en Fiber.
const localPrincipal = "principal"

// AuthMiddleware valida el JWT de x-auth-token y deja el Principal en
// c.Locals. Header ausente es 401; token presente pero indescifrable es 400:
// dos fallos distintos con dos códigos distintos.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Get(HeaderAuthToken)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: dto.MsgNoToken})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: dto.MsgInvalidToken})
		}
		c.Locals(localPrincipal, access.Principal{
			UserID:      claims.UserID,
			CompanyID:   claims.CompanyID,
			Role:        access.Role(claims.Role),
			LocationIDs: claims.LocationIDs,
		})
		return c.Next()
	}
}

// GetPrincipal devuelve el Principal del contexto (después del middleware).
func GetPrincipal(c *fiber.Ctx) access.Principal {
	v := c.Locals(localPrincipal)
	if v == nil {
		return access.Principal{}
	}
	p, _ := v.(access.Principal)
	return p
}

// RequireRole es la puerta de roles por ruta. Un rol insuficiente responde
// 401 con el mensaje de permisos, no 403: contrato histórico de la API.
func RequireRole(roles ...access.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !GetPrincipal(c).Can(roles...) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: dto.MsgNoPermissions})
		}
		return c.Next()
	}
}
