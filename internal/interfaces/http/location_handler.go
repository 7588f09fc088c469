package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ordena-api/internal/application/dto"
	"github.com/jhoicas/ordena-api/internal/application/usecase"
)

const msgLocationNotFound = "The location with the given ID was not found."

// LocationHandler maneja las peticiones HTTP para el recurso Location.
type LocationHandler struct {
	uc *usecase.LocationUseCase
}

// NewLocationHandler construye el handler inyectando el caso de uso.
func NewLocationHandler(uc *usecase.LocationUseCase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

// List godoc
// @Summary      Listar sedes visibles
// @Tags         locations
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {array}   dto.LocationResponse
// @Failure      409  {object}  dto.MessageResponse
// @Router       /api/locations [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetPrincipal(c))
	if err != nil {
		return respondListError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener sede por ID
// @Tags         locations
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path  string  true  "ID de la sede"
// @Success      200  {object}  dto.LocationResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /api/locations/{id} [get]
func (h *LocationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return respondError(c, err, msgLocationNotFound)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear sede
// @Tags         locations
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        body  body  dto.CreateLocationRequest  true  "Datos de la sede"
// @Success      200   {object}  dto.LocationResponse
// @Failure      400   {object}  dto.MessageResponse
// @Router       /api/locations [post]
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetPrincipal(c), in)
	if err != nil {
		return respondError(c, err, msgLocationNotFound)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar sede
// @Tags         locations
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id    path  string                     true  "ID de la sede"
// @Param        body  body  dto.UpdateLocationRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.MessageResponse
// @Router       /api/locations/{id} [put]
func (h *LocationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	if err := h.uc.Update(c.Context(), GetPrincipal(c), c.Params("id"), in); err != nil {
		return respondError(c, err, msgLocationNotFound)
	}
	return respondSuccess(c)
}

// Delete godoc
// @Summary      Eliminar sede
// @Tags         locations
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path  string  true  "ID de la sede"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /api/locations/{id} [delete]
func (h *LocationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetPrincipal(c), c.Params("id")); err != nil {
		return respondError(c, err, msgLocationNotFound)
	}
	return respondSuccess(c)
}
