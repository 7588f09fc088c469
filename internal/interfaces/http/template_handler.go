package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ordena-api/internal/application/dto"
	"github.com/jhoicas/ordena-api/internal/application/usecase"
)

const msgTemplateNotFound = "The template with the given ID was not found."

// TemplateHandler maneja las peticiones HTTP para el recurso Template.
type TemplateHandler struct {
	uc *usecase.TemplateUseCase
}

// NewTemplateHandler construye el handler inyectando el caso de uso.
func NewTemplateHandler(uc *usecase.TemplateUseCase) *TemplateHandler {
	return &TemplateHandler{uc: uc}
}

// List godoc
// @Summary      Listar plantillas visibles
// @Tags         templates
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {array}   dto.TemplateResponse
// @Failure      409  {object}  dto.MessageResponse
// @Router       /api/templates [get]
func (h *TemplateHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetPrincipal(c))
	if err != nil {
		return respondListError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener plantilla por ID
// @Tags         templates
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path  string  true  "ID de la plantilla"
// @Success      200  {object}  dto.TemplateResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /api/templates/{id} [get]
func (h *TemplateHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return respondError(c, err, msgTemplateNotFound)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear plantillas en lote (una por location)
// @Tags         templates
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        body  body  dto.CreateTemplateRequest  true  "Lote de plantillas"
// @Success      200   {array}   dto.TemplateResponse
// @Failure      400   {object}  dto.MessageResponse
// @Router       /api/templates [post]
func (h *TemplateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetPrincipal(c), in)
	if err != nil {
		return respondError(c, err, msgTemplateNotFound)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar plantilla
// @Tags         templates
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id    path  string                     true  "ID de la plantilla"
// @Param        body  body  dto.UpdateTemplateRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.MessageResponse
// @Router       /api/templates/{id} [put]
func (h *TemplateHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	if err := h.uc.Update(c.Context(), GetPrincipal(c), c.Params("id"), in); err != nil {
		return respondError(c, err, msgTemplateNotFound)
	}
	return respondSuccess(c)
}

// Delete godoc
// @Summary      Eliminar plantilla
// @Tags         templates
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path  string  true  "ID de la plantilla"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /api/templates/{id} [delete]
func (h *TemplateHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetPrincipal(c), c.Params("id")); err != nil {
		return respondError(c, err, msgTemplateNotFound)
	}
	return respondSuccess(c)
}
