package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ordena-api/internal/application/dto"
	"github.com/jhoicas/ordena-api/internal/application/usecase"
)

const msgSubcategoryNotFound = "The subcategory with the given ID was not found."

// SubcategoryHandler maneja las peticiones HTTP para el recurso Subcategory.
type SubcategoryHandler struct {
	uc *usecase.SubcategoryUseCase
}

// NewSubcategoryHandler construye el handler inyectando el caso de uso.
func NewSubcategoryHandler(uc *usecase.SubcategoryUseCase) *SubcategoryHandler {
	return &SubcategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar subcategorías
// @Tags         subcategories
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {array}   dto.SubcategoryResponse
// @Failure      409  {object}  dto.MessageResponse
// @Router       /api/subcategories [get]
func (h *SubcategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetPrincipal(c))
	if err != nil {
		return respondListError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener subcategoría por ID
// @Tags         subcategories
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path  string  true  "ID de la subcategoría"
// @Success      200  {object}  dto.SubcategoryResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /api/subcategories/{id} [get]
func (h *SubcategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return respondError(c, err, msgSubcategoryNotFound)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear subcategoría
// @Tags         subcategories
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        body  body  dto.CreateSubcategoryRequest  true  "Datos de la subcategoría"
// @Success      200   {object}  dto.SubcategoryResponse
// @Failure      400   {object}  dto.MessageResponse
// @Router       /api/subcategories [post]
func (h *SubcategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSubcategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetPrincipal(c), in)
	if err != nil {
		return respondError(c, err, msgSubcategoryNotFound)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar subcategoría
// @Tags         subcategories
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id    path  string                        true  "ID de la subcategoría"
// @Param        body  body  dto.UpdateSubcategoryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.MessageResponse
// @Router       /api/subcategories/{id} [put]
func (h *SubcategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSubcategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	if err := h.uc.Update(c.Context(), GetPrincipal(c), c.Params("id"), in); err != nil {
		return respondError(c, err, msgSubcategoryNotFound)
	}
	return respondSuccess(c)
}

// Delete godoc
// @Summary      Eliminar subcategoría
// @Tags         subcategories
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path  string  true  "ID de la subcategoría"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /api/subcategories/{id} [delete]
func (h *SubcategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetPrincipal(c), c.Params("id")); err != nil {
		return respondError(c, err, msgSubcategoryNotFound)
	}
	return respondSuccess(c)
}
