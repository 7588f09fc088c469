package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ordena-api/internal/application/dto"
	"github.com/jhoicas/ordena-api/internal/application/usecase"
)

const msgOrderNotFound = "The order with the given ID was not found."

// OrderHandler maneja las peticiones HTTP para el recurso Order, incluidos
// los documentos PDF y XML del pedido.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler inyectando el caso de uso.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// List godoc
// @Summary      Listar pedidos visibles
// @Tags         orders
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {array}   dto.OrderResponse
// @Failure      409  {object}  dto.MessageResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetPrincipal(c))
	if err != nil {
		return respondListError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener pedido por ID
// @Tags         orders
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return respondError(c, err, msgOrderNotFound)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear pedido
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        body  body  dto.CreateOrderRequest  true  "Datos del pedido"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.MessageResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetPrincipal(c), in)
	if err != nil {
		return respondError(c, err, msgOrderNotFound)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar pedido
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id    path  string                  true  "ID del pedido"
// @Param        body  body  dto.UpdateOrderRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.MessageResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	if err := h.uc.Update(c.Context(), GetPrincipal(c), c.Params("id"), in); err != nil {
		return respondError(c, err, msgOrderNotFound)
	}
	return respondSuccess(c)
}

// Delete godoc
// @Summary      Eliminar pedido
// @Tags         orders
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetPrincipal(c), c.Params("id")); err != nil {
		return respondError(c, err, msgOrderNotFound)
	}
	return respondSuccess(c)
}

// PDF godoc
// @Summary      Descargar PDF del pedido
// @Tags         orders
// @Produce      application/pdf
// @Security     ApiKeyAuth
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.MessageResponse
// @Router       /api/orders/{id}/pdf [get]
func (h *OrderHandler) PDF(c *fiber.Ctx) error {
	out, err := h.uc.RenderPDF(c.Context(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return respondError(c, err, msgOrderNotFound)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="order.pdf"`)
	return c.Send(out)
}

// XML godoc
// @Summary      Descargar XML del pedido
// @Tags         orders
// @Produce      application/xml
// @Security     ApiKeyAuth
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.MessageResponse
// @Router       /api/orders/{id}/xml [get]
func (h *OrderHandler) XML(c *fiber.Ctx) error {
	out, err := h.uc.RenderXML(c.Context(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return respondError(c, err, msgOrderNotFound)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(out)
}
