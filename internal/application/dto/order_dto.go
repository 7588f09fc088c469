package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ordena-api/internal/domain"
	"github.com/jhoicas/ordena-api/internal/domain/entity"
)

// OrderItemPayload línea de pedido en entrada/salida.
type OrderItemPayload struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest entrada para crear un pedido.
type CreateOrderRequest struct {
	LocationID string             `json:"location_id"`
	SupplierID string             `json:"supplier_id"`
	Items      []OrderItemPayload `json:"items"`
}

// Validate valida la forma del payload; cada cantidad debe estar en [0, 255].
func (r CreateOrderRequest) Validate() error {
	if r.LocationID == "" {
		return fmt.Errorf("%w: location_id es requerido", domain.ErrValidation)
	}
	if r.SupplierID == "" {
		return fmt.Errorf("%w: supplier_id es requerido", domain.ErrValidation)
	}
	return validateItems(r.Items)
}

func validateItems(items []OrderItemPayload) error {
	for _, it := range items {
		if it.ProductID == "" {
			return fmt.Errorf("%w: product_id es requerido en cada línea", domain.ErrValidation)
		}
		if it.Quantity < entity.OrderItemQtyMin || it.Quantity > entity.OrderItemQtyMax {
			return fmt.Errorf("%w: quantity debe estar entre %d y %d",
				domain.ErrValidation, entity.OrderItemQtyMin, entity.OrderItemQtyMax)
		}
	}
	return nil
}

// UpdateOrderRequest entrada para actualizar un pedido.
type UpdateOrderRequest struct {
	SupplierID *string            `json:"supplier_id"`
	Status     *string            `json:"status"`
	Items      []OrderItemPayload `json:"items"`
}

// Validate valida la forma del payload de actualización.
func (r UpdateOrderRequest) Validate() error {
	if r.Status != nil {
		switch *r.Status {
		case entity.OrderStatusPending, entity.OrderStatusPlaced, entity.OrderStatusReceived:
		default:
			return fmt.Errorf("%w: status desconocido %q", domain.ErrValidation, *r.Status)
		}
	}
	return validateItems(r.Items)
}

// OrderResponse salida de un pedido con total calculado.
type OrderResponse struct {
	ID         string             `json:"id"`
	LocationID string             `json:"location_id"`
	SupplierID string             `json:"supplier_id"`
	Status     string             `json:"status"`
	Items      []OrderItemPayload `json:"items"`
	Total      decimal.Decimal    `json:"total"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}
