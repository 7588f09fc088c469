package dto

import (
	"fmt"
	"time"

	"github.com/jhoicas/ordena-api/internal/domain"
)

// CreateTemplateRequest entrada para crear plantillas en lote: una por cada
// location indicada, todas con el mismo supplier y días de pedido.
type CreateTemplateRequest struct {
	LocationIDs []string    `json:"location_ids"`
	SupplierID  string      `json:"supplier_id"`
	OrderDays   []time.Time `json:"order_days"`
}

// Validate valida la forma del payload.
func (r CreateTemplateRequest) Validate() error {
	if len(r.LocationIDs) == 0 {
		return fmt.Errorf("%w: location_ids no puede estar vacío", domain.ErrValidation)
	}
	if r.SupplierID == "" {
		return fmt.Errorf("%w: supplier_id es requerido", domain.ErrValidation)
	}
	if len(r.OrderDays) == 0 {
		return fmt.Errorf("%w: order_days no puede estar vacío", domain.ErrValidation)
	}
	return nil
}

// UpdateTemplateRequest entrada para actualizar una plantilla.
type UpdateTemplateRequest struct {
	LocationID *string     `json:"location_id"`
	SupplierID *string     `json:"supplier_id"`
	OrderDays  []time.Time `json:"order_days"`
}

// TemplateResponse salida de una plantilla.
type TemplateResponse struct {
	ID         string      `json:"id"`
	CompanyID  string      `json:"company_id"`
	LocationID string      `json:"location_id"`
	SupplierID string      `json:"supplier_id"`
	OrderDays  []time.Time `json:"order_days"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}
