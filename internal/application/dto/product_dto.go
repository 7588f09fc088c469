package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ordena-api/internal/domain"
)

// CreateProductRequest entrada para crear un producto. Supplier obligatorio;
// categoría y subcategoría opcionales.
type CreateProductRequest struct {
	Name          string          `json:"name"`
	SupplierID    string          `json:"supplier_id"`
	CategoryID    *string         `json:"category_id"`
	SubcategoryID *string         `json:"subcategory_id"`
	Price         decimal.Decimal `json:"price"`
}

// Validate valida la forma del payload.
func (r CreateProductRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name es requerido", domain.ErrValidation)
	}
	if r.SupplierID == "" {
		return fmt.Errorf("%w: supplier_id es requerido", domain.ErrValidation)
	}
	if r.Price.IsNegative() {
		return fmt.Errorf("%w: price no puede ser negativo", domain.ErrValidation)
	}
	return nil
}

// UpdateProductRequest entrada para actualizar un producto.
type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	SupplierID    *string          `json:"supplier_id"`
	CategoryID    *string          `json:"category_id"`
	SubcategoryID *string          `json:"subcategory_id"`
	Price         *decimal.Decimal `json:"price"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	SupplierID    string          `json:"supplier_id"`
	CategoryID    *string         `json:"category_id,omitempty"`
	SubcategoryID *string         `json:"subcategory_id,omitempty"`
	Price         decimal.Decimal `json:"price"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
