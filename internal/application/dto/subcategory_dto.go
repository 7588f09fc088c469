package dto

import (
	"fmt"
	"time"

	"github.com/jhoicas/ordena-api/internal/domain"
)

// CreateSubcategoryRequest entrada para crear una subcategoría.
type CreateSubcategoryRequest struct {
	CompanyID  string `json:"company_id"`
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}

// Validate valida la forma del payload.
func (r CreateSubcategoryRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name es requerido", domain.ErrValidation)
	}
	if r.CategoryID == "" {
		return fmt.Errorf("%w: category_id es requerido", domain.ErrValidation)
	}
	return nil
}

// UpdateSubcategoryRequest entrada para actualizar una subcategoría.
type UpdateSubcategoryRequest struct {
	CategoryID *string `json:"category_id"`
	Name       *string `json:"name"`
}

// SubcategoryResponse salida de una subcategoría.
type SubcategoryResponse struct {
	ID         string    `json:"id"`
	CompanyID  string    `json:"company_id"`
	CategoryID string    `json:"category_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
