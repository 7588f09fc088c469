package dto

import (
	"fmt"
	"time"

	"github.com/jhoicas/ordena-api/internal/domain"
)

// CreateCategoryRequest entrada para crear una categoría. CompanyID opcional,
// mismo contrato que CreateLocationRequest: se fuerza desde el token.
type CreateCategoryRequest struct {
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
}

// Validate valida la forma del payload.
func (r CreateCategoryRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name es requerido", domain.ErrValidation)
	}
	return nil
}

// UpdateCategoryRequest entrada para actualizar una categoría.
type UpdateCategoryRequest struct {
	Name *string `json:"name"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
