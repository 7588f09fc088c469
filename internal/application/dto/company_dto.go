package dto

import (
	"fmt"
	"time"

	"github.com/jhoicas/ordena-api/internal/domain"
)

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Validate valida la forma del payload.
func (r CreateCompanyRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name es requerido", domain.ErrValidation)
	}
	if r.Email == "" {
		return fmt.Errorf("%w: email es requerido", domain.ErrValidation)
	}
	return nil
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
type UpdateCompanyRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
