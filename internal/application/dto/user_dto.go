package dto

import (
	"fmt"
	"time"

	"github.com/jhoicas/ordena-api/internal/domain"
	"github.com/jhoicas/ordena-api/internal/domain/access"
)

// CreateUserRequest entrada para crear un usuario (password en texto, se
// hashea en el use case vía auth.PrepareWrite). CompanyID se fuerza desde el
// token como en el resto de entidades con tenant.
type CreateUserRequest struct {
	CompanyID   string   `json:"company_id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Role        string   `json:"role"`
	LocationIDs []string `json:"location_ids"`
}

// Validate valida la forma del payload; el rol debe ser uno de la enumeración.
func (r CreateUserRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name es requerido", domain.ErrValidation)
	}
	if r.Email == "" {
		return fmt.Errorf("%w: email es requerido", domain.ErrValidation)
	}
	if r.Password == "" {
		return fmt.Errorf("%w: password es requerido", domain.ErrValidation)
	}
	if !access.Role(r.Role).Valid() {
		return fmt.Errorf("%w: role desconocido %q", domain.ErrValidation, r.Role)
	}
	return nil
}

// UpdateUserRequest entrada para actualizar un usuario. Password presente
// implica re-hash (exactamente uno) antes de persistir.
type UpdateUserRequest struct {
	Name        *string  `json:"name"`
	Email       *string  `json:"email"`
	Password    *string  `json:"password"`
	Role        *string  `json:"role"`
	LocationIDs []string `json:"location_ids"`
}

// Validate valida la forma del payload de actualización.
func (r UpdateUserRequest) Validate() error {
	if r.Role != nil && !access.Role(*r.Role).Valid() {
		return fmt.Errorf("%w: role desconocido %q", domain.ErrValidation, *r.Role)
	}
	if r.Password != nil && *r.Password == "" {
		return fmt.Errorf("%w: password no puede estar vacío", domain.ErrValidation)
	}
	return nil
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	LocationIDs []string  `json:"location_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
