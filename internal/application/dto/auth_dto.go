package dto

import (
	"fmt"

	"github.com/jhoicas/ordena-api/internal/domain"
)

// LoginRequest entrada para POST /auth.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate valida la forma del payload de login.
func (r LoginRequest) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("%w: email es requerido", domain.ErrValidation)
	}
	if r.Password == "" {
		return fmt.Errorf("%w: password es requerido", domain.ErrValidation)
	}
	return nil
}

// LoginResponse salida con el token firmado.
type LoginResponse struct {
	Token string `json:"token"`
}
