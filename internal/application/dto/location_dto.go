package dto

import (
	"fmt"
	"time"

	"github.com/jhoicas/ordena-api/internal/domain"
)

// AddressPayload dirección postal de una sede.
type AddressPayload struct {
	HouseNumber string `json:"house_number"`
	Street      string `json:"street"`
	Town        string `json:"town"`
	PostCode    string `json:"post_code"`
	County      string `json:"county"`
	Country     string `json:"country"`
}

// CreateLocationRequest entrada para crear una sede. CompanyID es opcional:
// si viene, debe coincidir con la empresa del principal; siempre se fuerza
// desde el token, nunca se confía en el valor del cliente.
type CreateLocationRequest struct {
	CompanyID string         `json:"company_id"`
	Name      string         `json:"name"`
	Phone     string         `json:"phone"`
	Fax       string         `json:"fax"`
	Email     string         `json:"email"`
	Address   AddressPayload `json:"address"`
}

// Validate valida la forma del payload.
func (r CreateLocationRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name es requerido", domain.ErrValidation)
	}
	return nil
}

// UpdateLocationRequest entrada para actualizar una sede (campos opcionales).
type UpdateLocationRequest struct {
	Name    *string         `json:"name"`
	Phone   *string         `json:"phone"`
	Fax     *string         `json:"fax"`
	Email   *string         `json:"email"`
	Address *AddressPayload `json:"address"`
}

// LocationResponse salida de una sede.
type LocationResponse struct {
	ID        string         `json:"id"`
	CompanyID string         `json:"company_id"`
	Name      string         `json:"name"`
	Phone     string         `json:"phone"`
	Fax       string         `json:"fax"`
	Email     string         `json:"email"`
	Address   AddressPayload `json:"address"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
