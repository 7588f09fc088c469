package entity

import "time"

// Address dirección postal de una Location.
type Address struct {
	HouseNumber string
	Street      string
	Town        string
	PostCode    string
	County      string
	Country     string
}

// Location representa una sede/sucursal de una Company. Los usuarios con rol
// User solo acceden a las locations de su conjunto asignado.
type Location struct {
	ID        string
	CompanyID string
	Name      string
	Phone     string
	Fax       string
	Email     string
	Address   Address
	CreatedAt time.Time
	UpdatedAt time.Time
}
