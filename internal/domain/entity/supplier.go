package entity

import "time"

// Supplier representa un proveedor externo. No tiene company: es visible para
// cualquier usuario autenticado (decisión registrada en DESIGN.md).
type Supplier struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
