package entity

import "time"

// Template define un pedido recurrente: para una Location y un Supplier, en
// los días indicados se pre-genera un Order. Guarda CompanyID explícito además
// de la Location (redundante pero parte del contrato de datos).
type Template struct {
	ID         string
	CompanyID  string
	LocationID string
	SupplierID string
	OrderDays  []time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
