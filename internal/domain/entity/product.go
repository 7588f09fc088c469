package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo pedible a un Supplier. Category y Subcategory
// son opcionales. Como Supplier, no está ligado a una Company.
type Product struct {
	ID            string
	Name          string
	SupplierID    string
	CategoryID    *string
	SubcategoryID *string
	Price         decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
