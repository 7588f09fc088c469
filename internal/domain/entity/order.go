package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de un Order.
const (
	OrderStatusPending  = "pending"
	OrderStatusPlaced   = "placed"
	OrderStatusReceived = "received"
)

// Límites de cantidad por línea de pedido.
const (
	OrderItemQtyMin = 0
	OrderItemQtyMax = 255
)

// OrderItem línea de pedido: producto + cantidad [0, 255].
type OrderItem struct {
	ProductID string
	Quantity  int
}

// Order representa un pedido de compra a un Supplier desde una Location.
// La Location es quien ancla el pedido al tenant: el pedido no guarda company
// propia, hereda la de su Location.
type Order struct {
	ID         string
	LocationID string
	SupplierID string
	Status     string // ver constantes OrderStatus*
	Items      []OrderItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Total suma quantity × price por línea usando los precios dados (por ProductID).
// Productos sin precio conocido suman cero.
func (o *Order) Total(prices map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		if p, ok := prices[it.ProductID]; ok {
			total = total.Add(p.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
	}
	return total
}
