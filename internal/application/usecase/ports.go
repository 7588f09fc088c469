package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ordena-api/internal/domain"
	"github.com/jhoicas/ordena-api/internal/domain/entity"
	"github.com/jhoicas/ordena-api/internal/domain/repository"
)

// TemplateTxRunner ejecuta el lote de plantillas dentro de una transacción:
// o se crean todas o ninguna.
type TemplateTxRunner interface {
	RunTemplates(ctx context.Context, fn func(templates repository.TemplateRepository) error) error
}

// OrderTxRunner ejecuta escrituras de pedidos (cabecera + líneas) dentro de
// una transacción.
type OrderTxRunner interface {
	RunOrders(ctx context.Context, fn func(orders repository.OrderRepository) error) error
}

// OrderDocument reúne un pedido con sus referencias resueltas para generar
// documentos (PDF, XML) hacia el proveedor.
type OrderDocument struct {
	Order    *entity.Order
	Location *entity.Location
	Supplier *entity.Supplier
	Products map[string]*entity.Product
	Total    decimal.Decimal
}

// OrderPDFGenerator puerto de generación del PDF del pedido.
type OrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, doc *OrderDocument) ([]byte, error)
}

// OrderXMLBuilder puerto de generación del documento XML del pedido.
type OrderXMLBuilder interface {
	BuildOrderXML(doc *OrderDocument) ([]byte, error)
}

// validateID rechaza identificadores que no son UUID antes de tocar la DB.
// El formato inválido tiene su propio error de dominio (y su propio status).
func validateID(id string) error {
	if uuid.Validate(id) != nil {
		return domain.ErrMalformedID
	}
	return nil
}
