// Package edi genera el documento XML de intercambio de un pedido de compra,
// el formato que consumen los portales de los proveedores.
package edi

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/jhoicas/ordena-api/internal/application/usecase"
)

// Versión del esquema del documento PurchaseOrder.
const schemaVersion = "1.0"

// OrderXMLBuilder implementa usecase.OrderXMLBuilder usando etree.
type OrderXMLBuilder struct{}

// NewOrderXMLBuilder construye el generador.
func NewOrderXMLBuilder() *OrderXMLBuilder { return &OrderXMLBuilder{} }

var _ usecase.OrderXMLBuilder = (*OrderXMLBuilder)(nil)

// BuildOrderXML genera el []byte del documento PurchaseOrder.
func (b *OrderXMLBuilder) BuildOrderXML(doc *usecase.OrderDocument) ([]byte, error) {
	if doc == nil || doc.Order == nil || doc.Location == nil || doc.Supplier == nil {
		return nil, fmt.Errorf("edi: faltan order, location o supplier en el documento")
	}

	x := etree.NewDocument()
	x.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := x.CreateElement("PurchaseOrder")
	root.CreateAttr("version", schemaVersion)
	root.CreateAttr("id", doc.Order.ID)

	root.CreateElement("Status").SetText(doc.Order.Status)
	root.CreateElement("IssueDate").SetText(doc.Order.CreatedAt.Format("2006-01-02"))

	sup := root.CreateElement("Supplier")
	sup.CreateAttr("id", doc.Supplier.ID)
	sup.CreateElement("Name").SetText(doc.Supplier.Name)
	if doc.Supplier.Email != "" {
		sup.CreateElement("Email").SetText(doc.Supplier.Email)
	}
	if doc.Supplier.Phone != "" {
		sup.CreateElement("Phone").SetText(doc.Supplier.Phone)
	}

	del := root.CreateElement("DeliverTo")
	del.CreateAttr("id", doc.Location.ID)
	del.CreateElement("Name").SetText(doc.Location.Name)
	addr := del.CreateElement("Address")
	a := doc.Location.Address
	addr.CreateElement("HouseNumber").SetText(a.HouseNumber)
	addr.CreateElement("Street").SetText(a.Street)
	addr.CreateElement("Town").SetText(a.Town)
	addr.CreateElement("PostCode").SetText(a.PostCode)
	addr.CreateElement("County").SetText(a.County)
	addr.CreateElement("Country").SetText(a.Country)

	lines := root.CreateElement("Lines")
	for i, it := range doc.Order.Items {
		line := lines.CreateElement("Line")
		line.CreateAttr("number", fmt.Sprintf("%d", i+1))
		line.CreateElement("ProductID").SetText(it.ProductID)
		if pr, ok := doc.Products[it.ProductID]; ok {
			line.CreateElement("Description").SetText(pr.Name)
			line.CreateElement("UnitPrice").SetText(pr.Price.StringFixed(2))
		}
		line.CreateElement("Quantity").SetText(fmt.Sprintf("%d", it.Quantity))
	}

	root.CreateElement("Total").SetText(doc.Total.StringFixed(2))

	x.Indent(2)
	out, err := x.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("edi: serializar documento: %w", err)
	}
	return out, nil
}
