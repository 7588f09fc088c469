// Package pdf implementa la representación imprimible de un pedido de compra
// para enviarlo al proveedor.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Sede + N° Pedido  │  Estado + Fecha                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROVEEDOR: Nombre / Tel / Email                            │
//	│  ENTREGA: Dirección de la sede                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DEL PEDIDO                                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ordena-api/internal/application/usecase"
	"github.com/jhoicas/ordena-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoOrderPDF implementa usecase.OrderPDFGenerator usando Maroto v2.
type MarotoOrderPDF struct{}

// NewMarotoOrderPDF construye el generador.
func NewMarotoOrderPDF() *MarotoOrderPDF { return &MarotoOrderPDF{} }

var _ usecase.OrderPDFGenerator = (*MarotoOrderPDF)(nil)

// GenerateOrderPDF genera el PDF del pedido y devuelve sus bytes.
func (g *MarotoOrderPDF) GenerateOrderPDF(_ context.Context, doc *usecase.OrderDocument) ([]byte, error) {
	if doc == nil || doc.Order == nil || doc.Location == nil || doc.Supplier == nil {
		return nil, fmt.Errorf("pdf: faltan order, location o supplier en el documento")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Pedido de compra", true).
		WithAuthor(doc.Location.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(supplierRow(doc.Supplier))
	m.AddRows(deliveryRow(doc.Location))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(doc) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(doc))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: sede + n° de pedido (izq) y estado + fecha (der).
func headerRow(doc *usecase.OrderDocument) core.Row {
	fecha := doc.Order.CreatedAt.Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(doc.Location.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Pedido: "+doc.Order.ID, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Estado: "+doc.Order.Status, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// supplierRow: datos de contacto del proveedor destinatario.
func supplierRow(s *entity.Supplier) core.Row {
	contacto := s.Phone
	if s.Email != "" {
		contacto += "  ·  " + s.Email
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("PROVEEDOR: "+s.Name, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
			text.New(contacto, props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

// deliveryRow: dirección de entrega (la de la sede que pide).
func deliveryRow(l *entity.Location) core.Row {
	a := l.Address
	dir := fmt.Sprintf("%s %s, %s, %s %s, %s",
		a.HouseNumber, a.Street, a.Town, a.County, a.PostCode, a.Country)
	return row.New(10).Add(
		col.New(12).Add(
			text.New("ENTREGA: "+dir, props.Text{Size: 8, Top: 1, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(label string, a align.Type) core.Component {
		return text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorWhite, Top: 1.5,
		})
	}
	return row.New(7).Add(
		col.New(2).Add(header("Cant", align.Center)),
		col.New(6).Add(header("Producto", align.Left)),
		col.New(2).Add(header("P.Unit", align.Right)),
		col.New(2).Add(header("Subtotal", align.Right)),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func tableItemRows(doc *usecase.OrderDocument) []core.Row {
	rows := make([]core.Row, 0, len(doc.Order.Items))
	for _, it := range doc.Order.Items {
		name := it.ProductID
		unit := "-"
		sub := "-"
		if pr, ok := doc.Products[it.ProductID]; ok {
			name = pr.Name
			unit = pr.Price.StringFixed(2)
			sub = pr.Price.Mul(decimalFromInt(it.Quantity)).StringFixed(2)
		}
		cell := func(v string, a align.Type) core.Component {
			return text.New(v, props.Text{Size: 8, Align: a, Top: 1})
		}
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(cell(strconv.Itoa(it.Quantity), align.Center)),
			col.New(6).Add(cell(name, align.Left)),
			col.New(2).Add(cell(unit, align.Right)),
			col.New(2).Add(cell(sub, align.Right)),
		))
	}
	return rows
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

func totalRow(doc *usecase.OrderDocument) core.Row {
	return row.New(10).Add(
		col.New(8),
		col.New(2).Add(
			text.New("TOTAL", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2}),
		),
		col.New(2).Add(
			text.New(doc.Total.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Color: colorPrimary,
			}),
		),
	)
}
