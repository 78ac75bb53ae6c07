// Package pdf genera la hoja de alistamiento que se entrega al personal de bodega.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Bodega + dirección   │  N° Pedido + Fecha + QR      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: OK | SKU | Producto | Serie/Lote | Vence | Cant       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL UNIDADES + firmas alistó / revisó                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
)

var _ inventory.PickListPDFGenerator = (*PickListGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// PickListGenerator implementa inventory.PickListPDFGenerator usando Maroto v2.
type PickListGenerator struct{}

// NewPickListGenerator construye el generador.
func NewPickListGenerator() *PickListGenerator { return &PickListGenerator{} }

// GeneratePickListPDF genera el PDF y devuelve sus bytes.
func (g *PickListGenerator) GeneratePickListPDF(_ context.Context, sheet *inventory.PickListSheet) ([]byte, error) {
	warehouseName := "—"
	if sheet.Warehouse != nil {
		warehouseName = sheet.Warehouse.Name
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Lista de alistamiento "+sheet.PickListID, true).
		WithAuthor(warehouseName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sheet))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(sheet.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(sheet.Lines))
	m.AddRows(row.New(12))
	m.AddRows(signatureRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar lista de alistamiento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: bodega (izq), pedido y fecha (centro), QR con el id de la lista (der).
func headerRow(sheet *inventory.PickListSheet) core.Row {
	name, address := "—", ""
	if sheet.Warehouse != nil {
		name, address = sheet.Warehouse.Name, sheet.Warehouse.Address
	}
	order := nonEmpty(sheet.OrderReference, sheet.SalesOrderID)

	return row.New(28).Add(
		col.New(5).Add(
			text.New("LISTA DE ALISTAMIENTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 13, Top: 6}),
			text.New(nonEmpty(address, "—"), props.Text{Size: 8, Top: 14, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Pedido: "+order, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1}),
			text.New("Fecha: "+sheet.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Estado: "+sheet.Status, props.Text{Size: 8, Align: align.Right, Top: 14, Color: colorGray}),
		),
		col.New(3).Add(code.NewQr(sheet.PickListID, props.Rect{Percent: 90, Center: true})),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("OK", 1, align.Center),
		h("SKU", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Serie / Lote", 2, align.Left),
		h("Vence", 1, align.Center),
		h("Cant.", 2, align.Right),
	)
}

// tableRows: una fila por fila de stock comprometida.
func tableRows(lines []inventory.PickListSheetLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		tracking := l.SerialNumber
		if tracking == "" {
			tracking = l.BatchNumber
		}
		expiry := ""
		if l.ExpiryDate != nil {
			expiry = l.ExpiryDate.Format("02/01/2006")
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New("[ ]", props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(l.SKU, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(l.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(nonEmpty(tracking, "—"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(nonEmpty(expiry, "—"), props.Text{Size: 7, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(formatQty(l.Quantity, l.UnitMeasure), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

func totalRow(lines []inventory.PickListSheetLine) core.Row {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Quantity)
	}
	return row.New(8).Add(
		col.New(8),
		col.New(4).Add(text.New(fmt.Sprintf("TOTAL UNIDADES: %s", total.String()), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1, Right: 1,
		})),
	)
}

func signatureRow() core.Row {
	sign := func(label string) core.Col {
		return col.New(6).Add(
			line.New(props.Line{Color: colorGray, Thickness: 0.3, SizePercent: 80}),
			text.New(label, props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		)
	}
	return row.New(10).Add(sign("Alistó"), sign("Revisó"))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func formatQty(q decimal.Decimal, unit string) string {
	if unit == "" {
		return q.String()
	}
	return q.String() + " " + unit
}
