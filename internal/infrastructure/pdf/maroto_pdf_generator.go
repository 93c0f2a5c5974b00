// Package pdf genera la representación gráfica de una factura del panel.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Arstock + local  │  N° Factura + Fecha             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE                                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MONTO + ESTADO                                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

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
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/arstock/arstock-api/internal/domain/entity"
	"github.com/arstock/arstock-api/internal/domain/schema"
)

var (
	colorPrimary = &props.Color{Red: 24, Green: 144, Blue: 255}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var printer = message.NewPrinter(language.MustParse("es-AR"))

// MarotoPDFGenerator implementa report.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(inv entity.Invoice, local entity.Location) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+inv.Numero, true).
		WithAuthor("Arstock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(inv, local))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(montoRow(inv))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: marca + local (izq) y N° de factura + fecha (der).
func headerRow(inv entity.Invoice, local entity.Location) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("Arstock", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(local.Nombre, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(inv.Numero, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+inv.Fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clienteRow: datos del cliente facturado.
func clienteRow(inv entity.Invoice) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(inv.Cliente, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 7,
			}),
		),
	)
}

// montoRow: monto total y estado de pago con su color de presentación.
func montoRow(inv entity.Invoice) core.Row {
	estadoColor := colorGray
	switch schema.Billing.StatusColor(inv.Estado) {
	case "green":
		estadoColor = &props.Color{Red: 63, Green: 134, Blue: 0}
	case "orange":
		estadoColor = &props.Color{Red: 250, Green: 140, Blue: 22}
	case "red":
		estadoColor = &props.Color{Red: 245, Green: 34, Blue: 45}
	}
	return row.New(16).Add(
		col.New(7).Add(
			text.New("TOTAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(formatMonto(inv.Monto), props.Text{
				Style: fontstyle.Bold, Size: 14, Top: 7,
			}),
		),
		col.New(5).Add(
			text.New("Estado", props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 1,
			}),
			text.New(inv.Estado, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: estadoColor, Top: 7,
			}),
		),
	)
}

// formatMonto formatea un monto en pesos con separadores es-AR.
func formatMonto(m decimal.Decimal) string {
	return printer.Sprintf("$ %v ARS", number.Decimal(m.InexactFloat64(), number.MaxFractionDigits(2)))
}
