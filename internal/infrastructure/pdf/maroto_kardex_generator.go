// Package pdf implementa la generación del reporte de kardex de un lote.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Código de lote  │  Producto + Bodega               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FICHA: ingreso / vencimiento / unidad / saldo actual        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Código | Clase | Antes | Cant. | Después | Glosa │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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

	"github.com/jcastro/kardex-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoKardexGenerator genera el reporte de kardex de un lote usando Maroto v2.
type MarotoKardexGenerator struct{}

// NewMarotoKardexGenerator construye el generador.
func NewMarotoKardexGenerator() *MarotoKardexGenerator { return &MarotoKardexGenerator{} }

// GenerateKardexPDF genera el PDF del kardex del lote y devuelve sus bytes.
func (g *MarotoKardexGenerator) GenerateKardexPDF(
	_ context.Context,
	lot *entity.Lot,
	product *entity.Product,
	unit *entity.UnitOfMeasure,
	warehouse *entity.Warehouse,
	movements []*entity.Movement,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Kardex de lote "+lot.Code, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(lot, product, warehouse))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(lot, unit))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, mov := range movements {
		m.AddRows(movementRow(mov, unit))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: código de lote (izq), producto y bodega (der).
func headerRow(lot *entity.Lot, product *entity.Product, warehouse *entity.Warehouse) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("KARDEX DE LOTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(lot.Code, props.Text{
				Style: fontstyle.Bold, Size: 13, Top: 6,
			}),
		),
		col.New(5).Add(
			text.New(product.Name, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New("Bodega: "+warehouse.Name, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// summaryRow: ficha del lote con fechas, unidad y saldo actual.
func summaryRow(lot *entity.Lot, unit *entity.UnitOfMeasure) core.Row {
	venc := "—"
	if lot.ExpirationDate != nil {
		venc = lot.ExpirationDate.Format("02/01/2006")
	}
	ficha := fmt.Sprintf("Ingreso: %s   |   Vencimiento: %s   |   Unidad: %s",
		lot.IngressDate.Format("02/01/2006"), venc, unit.Abbreviation)

	return row.New(12).Add(
		col.New(8).Add(
			text.New(ficha, props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("SALDO ACTUAL: "+lot.CurrentBalance.String()+" "+unit.Abbreviation, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Color: colorPrimary,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(
		header(2, "Fecha"),
		header(2, "Código"),
		header(1, "Clase"),
		header(1, "Antes"),
		header(1, "Cant."),
		header(1, "Después"),
		header(4, "Glosa"),
	)
}

func movementRow(mov *entity.Movement, unit *entity.UnitOfMeasure) core.Row {
	clase := "entrada"
	if mov.Kind == entity.MovementKindOutflow {
		clase = "salida"
	}
	cell := func(size int, value string) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Top: 1}))
	}
	return row.New(6).Add(
		cell(2, mov.CreatedAt.Format("02/01/2006 15:04")),
		cell(2, mov.Code),
		cell(1, clase),
		cell(1, mov.QuantityBefore.String()),
		cell(1, mov.SignedDelta().String()),
		cell(1, mov.QuantityAfter.String()),
		cell(4, mov.Gloss),
	)
}
