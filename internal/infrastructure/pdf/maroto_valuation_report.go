// Package pdf implementa la generación del reporte de valoración de inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: productos / unidades / valor / costo / ganancia    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Categoría | Productos | Unidades | Valor | Ganancia  │
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

	"github.com/tu-usuario/inventrack/internal/application/analytics"
	"github.com/tu-usuario/inventrack/internal/application/dto"
)

var _ analytics.ValuationPDFRenderer = (*MarotoValuationRenderer)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoValuationRenderer implementa analytics.ValuationPDFRenderer usando Maroto v2.
type MarotoValuationRenderer struct{}

// NewMarotoValuationRenderer construye el renderer.
func NewMarotoValuationRenderer() *MarotoValuationRenderer { return &MarotoValuationRenderer{} }

// RenderValuation genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoValuationRenderer) RenderValuation(v *dto.ValuationDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Valoración de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(v))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRow(v))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	for _, c := range v.ByCategory {
		m.AddRows(categoryRow(c))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha de generación (der).
func headerRow(v *dto.ValuationDTO) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("VALORACIÓN DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+v.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// totalsRow: resumen global del inventario.
func totalsRow(v *dto.ValuationDTO) core.Row {
	return row.New(16).Add(
		summaryCol("Productos", fmt.Sprintf("%d", v.TotalProducts)),
		summaryCol("Unidades", fmt.Sprintf("%d", v.TotalQuantity)),
		summaryCol("Valor Stock", "$"+v.TotalStockValue.StringFixed(2)),
		summaryCol("Costo", "$"+v.TotalCostValue.StringFixed(2)),
		summaryCol("Ganancia", "$"+v.TotalProfit.StringFixed(2)),
		summaryCol("Margen", v.ProfitMargin.StringFixed(2)+"%"),
	)
}

func summaryCol(label, value string) core.Col {
	return col.New(2).Add(
		text.New(label, props.Text{Size: 7, Color: colorGray, Top: 2}),
		text.New(value, props.Text{Style: fontstyle.Bold, Size: 9, Top: 8}),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2, Align: align.Right}
	return row.New(8).Add(
		col.New(4).Add(text.New("Categoría", header)),
		col.New(2).Add(text.New("Productos", headerRight)),
		col.New(2).Add(text.New("Unidades", headerRight)),
		col.New(2).Add(text.New("Valor", headerRight)),
		col.New(2).Add(text.New("Ganancia", headerRight)),
	)
}

func categoryRow(c dto.CategoryValuationDTO) core.Row {
	cell := props.Text{Size: 8, Top: 1}
	cellRight := props.Text{Size: 8, Top: 1, Align: align.Right}
	return row.New(6).Add(
		col.New(4).Add(text.New(c.Category, cell)),
		col.New(2).Add(text.New(fmt.Sprintf("%d", c.ProductCount), cellRight)),
		col.New(2).Add(text.New(fmt.Sprintf("%d", c.Quantity), cellRight)),
		col.New(2).Add(text.New("$"+c.StockValue.StringFixed(2), cellRight)),
		col.New(2).Add(text.New("$"+c.Profit.StringFixed(2), cellRight)),
	)
}
