// Package pdf implementa el reporte PDF del catálogo para el back-office:
// la misma tabla que ve el administrador (nombre, código de barras,
// categoría, precio, stock y estado), lista para imprimir o archivar.
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/jhoicas/mercado-admin-api/internal/application/dto"
	"github.com/jhoicas/mercado-admin-api/internal/application/usecase"
	"github.com/jhoicas/mercado-admin-api/internal/domain/entity"
)

var _ usecase.CatalogReportGenerator = (*CatalogReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// CatalogReportGenerator genera el reporte del catálogo usando Maroto v2.
type CatalogReportGenerator struct{}

// NewCatalogReportGenerator construye el generador.
func NewCatalogReportGenerator() *CatalogReportGenerator { return &CatalogReportGenerator{} }

// GenerateCatalogPDF genera el PDF y devuelve sus bytes.
func (g *CatalogReportGenerator) GenerateCatalogPDF(_ context.Context, products []dto.ProductResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Catálogo de productos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(len(products), lowStockCount(products)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, p := range products {
		m.AddRows(productRow(p))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func lowStockCount(products []dto.ProductResponse) int {
	n := 0
	for _, p := range products {
		if p.Status == entity.StockStatusLow {
			n++
		}
	}
	return n
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte (izq) y totales (der).
func headerRow(total, lowStock int) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("Catálogo de productos", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("%d productos", total), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
			text.New(fmt.Sprintf("%d con stock bajo", lowStock), props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorAlert,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Right}
	return row.New(7).Add(
		col.New(4).Add(text.New("Nombre", header)),
		col.New(2).Add(text.New("Código", header)),
		col.New(2).Add(text.New("Categoría", header)),
		col.New(2).Add(text.New("Precio", headerRight)),
		col.New(1).Add(text.New("Stock", headerRight)),
		col.New(1).Add(text.New("Estado", headerRight)),
	)
}

func productRow(p dto.ProductResponse) core.Row {
	cell := props.Text{Size: 8, Top: 1}
	cellRight := props.Text{Size: 8, Top: 1, Align: align.Right}

	barcode := "—"
	if p.Barcode != nil {
		barcode = *p.Barcode
	}
	category := "Sin categoría"
	if p.CategoryName != nil {
		category = *p.CategoryName
	}
	status := text.New("OK", cellRight)
	if p.Status == entity.StockStatusLow {
		status = text.New("BAJO", props.Text{
			Size: 8, Top: 1, Align: align.Right, Style: fontstyle.Bold, Color: colorAlert,
		})
	}

	return row.New(6).Add(
		col.New(4).Add(text.New(p.Name, cell)),
		col.New(2).Add(text.New(barcode, cell)),
		col.New(2).Add(text.New(category, cell)),
		col.New(2).Add(text.New("$"+p.UnitPrice.StringFixed(2), cellRight)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", p.StockQuantity), cellRight)),
		col.New(1).Add(status),
	)
}

func footerRow() core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New("Stock bajo: existencia en o bajo el umbral de reposición del producto.", props.Text{
				Size: 7, Color: colorGray, Top: 2,
			}),
		),
	)
}
