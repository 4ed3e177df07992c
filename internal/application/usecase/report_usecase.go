package usecase

import (
	"context"
	"fmt"
)

// ReportUseCase exporta el catálogo actual como reporte PDF para el
// back-office (misma tabla que ve el administrador: nombre, código de
// barras, categoría, precio, stock y estado).
type ReportUseCase struct {
	catalog   *CatalogUseCase
	generator CatalogReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(catalog *CatalogUseCase, generator CatalogReportGenerator) *ReportUseCase {
	return &ReportUseCase{catalog: catalog, generator: generator}
}

// GenerateCatalog lee el catálogo completo y devuelve los bytes del PDF.
func (uc *ReportUseCase) GenerateCatalog(ctx context.Context) ([]byte, error) {
	products, err := uc.catalog.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: listar productos: %w", err)
	}
	pdf, err := uc.generator.GenerateCatalogPDF(ctx, products)
	if err != nil {
		return nil, fmt.Errorf("reporte: generar PDF: %w", err)
	}
	return pdf, nil
}
