package usecase

import (
	"context"

	"github.com/jhoicas/mercado-admin-api/internal/application/dto"
)

// CatalogReportGenerator puerto para la generación del reporte PDF del
// catálogo (implementado en infrastructure/pdf).
type CatalogReportGenerator interface {
	GenerateCatalogPDF(ctx context.Context, products []dto.ProductResponse) ([]byte, error)
}
