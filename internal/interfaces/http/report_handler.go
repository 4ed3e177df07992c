package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mercado-admin-api/internal/application/dto"
	"github.com/jhoicas/mercado-admin-api/internal/application/usecase"
)

// ReportHandler expone el reporte PDF del catálogo.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// CatalogPDF genera y descarga el reporte PDF del catálogo actual.
// GET /api/products/report
func (h *ReportHandler) CatalogPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.GenerateCatalog(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="catalogo.pdf"`)
	return c.Send(pdf)
}
