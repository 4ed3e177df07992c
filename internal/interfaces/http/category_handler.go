package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mercado-admin-api/internal/application/dto"
	"github.com/jhoicas/mercado-admin-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP para Category (solo lectura).
type CategoryHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CatalogUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List lista las categorías ordenadas por nombre, para el selector del editor.
// GET /api/categories
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
