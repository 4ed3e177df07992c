package dto

import "github.com/jhoicas/mercado-admin-api/internal/domain/entity"

// CategoryResponse salida de una categoría para el selector del editor.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ToCategoryResponse mapea la entidad a su DTO de salida.
func ToCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}
