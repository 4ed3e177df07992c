package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mercado-admin-api/internal/domain/entity"
)

// ProductDraft entrada para crear o actualizar un producto. El editor envía
// siempre el formulario completo, por eso create y update comparten el DTO.
// Barcode, CategoryID y Description en nil significan "sin valor".
// ReorderLevel en nil aplica el umbral por defecto en la creación.
type ProductDraft struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Barcode       *string         `json:"barcode"`
	CategoryID    *string         `json:"category_id"`
	Description   *string         `json:"description"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	StockQuantity int             `json:"stock_quantity" validate:"min=0"`
	ReorderLevel  *int            `json:"reorder_level" validate:"omitempty,min=0"`
}

// ProductResponse salida de un producto con su categoría unida y el estado
// de inventario derivado al momento de la lectura.
type ProductResponse struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Barcode       *string            `json:"barcode"`
	CategoryID    *string            `json:"category_id"`
	CategoryName  *string            `json:"category_name"`
	Description   *string            `json:"description"`
	UnitPrice     decimal.Decimal    `json:"unit_price"`
	StockQuantity int                `json:"stock_quantity"`
	ReorderLevel  int                `json:"reorder_level"`
	Status        entity.StockStatus `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// ToProductResponse mapea la entidad a su DTO de salida, derivando Status.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Barcode:       p.Barcode,
		CategoryID:    p.CategoryID,
		CategoryName:  p.CategoryName,
		Description:   p.Description,
		UnitPrice:     p.UnitPrice,
		StockQuantity: p.StockQuantity,
		ReorderLevel:  p.ReorderLevel,
		Status:        p.StockStatus(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
