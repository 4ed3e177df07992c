package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultReorderLevel umbral de reposición asignado a productos nuevos.
const DefaultReorderLevel = 10

// StockStatus estado derivado del inventario de un producto.
// Se calcula siempre en lectura, nunca se persiste.
type StockStatus string

const (
	StockStatusLow StockStatus = "low_stock"
	StockStatusIn  StockStatus = "in_stock"
)

// Product representa un producto del catálogo.
// Barcode, CategoryID y Description son opcionales (nil = sin valor).
// CategoryName viene del JOIN con categories en lectura; no se persiste aquí.
type Product struct {
	ID            string
	Name          string
	Barcode       *string
	CategoryID    *string
	Description   *string
	UnitPrice     decimal.Decimal
	StockQuantity int
	ReorderLevel  int
	CategoryName  *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// StockStatus deriva el estado de inventario: LowStock si la existencia
// actual es menor o igual al umbral de reposición del propio producto.
func (p *Product) StockStatus() StockStatus {
	if p.StockQuantity <= p.ReorderLevel {
		return StockStatusLow
	}
	return StockStatusIn
}
