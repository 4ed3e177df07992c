package entity

import "time"

// Category representa una categoría del catálogo. Este módulo solo las lee
// para poblar el selector del editor; su administración vive fuera del core.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
