package repository

import "context"

// DashboardRepository consultas de solo lectura para los indicadores
// agregados del panel de administración.
type DashboardRepository interface {
	// CountProducts total de productos del catálogo.
	CountProducts(ctx context.Context) (int64, error)
	// CountLowStock productos cuya existencia está en o bajo su propio
	// umbral de reposición (comparación fila a fila).
	CountLowStock(ctx context.Context) (int64, error)
	// CountCategories total de categorías registradas.
	CountCategories(ctx context.Context) (int64, error)
}
