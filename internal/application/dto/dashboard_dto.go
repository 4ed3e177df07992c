package dto

// DashboardStatsDTO indicadores agregados del panel de administración.
// LowStock usa la comparación fila a fila stock_quantity <= reorder_level.
type DashboardStatsDTO struct {
	TotalProducts   int64 `json:"total_products"`
	LowStock        int64 `json:"low_stock"`
	TotalCategories int64 `json:"total_categories"`
}
