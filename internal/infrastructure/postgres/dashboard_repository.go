package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/mercado-admin-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para los contadores del panel.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador de indicadores.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// CountProducts total de productos del catálogo.
func (r *DashboardRepo) CountProducts(ctx context.Context) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("dashboard.CountProducts: %w", err)
	}
	return n, nil
}

// CountLowStock productos con existencia en o bajo su propio umbral.
// La comparación es fila a fila: cada producto contra su reorder_level,
// nunca contra un umbral tomado de otras filas.
func (r *DashboardRepo) CountLowStock(ctx context.Context) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE stock_quantity <= reorder_level`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("dashboard.CountLowStock: %w", err)
	}
	return n, nil
}

// CountCategories total de categorías registradas.
func (r *DashboardRepo) CountCategories(ctx context.Context) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("dashboard.CountCategories: %w", err)
	}
	return n, nil
}
