package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mercado-admin-api/internal/application/usecase"
	"github.com/jhoicas/mercado-admin-api/internal/domain/entity"
)

// memDashboardRepo deriva los contadores de un catálogo fijo, con la misma
// semántica fila a fila que la consulta SQL real.
type memDashboardRepo struct {
	products   []entity.Product
	categories int
	err        error
}

func (r *memDashboardRepo) CountProducts(_ context.Context) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.products)), nil
}

func (r *memDashboardRepo) CountLowStock(_ context.Context) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	var n int64
	for i := range r.products {
		if r.products[i].StockStatus() == entity.StockStatusLow {
			n++
		}
	}
	return n, nil
}

func (r *memDashboardRepo) CountCategories(_ context.Context) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return int64(r.categories), nil
}

func TestDashboard_ContadoresConUmbralPorFila(t *testing.T) {
	// Cada producto se compara contra su propio umbral, no contra un
	// umbral global: 12 unidades son stock bajo con umbral 15 y stock
	// sano con umbral 10.
	repo := &memDashboardRepo{
		products: []entity.Product{
			{StockQuantity: 40, ReorderLevel: 10},
			{StockQuantity: 12, ReorderLevel: 15},
			{StockQuantity: 12, ReorderLevel: 10},
			{StockQuantity: 10, ReorderLevel: 10},
		},
		categories: 3,
	}
	uc := usecase.NewDashboardUseCase(repo)

	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalProducts)
	assert.Equal(t, int64(2), stats.LowStock)
	assert.Equal(t, int64(3), stats.TotalCategories)
}

func TestDashboard_CatalogoVacio(t *testing.T) {
	uc := usecase.NewDashboardUseCase(&memDashboardRepo{})

	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalProducts)
	assert.Zero(t, stats.LowStock)
	assert.Zero(t, stats.TotalCategories)
}

func TestDashboard_PropagaFallaDelRepositorio(t *testing.T) {
	uc := usecase.NewDashboardUseCase(&memDashboardRepo{err: errors.New("connection refused")})

	_, err := uc.GetStats(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
