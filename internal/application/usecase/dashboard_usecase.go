package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/mercado-admin-api/internal/application/dto"
	"github.com/jhoicas/mercado-admin-api/internal/domain/repository"
)

// DashboardUseCase construye los indicadores agregados del panel.
//
// Fuente de datos: DashboardRepository (consultas read-only).
// El conteo de stock bajo compara cada fila contra su propio umbral de
// reposición; el agregado nunca usa un umbral global.
type DashboardUseCase struct {
	stats repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(stats repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{stats: stats}
}

// GetStats devuelve los tres contadores del panel.
//
// Tres llamadas en paralelo:
//  1. CountProducts    → TotalProducts
//  2. CountLowStock    → LowStock
//  3. CountCategories  → TotalCategories
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	type countResult struct {
		n   int64
		err error
	}

	productsCh := make(chan countResult, 1)
	lowStockCh := make(chan countResult, 1)
	categoriesCh := make(chan countResult, 1)

	go func() {
		n, err := uc.stats.CountProducts(ctx)
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.stats.CountLowStock(ctx)
		lowStockCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.stats.CountCategories(ctx)
		categoriesCh <- countResult{n, err}
	}()

	products := <-productsCh
	lowStock := <-lowStockCh
	categories := <-categoriesCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: total de productos: %w", products.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", lowStock.err)
	}
	if categories.err != nil {
		return nil, fmt.Errorf("dashboard: total de categorías: %w", categories.err)
	}

	return &dto.DashboardStatsDTO{
		TotalProducts:   products.n,
		LowStock:        lowStock.n,
		TotalCategories: categories.n,
	}, nil
}
