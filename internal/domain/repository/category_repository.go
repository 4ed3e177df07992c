package repository

import (
	"context"

	"github.com/jhoicas/mercado-admin-api/internal/domain/entity"
)

// CategoryRepository define el puerto de lectura para Category (DIP).
// El core no crea ni edita categorías; solo las lista para el selector.
type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	GetByID(ctx context.Context, id string) (*entity.Category, error)
}
