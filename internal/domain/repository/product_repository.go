package repository

import (
	"context"

	"github.com/jhoicas/mercado-admin-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// List y GetByID devuelven el producto ya unido con el nombre de su
// categoría (CategoryName), en una sola consulta.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
