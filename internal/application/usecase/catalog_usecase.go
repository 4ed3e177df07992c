package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mercado-admin-api/internal/application/dto"
	"github.com/jhoicas/mercado-admin-api/internal/domain"
	"github.com/jhoicas/mercado-admin-api/internal/domain/entity"
	"github.com/jhoicas/mercado-admin-api/internal/domain/repository"
)

// CatalogUseCase casos de uso del catálogo: lecturas y escrituras de
// productos y categorías contra el almacenamiento durable. Es la única
// frontera por la que el resto del sistema toca la base de datos.
//
// Contratos de error:
//   - domain.ErrInvalidInput: el borrador no pasó la validación local
//     (nunca llega al almacenamiento).
//   - domain.ErrNotFound: la operación apunta a un id que ya no existe.
//   - cualquier otro error es una falla reportada por el almacenamiento.
type CatalogUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, categories: categories}
}

// ListCategories lista las categorías ordenadas por nombre ascendente.
// Una lista vacía no es un error.
func (uc *CatalogUseCase) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.ToCategoryResponse(c))
	}
	return items, nil
}

// ListProducts lista el catálogo completo unido con el nombre de su
// categoría, ordenado por nombre de producto ascendente. El JOIN lo hace
// el almacenamiento en una sola consulta; aquí solo se deriva Status.
func (uc *CatalogUseCase) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *dto.ToProductResponse(p))
	}
	return items, nil
}

// GetProduct obtiene un producto por id. Devuelve domain.ErrNotFound si no existe.
func (uc *CatalogUseCase) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToProductResponse(p), nil
}

// Create crea un producto nuevo. Valida el borrador antes de tocar el
// almacenamiento; ReorderLevel ausente aplica el umbral por defecto.
func (uc *CatalogUseCase) Create(ctx context.Context, in dto.ProductDraft) (*dto.ProductResponse, error) {
	if err := validateDraft(in); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          strings.TrimSpace(in.Name),
		Barcode:       normalizeOptional(in.Barcode),
		CategoryID:    normalizeOptional(in.CategoryID),
		Description:   normalizeOptional(in.Description),
		UnitPrice:     in.UnitPrice,
		StockQuantity: in.StockQuantity,
		ReorderLevel:  entity.DefaultReorderLevel,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if in.ReorderLevel != nil {
		product.ReorderLevel = *in.ReorderLevel
	}
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}
	// Releer para devolver la fila con el nombre de categoría unido.
	created, err := uc.products.GetByID(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("releer producto creado: %w", err)
	}
	return dto.ToProductResponse(created), nil
}

// Update reemplaza los campos de un producto existente con el borrador
// completo. Misma validación que Create; domain.ErrNotFound si el id ya no existe.
func (uc *CatalogUseCase) Update(ctx context.Context, id string, in dto.ProductDraft) (*dto.ProductResponse, error) {
	if err := validateDraft(in); err != nil {
		return nil, err
	}
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = strings.TrimSpace(in.Name)
	product.Barcode = normalizeOptional(in.Barcode)
	product.CategoryID = normalizeOptional(in.CategoryID)
	product.Description = normalizeOptional(in.Description)
	product.UnitPrice = in.UnitPrice
	product.StockQuantity = in.StockQuantity
	if in.ReorderLevel != nil {
		product.ReorderLevel = *in.ReorderLevel
	}
	product.UpdatedAt = time.Now()
	if err := uc.products.Update(ctx, product); err != nil {
		return nil, err
	}
	updated, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("releer producto actualizado: %w", err)
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToProductResponse(updated), nil
}

// Delete elimina un producto por id. Devuelve domain.ErrNotFound si ya no
// existe; el llamador lo trata como falla no fatal.
func (uc *CatalogUseCase) Delete(ctx context.Context, id string) error {
	return uc.products.Delete(ctx, id)
}

// validateDraft validación local del borrador: nombre requerido y montos
// no negativos. Un borrador inválido nunca genera una petición al
// almacenamiento.
func validateDraft(in dto.ProductDraft) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if in.UnitPrice.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: unit_price no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.StockQuantity < 0 {
		return fmt.Errorf("%w: stock_quantity no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.ReorderLevel != nil && *in.ReorderLevel < 0 {
		return fmt.Errorf("%w: reorder_level no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

// normalizeOptional convierte cadenas vacías en nil para los campos opcionales.
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
