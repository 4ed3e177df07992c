package view

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mercado-admin-api/internal/application/dto"
	"github.com/jhoicas/mercado-admin-api/internal/domain"
	"github.com/jhoicas/mercado-admin-api/internal/domain/entity"
)

// Claves de campo del formulario, usadas para los errores por campo.
const (
	FieldName          = "name"
	FieldUnitPrice     = "unit_price"
	FieldStockQuantity = "stock_quantity"
	FieldReorderLevel  = "reorder_level"
)

// ProductForm borrador editable del formulario. Los campos numéricos se
// editan como texto y se parsean al enviar, igual que en un input.
type ProductForm struct {
	Name          string
	Barcode       string
	CategoryID    string
	Description   string
	UnitPrice     string
	StockQuantity string
	ReorderLevel  string
}

func defaultForm() ProductForm {
	return ProductForm{ReorderLevel: strconv.Itoa(entity.DefaultReorderLevel)}
}

// ProductEditor formulario modal de producto. Mantiene un único borrador
// privado, sembrado desde un producto existente (modo edición) o desde
// valores por defecto (modo creación). El borrador no toca el
// almacenamiento hasta un Submit válido y se descarta al cerrar.
type ProductEditor struct {
	svc CatalogService

	open       bool
	bound      *dto.ProductResponse
	form       ProductForm
	categories []dto.CategoryResponse
	fieldErrs  map[string]string

	// gen invalida la respuesta de un Submit que sigue en vuelo cuando el
	// editor ya se cerró o se reabrió.
	gen int
}

// NewProductEditor construye el editor cerrado.
func NewProductEditor(svc CatalogService) *ProductEditor {
	return &ProductEditor{svc: svc, form: defaultForm()}
}

// Open abre el editor. Con product nil siembra los valores por defecto
// (creación); con product siembra cada campo tal cual (edición). En cada
// apertura se vuelve a pedir la lista de categorías para no mostrar un
// selector desactualizado; si esa lectura falla el selector queda vacío
// y el editor sigue siendo usable.
func (e *ProductEditor) Open(ctx context.Context, product *dto.ProductResponse) {
	e.gen++
	e.open = true
	e.bound = product
	e.fieldErrs = nil

	if product == nil {
		e.form = defaultForm()
	} else {
		e.form = ProductForm{
			Name:          product.Name,
			UnitPrice:     product.UnitPrice.String(),
			StockQuantity: strconv.Itoa(product.StockQuantity),
			ReorderLevel:  strconv.Itoa(product.ReorderLevel),
		}
		if product.Barcode != nil {
			e.form.Barcode = *product.Barcode
		}
		if product.CategoryID != nil {
			e.form.CategoryID = *product.CategoryID
		}
		if product.Description != nil {
			e.form.Description = *product.Description
		}
	}

	cats, err := e.svc.ListCategories(ctx)
	if err != nil {
		cats = nil
	}
	e.categories = cats
}

// IsOpen indica si el editor está abierto.
func (e *ProductEditor) IsOpen() bool { return e.open }

// IsEdit indica si el borrador está atado a un producto existente.
func (e *ProductEditor) IsEdit() bool { return e.bound != nil }

// BoundID id del producto atado en modo edición ("" en creación).
func (e *ProductEditor) BoundID() string {
	if e.bound == nil {
		return ""
	}
	return e.bound.ID
}

// Form acceso al borrador para que el llamador edite los campos.
func (e *ProductEditor) Form() *ProductForm { return &e.form }

// Categories lista de categorías cargada en la última apertura.
func (e *ProductEditor) Categories() []dto.CategoryResponse { return e.categories }

// FieldError mensaje de validación del campo ("" si no hay error).
func (e *ProductEditor) FieldError(field string) string { return e.fieldErrs[field] }

// Submit valida y envía el borrador. Si la validación local falla no se
// emite ninguna petición, el editor permanece abierto y los errores
// quedan por campo. Si el almacenamiento falla, el formulario conserva
// todos sus valores para corrección. En éxito el editor se cierra y se
// devuelve done=true para que el llamador recargue la lista.
func (e *ProductEditor) Submit(ctx context.Context) (done bool, notice *Notice) {
	if !e.open {
		return false, nil
	}

	draft, errs := e.form.parse()
	if len(errs) > 0 {
		e.fieldErrs = errs
		return false, errorNotice("Validation error", "Please correct the highlighted fields.")
	}
	e.fieldErrs = nil

	token := e.gen
	wasEdit := e.bound != nil
	var err error
	if wasEdit {
		_, err = e.svc.Update(ctx, e.bound.ID, draft)
	} else {
		_, err = e.svc.Create(ctx, draft)
	}
	if token != e.gen || !e.open {
		// El editor se cerró mientras la petición estaba en vuelo.
		return false, nil
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, errorNotice("Error", "The product no longer exists.")
		}
		return false, errorNotice("Error", err.Error())
	}

	e.open = false
	e.bound = nil
	if wasEdit {
		return true, successNotice("Product updated", "The product has been updated successfully.")
	}
	return true, successNotice("Product created", "The product has been created successfully.")
}

// Close cierra el editor descartando el borrador sin efecto alguno sobre
// el almacenamiento.
func (e *ProductEditor) Close() {
	e.gen++
	e.open = false
	e.bound = nil
	e.form = defaultForm()
	e.fieldErrs = nil
}

// parse convierte el borrador textual en un ProductDraft validado.
// Devuelve los errores por campo encontrados; con errores no se arma el draft.
func (f *ProductForm) parse() (dto.ProductDraft, map[string]string) {
	errs := map[string]string{}
	draft := dto.ProductDraft{}

	name := strings.TrimSpace(f.Name)
	if name == "" {
		errs[FieldName] = "Name is required"
	}
	draft.Name = name

	price, err := decimal.NewFromString(strings.TrimSpace(f.UnitPrice))
	switch {
	case strings.TrimSpace(f.UnitPrice) == "":
		errs[FieldUnitPrice] = "Unit price is required"
	case err != nil:
		errs[FieldUnitPrice] = "Unit price must be a number"
	case price.LessThan(decimal.Zero):
		errs[FieldUnitPrice] = "Unit price cannot be negative"
	default:
		draft.UnitPrice = price
	}

	stock, err := parseNonNegativeInt(f.StockQuantity)
	if err != nil {
		errs[FieldStockQuantity] = "Stock quantity must be a non-negative integer"
	} else {
		draft.StockQuantity = stock
	}

	reorder, err := parseNonNegativeInt(f.ReorderLevel)
	if err != nil {
		errs[FieldReorderLevel] = "Reorder level must be a non-negative integer"
	} else {
		draft.ReorderLevel = &reorder
	}

	draft.Barcode = optionalField(f.Barcode)
	draft.CategoryID = optionalField(f.CategoryID)
	draft.Description = optionalField(f.Description)

	if len(errs) > 0 {
		return dto.ProductDraft{}, errs
	}
	return draft, nil
}

func parseNonNegativeInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}

func optionalField(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
