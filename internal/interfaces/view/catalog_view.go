package view

import (
	"context"
	"errors"

	"github.com/jhoicas/mercado-admin-api/internal/application/dto"
	"github.com/jhoicas/mercado-admin-api/internal/domain"
	"github.com/jhoicas/mercado-admin-api/internal/domain/entity"
)

// State estado de la tabla de productos.
type State string

const (
	StateLoading   State = "loading"
	StateReady     State = "ready"
	StateLoadError State = "load_error"
)

// Row fila ya proyectada para presentación: precio formateado y
// sustitutos para campos ausentes. Paso de render puro sobre el snapshot.
type Row struct {
	ID          string
	Name        string
	Barcode     string
	Category    string
	Price       string
	Stock       int
	Status      entity.StockStatus
	StatusLabel string
}

// CatalogView máquina de estados de la tabla de productos.
//
// Ciclo de vida: Loading → Ready | LoadError. Tras cada mutación exitosa
// (crear, actualizar, borrar) o cierre del editor se recarga la lista
// completa; el snapshot se reemplaza entero, nunca se muta en sitio.
// El filtro es una proyección de solo lectura sobre el snapshot.
type CatalogView struct {
	svc    CatalogService
	editor *ProductEditor

	state         State
	snapshot      []dto.ProductResponse
	query         string
	loadErrMsg    string
	pendingDelete string

	// gen invalida respuestas tardías: cada recarga o cierre lo avanza y
	// una respuesta con token viejo se descarta sin tocar el estado visible.
	gen    int
	closed bool
}

// NewCatalogView construye la vista en estado Loading, con su editor.
func NewCatalogView(svc CatalogService) *CatalogView {
	return &CatalogView{
		svc:    svc,
		editor: NewProductEditor(svc),
		state:  StateLoading,
	}
}

// State devuelve el estado actual de la vista.
func (v *CatalogView) State() State { return v.state }

// LoadError mensaje de la última falla de carga (vacío en Ready/Loading).
func (v *CatalogView) LoadError() string { return v.loadErrMsg }

// Editor acceso al editor de producto de esta vista.
func (v *CatalogView) Editor() *ProductEditor { return v.editor }

// Load carga (o recarga) la lista de productos desde el servicio.
// En éxito reemplaza el snapshot completo y pasa a Ready; en falla pasa a
// LoadError con la lista vacía.
func (v *CatalogView) Load(ctx context.Context) {
	token := v.beginLoad()
	list, err := v.svc.ListProducts(ctx)
	v.finishLoad(token, list, err)
}

func (v *CatalogView) beginLoad() int {
	v.gen++
	v.state = StateLoading
	return v.gen
}

func (v *CatalogView) finishLoad(token int, list []dto.ProductResponse, err error) {
	if v.closed || token != v.gen {
		// Respuesta tardía: ya no hay instancia que la reciba.
		return
	}
	if err != nil {
		v.state = StateLoadError
		v.loadErrMsg = err.Error()
		v.snapshot = nil
		return
	}
	v.snapshot = list
	v.state = StateReady
	v.loadErrMsg = ""
}

// SetQuery fija la consulta de búsqueda. Solo afecta la proyección de
// Rows; el snapshot subyacente no cambia.
func (v *CatalogView) SetQuery(q string) { v.query = q }

// Query consulta de búsqueda vigente.
func (v *CatalogView) Query() string { return v.query }

// Products snapshot sin filtrar, en el orden name-ascendente del servicio.
func (v *CatalogView) Products() []dto.ProductResponse { return v.snapshot }

// Rows proyección filtrada y formateada de la tabla. Estable sobre el
// orden original del snapshot e idempotente para una misma consulta.
func (v *CatalogView) Rows() []Row {
	rows := make([]Row, 0, len(v.snapshot))
	for _, p := range v.snapshot {
		if !matchesQuery(p, v.query) {
			continue
		}
		rows = append(rows, renderRow(p))
	}
	return rows
}

// renderRow serializa un producto a su fila de presentación.
func renderRow(p dto.ProductResponse) Row {
	row := Row{
		ID:          p.ID,
		Name:        p.Name,
		Barcode:     "—",
		Category:    "Uncategorized",
		Price:       "$" + p.UnitPrice.StringFixed(2),
		Stock:       p.StockQuantity,
		Status:      p.Status,
		StatusLabel: "In Stock",
	}
	if p.Barcode != nil {
		row.Barcode = *p.Barcode
	}
	if p.CategoryName != nil {
		row.Category = *p.CategoryName
	}
	if p.Status == entity.StockStatusLow {
		row.StatusLabel = "Low Stock"
	}
	return row
}

// RequestDelete abre la compuerta de confirmación para borrar un producto.
// No toca el almacenamiento hasta ConfirmDelete.
func (v *CatalogView) RequestDelete(id string) { v.pendingDelete = id }

// PendingDelete id pendiente de confirmación de borrado ("" si ninguno).
func (v *CatalogView) PendingDelete() string { return v.pendingDelete }

// CancelDelete descarta la confirmación pendiente sin efectos.
func (v *CatalogView) CancelDelete() { v.pendingDelete = "" }

// ConfirmDelete ejecuta el borrado confirmado. En éxito recarga la lista;
// en falla la lista queda intacta (sin remoción optimista). Borrar un id
// que ya no existe es una falla no fatal: se avisa y una recarga
// posterior reflejará el estado real.
func (v *CatalogView) ConfirmDelete(ctx context.Context) *Notice {
	id := v.pendingDelete
	if id == "" {
		return nil
	}
	v.pendingDelete = ""
	if err := v.svc.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errorNotice("Error deleting product", "The product no longer exists.")
		}
		return errorNotice("Error deleting product", err.Error())
	}
	v.Load(ctx)
	return successNotice("Product deleted", "The product has been removed successfully.")
}

// OpenCreate abre el editor con un borrador por defecto.
func (v *CatalogView) OpenCreate(ctx context.Context) *ProductEditor {
	v.editor.Open(ctx, nil)
	return v.editor
}

// OpenEdit abre el editor sembrado con el producto indicado del snapshot.
func (v *CatalogView) OpenEdit(ctx context.Context, id string) (*ProductEditor, *Notice) {
	for i := range v.snapshot {
		if v.snapshot[i].ID == id {
			p := v.snapshot[i]
			v.editor.Open(ctx, &p)
			return v.editor, nil
		}
	}
	return nil, errorNotice("Error editing product", "The product is no longer in the list.")
}

// SubmitEditor envía el formulario del editor. Si el envío completó
// (creación o actualización exitosa) la lista se recarga.
func (v *CatalogView) SubmitEditor(ctx context.Context) *Notice {
	done, notice := v.editor.Submit(ctx)
	if done {
		v.Load(ctx)
	}
	return notice
}

// CloseEditor cancela el editor descartando el borrador y recarga la
// lista, igual que al completar un envío.
func (v *CatalogView) CloseEditor(ctx context.Context) {
	if !v.editor.IsOpen() {
		return
	}
	v.editor.Close()
	v.Load(ctx)
}

// Close marca la vista como desmontada: toda respuesta en vuelo que
// llegue después se descarta en silencio.
func (v *CatalogView) Close() {
	v.closed = true
	v.gen++
	v.editor.Close()
}
