package view_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mercado-admin-api/internal/application/dto"
	"github.com/jhoicas/mercado-admin-api/internal/domain"
	"github.com/jhoicas/mercado-admin-api/internal/interfaces/view"
)

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

func categorias() []dto.CategoryResponse {
	return []dto.CategoryResponse{
		{ID: "c1", Name: "Bebidas"},
		{ID: "c2", Name: "Lácteos"},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Apertura y siembra del borrador
// ──────────────────────────────────────────────────────────────────────────────

func TestEditor_AbrirParaCrear_SiembraValoresPorDefecto(t *testing.T) {
	svc := &fakeCatalog{categories: categorias()}
	ed := view.NewProductEditor(svc)

	ed.Open(context.Background(), nil)

	require.True(t, ed.IsOpen())
	assert.False(t, ed.IsEdit())
	assert.Empty(t, ed.Form().Name)
	assert.Empty(t, ed.Form().Barcode)
	assert.Empty(t, ed.Form().CategoryID)
	assert.Empty(t, ed.Form().UnitPrice)
	assert.Empty(t, ed.Form().StockQuantity)
	assert.Equal(t, "10", ed.Form().ReorderLevel, "el umbral de reposición inicia en 10")
}

func TestEditor_DosAperturasDeCreacion_SinFugaDelBorradorAnterior(t *testing.T) {
	svc := &fakeCatalog{categories: categorias()}
	ed := view.NewProductEditor(svc)

	ed.Open(context.Background(), nil)
	ed.Form().Name = "Queso fresco"
	ed.Form().UnitPrice = "5.90"
	ed.Form().ReorderLevel = "3"
	ed.Close()

	ed.Open(context.Background(), nil)
	assert.Empty(t, ed.Form().Name, "la segunda apertura no hereda el borrador anterior")
	assert.Empty(t, ed.Form().UnitPrice)
	assert.Equal(t, "10", ed.Form().ReorderLevel)
}

func TestEditor_AbrirParaEditar_SiembraCadaCampoTalCual(t *testing.T) {
	svc := &fakeCatalog{categories: categorias()}
	ed := view.NewProductEditor(svc)
	p := testProduct("p1", "Leche 1L", strPtr("111"), nil, "2.50", 40, 10)
	p.CategoryID = strPtr("c2")
	p.Description = strPtr("Entera, pasteurizada")

	ed.Open(context.Background(), &p)

	assert.True(t, ed.IsEdit())
	assert.Equal(t, "p1", ed.BoundID())
	assert.Equal(t, "Leche 1L", ed.Form().Name)
	assert.Equal(t, "111", ed.Form().Barcode)
	assert.Equal(t, "c2", ed.Form().CategoryID)
	assert.Equal(t, "Entera, pasteurizada", ed.Form().Description)
	assert.Equal(t, "2.5", ed.Form().UnitPrice, "el precio se renderiza como texto editable")
	assert.Equal(t, "40", ed.Form().StockQuantity)
	assert.Equal(t, "10", ed.Form().ReorderLevel)
}

func TestEditor_CadaAperturaRefrescaCategorias(t *testing.T) {
	svc := &fakeCatalog{categories: categorias()}
	ed := view.NewProductEditor(svc)

	ed.Open(context.Background(), nil)
	assert.Equal(t, 1, svc.catCalls)
	assert.Len(t, ed.Categories(), 2)
	ed.Close()

	// Se crea una categoría en otro lado; la siguiente apertura debe verla.
	svc.categories = append(categorias(), dto.CategoryResponse{ID: "c3", Name: "Panadería"})
	ed.Open(context.Background(), nil)
	assert.Equal(t, 2, svc.catCalls, "las categorías se piden en cada apertura")
	assert.Len(t, ed.Categories(), 3, "nunca se muestra una lista desactualizada")
}

func TestEditor_FallaAlCargarCategorias_SelectorVacioPeroUsable(t *testing.T) {
	svc := &fakeCatalog{catErr: errors.New("timeout")}
	ed := view.NewProductEditor(svc)

	ed.Open(context.Background(), nil)

	assert.True(t, ed.IsOpen())
	assert.Empty(t, ed.Categories())

	// El envío sigue funcionando sin categoría.
	ed.Form().Name = "Sal fina"
	ed.Form().UnitPrice = "0.80"
	ed.Form().StockQuantity = "50"
	done, notice := ed.Submit(context.Background())
	assert.True(t, done)
	require.NotNil(t, notice)
	assert.Equal(t, view.NoticeSuccess, notice.Kind)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación local (nunca llega al almacenamiento)
// ──────────────────────────────────────────────────────────────────────────────

func TestEditor_NombreVacio_BloqueaSinLlamarAlServicio(t *testing.T) {
	svc := &fakeCatalog{categories: categorias()}
	ed := view.NewProductEditor(svc)
	ed.Open(context.Background(), nil)
	ed.Form().UnitPrice = "2.50"
	ed.Form().StockQuantity = "40"

	done, notice := ed.Submit(context.Background())

	assert.False(t, done)
	require.NotNil(t, notice)
	assert.Equal(t, view.NoticeError, notice.Kind)
	assert.NotEmpty(t, ed.FieldError(view.FieldName))
	assert.True(t, ed.IsOpen(), "la validación fallida no cierra el editor")
	assert.Zero(t, svc.createCalls, "no se emite ninguna petición")
}

func TestEditor_NumerosInvalidos_ErroresPorCampo(t *testing.T) {
	cases := []struct {
		name  string
		setup func(f *view.ProductForm)
		field string
	}{
		{"precio no numérico", func(f *view.ProductForm) { f.UnitPrice = "abc" }, view.FieldUnitPrice},
		{"precio negativo", func(f *view.ProductForm) { f.UnitPrice = "-1.50" }, view.FieldUnitPrice},
		{"precio vacío", func(f *view.ProductForm) { f.UnitPrice = "" }, view.FieldUnitPrice},
		{"stock no numérico", func(f *view.ProductForm) { f.StockQuantity = "muchos" }, view.FieldStockQuantity},
		{"stock negativo", func(f *view.ProductForm) { f.StockQuantity = "-3" }, view.FieldStockQuantity},
		{"stock decimal", func(f *view.ProductForm) { f.StockQuantity = "1.5" }, view.FieldStockQuantity},
		{"umbral negativo", func(f *view.ProductForm) { f.ReorderLevel = "-1" }, view.FieldReorderLevel},
		{"umbral vacío", func(f *view.ProductForm) { f.ReorderLevel = "" }, view.FieldReorderLevel},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeCatalog{}
			ed := view.NewProductEditor(svc)
			ed.Open(context.Background(), nil)
			// Base válida; cada caso rompe un solo campo.
			ed.Form().Name = "Leche 1L"
			ed.Form().UnitPrice = "2.50"
			ed.Form().StockQuantity = "40"
			tc.setup(ed.Form())

			done, _ := ed.Submit(context.Background())

			assert.False(t, done)
			assert.NotEmpty(t, ed.FieldError(tc.field))
			assert.Zero(t, svc.createCalls+svc.updateCalls)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Envío
// ──────────────────────────────────────────────────────────────────────────────

func TestEditor_CrearExitoso_CierraYNotifica(t *testing.T) {
	svc := &fakeCatalog{categories: categorias()}
	ed := view.NewProductEditor(svc)
	ed.Open(context.Background(), nil)
	ed.Form().Name = "Leche 1L"
	ed.Form().Barcode = "111"
	ed.Form().CategoryID = "c2"
	ed.Form().UnitPrice = "2.50"
	ed.Form().StockQuantity = "40"

	done, notice := ed.Submit(context.Background())

	require.True(t, done)
	require.NotNil(t, notice)
	assert.Equal(t, view.NoticeSuccess, notice.Kind)
	assert.Equal(t, "Product created", notice.Title)
	assert.False(t, ed.IsOpen())

	// El borrador llegó parseado al servicio.
	require.Equal(t, 1, svc.createCalls)
	draft := svc.lastDraft
	assert.Equal(t, "Leche 1L", draft.Name)
	require.NotNil(t, draft.Barcode)
	assert.Equal(t, "111", *draft.Barcode)
	require.NotNil(t, draft.CategoryID)
	assert.Equal(t, "c2", *draft.CategoryID)
	assert.Nil(t, draft.Description, "texto vacío viaja como nil")
	assert.True(t, draft.UnitPrice.Equal(decimalFromString(t, "2.50")))
	assert.Equal(t, 40, draft.StockQuantity)
	require.NotNil(t, draft.ReorderLevel)
	assert.Equal(t, 10, *draft.ReorderLevel)
}

func TestEditor_ActualizarUsaElIdAtado(t *testing.T) {
	svc := &fakeCatalog{categories: categorias()}
	ed := view.NewProductEditor(svc)
	p := testProduct("p1", "Leche 1L", strPtr("111"), nil, "2.50", 40, 10)
	ed.Open(context.Background(), &p)
	ed.Form().StockQuantity = "5"

	done, notice := ed.Submit(context.Background())

	require.True(t, done)
	assert.Equal(t, "Product updated", notice.Title)
	assert.Equal(t, 1, svc.updateCalls)
	assert.Equal(t, "p1", svc.lastUpdateID)
	assert.Equal(t, 5, svc.lastDraft.StockQuantity, "solo cambió el stock; el resto viaja igual")
	assert.Equal(t, "Leche 1L", svc.lastDraft.Name)
}

func TestEditor_FallaDelAlmacenamiento_FormularioIntacto(t *testing.T) {
	svc := &fakeCatalog{createErr: errors.New("duplicate barcode")}
	ed := view.NewProductEditor(svc)
	ed.Open(context.Background(), nil)
	ed.Form().Name = "Leche 1L"
	ed.Form().Barcode = "111"
	ed.Form().UnitPrice = "2.50"
	ed.Form().StockQuantity = "40"

	done, notice := ed.Submit(context.Background())

	assert.False(t, done)
	require.NotNil(t, notice)
	assert.Equal(t, view.NoticeError, notice.Kind)
	assert.Contains(t, notice.Message, "duplicate barcode")
	assert.True(t, ed.IsOpen(), "el editor queda abierto para corregir")
	assert.Equal(t, "Leche 1L", ed.Form().Name, "ningún campo se limpia tras la falla")
	assert.Equal(t, "111", ed.Form().Barcode)
}

func TestEditor_ActualizarIdDesaparecido_AvisaSinCerrar(t *testing.T) {
	svc := &fakeCatalog{updateErr: domain.ErrNotFound}
	ed := view.NewProductEditor(svc)
	p := testProduct("p1", "Leche 1L", nil, nil, "2.50", 40, 10)
	ed.Open(context.Background(), &p)

	done, notice := ed.Submit(context.Background())

	assert.False(t, done)
	require.NotNil(t, notice)
	assert.Equal(t, "The product no longer exists.", notice.Message)
	assert.True(t, ed.IsOpen())
}

func TestEditor_CerrarDuranteEnvioEnVuelo_DescartaLaRespuesta(t *testing.T) {
	svc := &fakeCatalog{}
	ed := view.NewProductEditor(svc)
	ed.Open(context.Background(), nil)
	ed.Form().Name = "Leche 1L"
	ed.Form().UnitPrice = "2.50"
	ed.Form().StockQuantity = "40"

	// El editor se cierra mientras el create sigue en vuelo.
	svc.onCreate = func() { ed.Close() }
	done, notice := ed.Submit(context.Background())

	assert.False(t, done)
	assert.Nil(t, notice, "la respuesta tardía se ignora en silencio")
	assert.False(t, ed.IsOpen())
}

func TestEditor_CerrarSinEnviar_DescartaElBorrador(t *testing.T) {
	svc := &fakeCatalog{}
	ed := view.NewProductEditor(svc)
	ed.Open(context.Background(), nil)
	ed.Form().Name = "Borrador abandonado"

	ed.Close()

	assert.False(t, ed.IsOpen())
	assert.Zero(t, svc.createCalls+svc.updateCalls, "cerrar no tiene efecto en el almacenamiento")
}
