// Package view implementa las dos pantallas del back-office de catálogo
// como máquinas de estado tipadas: la tabla de productos (CatalogView) y
// el formulario modal de producto (ProductEditor).
//
// Cada transición es un método explícito; no hay recomputación implícita.
// Los avisos al usuario son valores de retorno (Notice), no un canal
// global de notificaciones.
package view

import (
	"context"

	"github.com/jhoicas/mercado-admin-api/internal/application/dto"
)

// CatalogService puerto que las vistas consumen para leer y escribir el
// catálogo. Lo implementa usecase.CatalogUseCase.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]dto.ProductResponse, error)
	ListCategories(ctx context.Context) ([]dto.CategoryResponse, error)
	Create(ctx context.Context, in dto.ProductDraft) (*dto.ProductResponse, error)
	Update(ctx context.Context, id string, in dto.ProductDraft) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id string) error
}

// NoticeKind tipo de aviso al usuario.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice aviso puntual para el usuario, devuelto por las acciones de las
// vistas. El llamador decide cómo presentarlo.
type Notice struct {
	Kind    NoticeKind
	Title   string
	Message string
}

func successNotice(title, message string) *Notice {
	return &Notice{Kind: NoticeSuccess, Title: title, Message: message}
}

func errorNotice(title, message string) *Notice {
	return &Notice{Kind: NoticeError, Title: title, Message: message}
}
