package view

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/mercado-admin-api/internal/application/dto"
)

// fold normaliza un texto para búsqueda: minúsculas y sin diacríticos,
// de modo que "cafe" encuentre "Café". NFD separa los acentos, se
// eliminan las marcas (Mn) y se recompone.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// matchesQuery decide si un producto entra en la proyección filtrada:
// la consulta debe ser subcadena (sin distinguir mayúsculas ni acentos)
// del nombre, del código de barras o del nombre de la categoría.
func matchesQuery(p dto.ProductResponse, query string) bool {
	if query == "" {
		return true
	}
	q := fold(query)
	if strings.Contains(fold(p.Name), q) {
		return true
	}
	if p.Barcode != nil && strings.Contains(fold(*p.Barcode), q) {
		return true
	}
	if p.CategoryName != nil && strings.Contains(fold(*p.CategoryName), q) {
		return true
	}
	return false
}
