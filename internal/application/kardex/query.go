package kardex

import (
	"sort"
	"strings"

	"github.com/jcastro/kardex-api/internal/domain/entity"
)

// Lado de lectura del kardex: funciones puras sobre secuencias ya recuperadas.
// No mutan su entrada ni dependen de estado oculto, así cualquier capa de
// presentación puede componerlas (la faceta de lotes se estrecha aplicando
// Search con el producto elegido y recalculando FilterFacets).

// Facets valores distintos derivados de una secuencia de movimientos, para
// poblar filtros dependientes en la capa de presentación.
type Facets struct {
	Products []string
	LotCodes []string
}

// FilterFacets deriva las facetas (productos y códigos de lote distintos,
// ordenados) de la secuencia dada.
func FilterFacets(entries []*entity.LedgerEntry) Facets {
	products := map[string]struct{}{}
	lotCodes := map[string]struct{}{}
	for _, e := range entries {
		if e.ProductName != "" {
			products[e.ProductName] = struct{}{}
		}
		if e.LotCode != "" {
			lotCodes[e.LotCode] = struct{}{}
		}
	}
	return Facets{
		Products: sortedKeys(products),
		LotCodes: sortedKeys(lotCodes),
	}
}

// Search filtra la secuencia sin alterar su orden. query hace match por
// substring case-insensitive contra código de movimiento, glosa, nombre de
// producto y código de lote; productFilter y lotCodeFilter son igualdad
// exacta (valores de faceta). Todos los filtros presentes se combinan con
// AND; un filtro vacío equivale a "todos".
func Search(entries []*entity.LedgerEntry, query, productFilter, lotCodeFilter string) []*entity.LedgerEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]*entity.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		if productFilter != "" && e.ProductName != productFilter {
			continue
		}
		if lotCodeFilter != "" && e.LotCode != lotCodeFilter {
			continue
		}
		if q != "" && !matchesQuery(e, q) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Paginate corta la página pedida (base 1) de la secuencia. Páginas fuera de
// rango devuelven vacío, nunca error.
func Paginate(entries []*entity.LedgerEntry, page, size int) []*entity.LedgerEntry {
	if page < 1 || size < 1 {
		return []*entity.LedgerEntry{}
	}
	start := (page - 1) * size
	if start >= len(entries) {
		return []*entity.LedgerEntry{}
	}
	end := start + size
	if end > len(entries) {
		end = len(entries)
	}
	return entries[start:end]
}

func matchesQuery(e *entity.LedgerEntry, q string) bool {
	return strings.Contains(strings.ToLower(e.Code), q) ||
		strings.Contains(strings.ToLower(e.Gloss), q) ||
		strings.Contains(strings.ToLower(e.ProductName), q) ||
		strings.Contains(strings.ToLower(e.LotCode), q)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
