package kardex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/kardex-api/internal/application/kardex"
	"github.com/jcastro/kardex-api/internal/domain/entity"
)

func entrada(code, kind, gloss, product, lotCode string) *entity.LedgerEntry {
	return &entity.LedgerEntry{
		Movement:    entity.Movement{Code: code, Kind: kind, Gloss: gloss},
		ProductName: product,
		LotCode:     lotCode,
	}
}

func entradasDemo() []*entity.LedgerEntry {
	return []*entity.LedgerEntry{
		entrada("ingreso-inicial", entity.MovementKindInflow, "stock inicial", "Yogurt", "LOTE-20240101-AAAAAA"),
		entrada("salida-consumo", entity.MovementKindOutflow, "pedido 42", "Yogurt", "LOTE-20240101-AAAAAA"),
		entrada("ingreso-compra", entity.MovementKindInflow, "OC-991", "Harina", "LOTE-20240102-BBBBBB"),
		entrada("salida-consumo", entity.MovementKindOutflow, "merma panadería", "Harina", "LOTE-20240102-BBBBBB"),
		entrada("ingreso-compra", entity.MovementKindInflow, "OC-992", "Harina", "LOTE-20240103-CCCCCC"),
	}
}

func TestFilterFacets(t *testing.T) {
	f := kardex.FilterFacets(entradasDemo())
	assert.Equal(t, []string{"Harina", "Yogurt"}, f.Products, "productos distintos ordenados")
	assert.Equal(t, []string{
		"LOTE-20240101-AAAAAA", "LOTE-20240102-BBBBBB", "LOTE-20240103-CCCCCC",
	}, f.LotCodes, "códigos de lote distintos ordenados")
}

// Elegir un producto en la UI estrecha la faceta de lotes: se recalcula sobre
// el resultado de Search con ese producto.
func TestFilterFacets_EstrechamientoDependiente(t *testing.T) {
	soloHarina := kardex.Search(entradasDemo(), "", "Harina", "")
	f := kardex.FilterFacets(soloHarina)
	assert.Equal(t, []string{"Harina"}, f.Products)
	assert.Equal(t, []string{"LOTE-20240102-BBBBBB", "LOTE-20240103-CCCCCC"}, f.LotCodes)
}

func TestFilterFacets_Vacio(t *testing.T) {
	f := kardex.FilterFacets(nil)
	assert.Empty(t, f.Products)
	assert.Empty(t, f.LotCodes)
}

// Sin query ni filtros, Search devuelve la secuencia idéntica en orden y contenido.
func TestSearch_Idempotente(t *testing.T) {
	in := entradasDemo()
	out := kardex.Search(in, "", "", "")
	require.Len(t, out, len(in))
	for i := range in {
		assert.Same(t, in[i], out[i])
	}
}

func TestSearch(t *testing.T) {
	in := entradasDemo()

	cases := []struct {
		name                 string
		query, product, lote string
		want                 int
	}{
		{"query por código de movimiento", "ingreso", "", "", 3},
		{"query case-insensitive sobre glosa", "PEDIDO", "", "", 1},
		{"query sobre nombre de producto", "harina", "", "", 3},
		{"query sobre código de lote", "cccccc", "", "", 1},
		{"filtro de producto exacto", "", "Yogurt", "", 2},
		{"filtro de lote exacto", "", "", "LOTE-20240102-BBBBBB", 2},
		{"query y filtros en AND", "salida", "Harina", "LOTE-20240102-BBBBBB", 1},
		{"AND sin intersección", "OC-991", "Yogurt", "", 0},
		{"sin coincidencias", "zzz", "", "", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := kardex.Search(in, tc.query, tc.product, tc.lote)
			assert.Len(t, out, tc.want)
		})
	}
}

func TestSearch_PreservaOrden(t *testing.T) {
	in := entradasDemo()
	out := kardex.Search(in, "harina", "", "")
	require.Len(t, out, 3)
	assert.Equal(t, "OC-991", out[0].Gloss)
	assert.Equal(t, "merma panadería", out[1].Gloss)
	assert.Equal(t, "OC-992", out[2].Gloss)
}

func TestPaginate(t *testing.T) {
	in := entradasDemo() // 5 entradas

	cases := []struct {
		name       string
		page, size int
		want       int
	}{
		{"primera página completa", 1, 2, 2},
		{"página intermedia", 2, 2, 2},
		{"última página parcial", 3, 2, 1},
		{"página fuera de rango devuelve vacío", 4, 2, 0},
		{"página cero devuelve vacío", 0, 2, 0},
		{"tamaño cero devuelve vacío", 1, 0, 0},
		{"tamaño mayor que la secuencia", 1, 50, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := kardex.Paginate(in, tc.page, tc.size)
			assert.Len(t, out, tc.want)
		})
	}
}

func TestPaginate_CorteCorrecto(t *testing.T) {
	in := entradasDemo()
	out := kardex.Paginate(in, 2, 2)
	require.Len(t, out, 2)
	assert.Same(t, in[2], out[0])
	assert.Same(t, in[3], out[1])
}
