package kardex_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/kardex-api/internal/domain"
	"github.com/jcastro/kardex-api/internal/domain/entity"
	"github.com/jcastro/kardex-api/internal/domain/kardex"
)

var (
	perecible    = &entity.Product{ID: "p1", Name: "Yogurt", Perishable: true}
	noPerecible  = &entity.Product{ID: "p2", Name: "Tornillos", Perishable: false}
	fechaIngreso = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
)

func fecha(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestValidateCreation(t *testing.T) {
	cases := []struct {
		name       string
		input      kardex.CreationInput
		wantField  string // "" = válido
	}{
		{
			name: "perecible con vencimiento posterior al ingreso pasa",
			input: kardex.CreationInput{
				Product:        perecible,
				InitialStock:   decimal.NewFromInt(50),
				IngressDate:    fechaIngreso,
				ExpirationDate: fecha(2024, 6, 1),
			},
		},
		{
			name: "no perecible sin vencimiento pasa",
			input: kardex.CreationInput{
				Product:      noPerecible,
				InitialStock: decimal.NewFromInt(10),
				IngressDate:  fechaIngreso,
			},
		},
		{
			name: "stock inicial cero pasa",
			input: kardex.CreationInput{
				Product:      noPerecible,
				InitialStock: decimal.Zero,
				IngressDate:  fechaIngreso,
			},
		},
		{
			name: "stock inicial negativo falla en initial_stock",
			input: kardex.CreationInput{
				Product:      noPerecible,
				InitialStock: decimal.NewFromInt(-1),
				IngressDate:  fechaIngreso,
			},
			wantField: "initial_stock",
		},
		{
			name: "perecible sin vencimiento falla en expiration_date",
			input: kardex.CreationInput{
				Product:      perecible,
				InitialStock: decimal.NewFromInt(5),
				IngressDate:  fechaIngreso,
			},
			wantField: "expiration_date",
		},
		{
			name: "vencimiento anterior al ingreso falla en expiration_date",
			input: kardex.CreationInput{
				Product:        perecible,
				InitialStock:   decimal.NewFromInt(5),
				IngressDate:    fechaIngreso,
				ExpirationDate: fecha(2023, 12, 31),
			},
			wantField: "expiration_date",
		},
		{
			name: "vencimiento igual al ingreso pasa",
			input: kardex.CreationInput{
				Product:        perecible,
				InitialStock:   decimal.NewFromInt(5),
				IngressDate:    fechaIngreso,
				ExpirationDate: fecha(2024, 1, 1),
			},
		},
		{
			name: "no perecible con vencimiento anterior también falla",
			input: kardex.CreationInput{
				Product:        noPerecible,
				InitialStock:   decimal.NewFromInt(5),
				IngressDate:    fechaIngreso,
				ExpirationDate: fecha(2023, 1, 1),
			},
			wantField: "expiration_date",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := kardex.ValidateCreation(tc.input)
			if tc.wantField == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			require.Len(t, err.Fields, 1, "el corte es en el primer fallo")
			assert.Equal(t, tc.wantField, err.Fields[0].Field)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// El orden de las reglas importa: con stock negativo Y producto perecible sin
// vencimiento, debe reportarse primero initial_stock.
func TestValidateCreation_CorteEnPrimeraRegla(t *testing.T) {
	err := kardex.ValidateCreation(kardex.CreationInput{
		Product:      perecible,
		InitialStock: decimal.NewFromInt(-10),
		IngressDate:  fechaIngreso,
	})
	require.NotNil(t, err)
	assert.Equal(t, "initial_stock", err.Fields[0].Field)
}

func TestValidateMovement(t *testing.T) {
	cases := []struct {
		name      string
		kind      string
		delta     decimal.Decimal
		code      string
		wantField string
	}{
		{"inflow válido", entity.MovementKindInflow, decimal.NewFromInt(3), entity.MovementCodePurchase, ""},
		{"outflow válido", entity.MovementKindOutflow, decimal.NewFromFloat(0.5), entity.MovementCodeConsumption, ""},
		{"clase desconocida", "transfer", decimal.NewFromInt(1), "x", "kind"},
		{"delta cero", entity.MovementKindInflow, decimal.Zero, "x", "quantity"},
		{"delta negativo", entity.MovementKindOutflow, decimal.NewFromInt(-2), "x", "quantity"},
		{"código vacío", entity.MovementKindInflow, decimal.NewFromInt(1), "", "code"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := kardex.ValidateMovement(tc.kind, tc.delta, tc.code)
			if tc.wantField == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, tc.wantField, err.Fields[0].Field)
		})
	}
}
