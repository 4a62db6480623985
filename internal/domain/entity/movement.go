package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Clases de movimiento: el signo del efecto lo determina Kind, Delta siempre es magnitud positiva.
const (
	MovementKindInflow  = "inflow"
	MovementKindOutflow = "outflow"
)

// Códigos de negocio más comunes. El campo Code es texto libre de clasificación,
// estos son los que genera/espera el sistema por defecto.
const (
	MovementCodeInitial     = "ingreso-inicial"
	MovementCodePurchase    = "ingreso-compra"
	MovementCodeConsumption = "salida-consumo"
)

// Movement es una entrada del kardex de un lote. Es append-only: se crea una
// vez, nunca se edita ni se borra; las correcciones son movimientos compensatorios.
// Para un lote ordenado por CreatedAt (empate por ID ascendente) la secuencia
// telescopa: QuantityAfter de cada entrada == QuantityBefore de la siguiente.
type Movement struct {
	ID             string
	LotID          string
	Code           string // clasificación de negocio: ingreso-compra, salida-consumo, ...
	Kind           string // inflow | outflow
	QuantityBefore decimal.Decimal
	QuantityDelta  decimal.Decimal // magnitud > 0
	QuantityAfter  decimal.Decimal
	Gloss          string // glosa: nota de referencia libre
	Status         string
	CreatedAt      time.Time
}

// SignedDelta devuelve el delta con signo según Kind (+inflow, -outflow).
func (m *Movement) SignedDelta() decimal.Decimal {
	if m.Kind == MovementKindOutflow {
		return m.QuantityDelta.Neg()
	}
	return m.QuantityDelta
}

// LedgerEntry es un movimiento anotado con datos de su lote para listados por
// bodega y para el motor de consulta (facetas y búsqueda).
type LedgerEntry struct {
	Movement
	ProductName string
	LotCode     string
}
