package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de ciclo de vida (soft-delete: un lote con movimientos nunca se borra).
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Lot representa un lote de inventario en una bodega: identidad del batch,
// referencias de catálogo, fecha de vencimiento (obligatoria si el producto
// es perecible) y el saldo actual como caché denormalizado del kardex.
// Invariante: CurrentBalance == suma de los deltas firmados de sus movimientos, nunca negativo.
type Lot struct {
	ID             string
	ProductID      string
	UnitID         string
	WarehouseID    string
	Code           string // código de lote legible, único por bodega
	Description    string
	IngressDate    time.Time
	ExpirationDate *time.Time // requerido y >= IngressDate si el producto es perecible
	CurrentBalance decimal.Decimal
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Expired indica si el lote ya venció respecto a la fecha dada.
func (l *Lot) Expired(at time.Time) bool {
	return l.ExpirationDate != nil && l.ExpirationDate.Before(at)
}
