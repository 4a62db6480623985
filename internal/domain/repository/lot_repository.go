package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastro/kardex-api/internal/domain/entity"
)

// LotRepository define el puerto de persistencia para lotes (DIP).
// GetForUpdate y UpdateBalance solo tienen sentido dentro de una transacción:
// son el mecanismo de serialización por lote de RecordMovement.
type LotRepository interface {
	Create(lot *entity.Lot) error
	GetByID(id string) (*entity.Lot, error)
	// GetForUpdate bloquea la fila del lote (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Lot, error)
	UpdateBalance(id string, balance decimal.Decimal, updatedAt time.Time) error
	ListByWarehouse(warehouseID string) ([]*entity.Lot, error)
	// ListExpiringBefore lista lotes activos cuyo vencimiento cae en o antes del corte.
	ListExpiringBefore(cutoff time.Time) ([]*entity.Lot, error)
}
