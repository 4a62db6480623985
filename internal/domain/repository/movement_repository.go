package repository

import "github.com/jcastro/kardex-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para el kardex append-only.
// Create solo se invoca desde el caso de uso bajo su transacción; no existe
// Update ni Delete: los movimientos son inmutables.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// ListByLot devuelve los movimientos del lote ordenados por fecha de
	// creación ascendente, empates por ID ascendente. Vacío no es error.
	ListByLot(lotID string) ([]*entity.Movement, error)
	// ListByWarehouse devuelve los movimientos de todos los lotes de la bodega,
	// anotados con nombre de producto y código de lote; mismo orden.
	ListByWarehouse(warehouseID string) ([]*entity.LedgerEntry, error)
}
