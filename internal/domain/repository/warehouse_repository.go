package repository

import "github.com/jcastro/kardex-api/internal/domain/entity"

// WarehouseRepository puerto de consulta de bodegas. El kardex solo necesita
// verificar identidad: la administración de bodegas vive fuera de este core.
type WarehouseRepository interface {
	GetByID(id string) (*entity.Warehouse, error)
}
