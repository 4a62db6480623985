package repository

import "github.com/jcastro/kardex-api/internal/domain/entity"

// UnitRepository puerto de consulta del catálogo de unidades de medida.
type UnitRepository interface {
	GetByID(id string) (*entity.UnitOfMeasure, error)
}
