package repository

import "github.com/jcastro/kardex-api/internal/domain/entity"

// ProductRepository puerto de consulta del catálogo de productos.
// El motor de kardex solo lee: el CRUD de catálogo es un colaborador externo.
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error)
}
