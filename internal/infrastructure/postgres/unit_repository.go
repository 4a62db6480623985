package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastro/kardex-api/internal/domain/entity"
	"github.com/jcastro/kardex-api/internal/domain/repository"
)

var _ repository.UnitRepository = (*UnitRepo)(nil)

// UnitRepo lectura del catálogo de unidades de medida sobre PostgreSQL.
type UnitRepo struct {
	q Querier
}

// NewUnitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

// GetByID obtiene una unidad por ID; nil si no existe.
func (r *UnitRepo) GetByID(id string) (*entity.UnitOfMeasure, error) {
	query := `SELECT id, name, abbreviation FROM units WHERE id = $1`
	var u entity.UnitOfMeasure
	err := r.q.QueryRow(context.Background(), query, id).Scan(&u.ID, &u.Name, &u.Abbreviation)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return &u, nil
}
