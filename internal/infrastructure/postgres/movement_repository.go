package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastro/kardex-api/internal/domain/entity"
	"github.com/jcastro/kardex-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del kardex append-only sobre PostgreSQL
// (usable con pool o tx). No expone Update ni Delete: los movimientos son
// inmutables y las correcciones se registran como movimientos compensatorios.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento. Se invoca solo desde el caso de uso bajo su
// transacción, junto con la actualización del saldo del lote.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (id, lot_id, code, kind, quantity_before,
			quantity_delta, quantity_after, gloss, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.LotID, movement.Code, movement.Kind,
		movement.QuantityBefore, movement.QuantityDelta, movement.QuantityAfter,
		movement.Gloss, movement.Status, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListByLot devuelve el kardex del lote: creación ascendente, empates por ID.
func (r *MovementRepo) ListByLot(lotID string) ([]*entity.Movement, error) {
	query := `
		SELECT id, lot_id, code, kind, quantity_before, quantity_delta,
			quantity_after, gloss, status, created_at
		FROM movements WHERE lot_id = $1
		ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, lotID)
	if err != nil {
		return nil, fmt.Errorf("list movements by lot: %w", err)
	}
	defer rows.Close()

	list := []*entity.Movement{}
	for rows.Next() {
		var m entity.Movement
		if err := scanMovement(rows, &m); err != nil {
			return nil, err
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListByWarehouse devuelve el log de actividad de la bodega, cada movimiento
// anotado con el nombre de su producto y el código de su lote.
func (r *MovementRepo) ListByWarehouse(warehouseID string) ([]*entity.LedgerEntry, error) {
	query := `
		SELECT m.id, m.lot_id, m.code, m.kind, m.quantity_before, m.quantity_delta,
			m.quantity_after, m.gloss, m.status, m.created_at,
			p.name, l.code
		FROM movements m
		JOIN lots l ON l.id = m.lot_id
		JOIN products p ON p.id = l.product_id
		WHERE l.warehouse_id = $1
		ORDER BY m.created_at ASC, m.id ASC`
	rows, err := r.q.Query(context.Background(), query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list movements by warehouse: %w", err)
	}
	defer rows.Close()

	list := []*entity.LedgerEntry{}
	for rows.Next() {
		var e entity.LedgerEntry
		if err := rows.Scan(
			&e.ID, &e.LotID, &e.Code, &e.Kind, &e.QuantityBefore, &e.QuantityDelta,
			&e.QuantityAfter, &e.Gloss, &e.Status, &e.CreatedAt,
			&e.ProductName, &e.LotCode,
		); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

func scanMovement(rows pgx.Rows, m *entity.Movement) error {
	if err := rows.Scan(
		&m.ID, &m.LotID, &m.Code, &m.Kind, &m.QuantityBefore, &m.QuantityDelta,
		&m.QuantityAfter, &m.Gloss, &m.Status, &m.CreatedAt,
	); err != nil {
		return fmt.Errorf("scan movement: %w", err)
	}
	return nil
}
