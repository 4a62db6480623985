package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jcastro/kardex-api/internal/domain"
	"github.com/jcastro/kardex-api/internal/domain/entity"
	"github.com/jcastro/kardex-api/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo implementación de LotRepository sobre PostgreSQL (usable con pool o tx).
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador de lotes. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

const lotColumns = `id, product_id, unit_id, warehouse_id, code, description,
	ingress_date, expiration_date, current_balance, status, created_at, updated_at`

// Create persiste un lote nuevo. La unicidad de code por bodega la impone el
// constraint único (warehouse_id, code); una colisión sale como domain.ErrDuplicate.
func (r *LotRepo) Create(lot *entity.Lot) error {
	query := `
		INSERT INTO lots (id, product_id, unit_id, warehouse_id, code, description,
			ingress_date, expiration_date, current_balance, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.ProductID, lot.UnitID, lot.WarehouseID, lot.Code, lot.Description,
		lot.IngressDate, lot.ExpirationDate, lot.CurrentBalance, lot.Status,
		lot.CreatedAt, lot.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID; nil si no existe.
func (r *LotRepo) GetByID(id string) (*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtiene el lote y bloquea su fila (SELECT FOR UPDATE). Solo
// tiene sentido dentro de una transacción: es la sección crítica por lote.
func (r *LotRepo) GetForUpdate(id string) (*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

// UpdateBalance escribe el nuevo saldo cacheado del lote.
func (r *LotRepo) UpdateBalance(id string, balance decimal.Decimal, updatedAt time.Time) error {
	query := `UPDATE lots SET current_balance = $2, updated_at = $3 WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, balance, updatedAt)
	if err != nil {
		return fmt.Errorf("update lot balance: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByWarehouse lista los lotes de una bodega (cualquier estado) en orden estable.
func (r *LotRepo) ListByWarehouse(warehouseID string) ([]*entity.Lot, error) {
	query := `SELECT ` + lotColumns + `
		FROM lots WHERE warehouse_id = $1 ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list lots by warehouse: %w", err)
	}
	defer rows.Close()
	return scanLots(rows)
}

// ListExpiringBefore lista lotes activos con vencimiento en o antes del corte.
func (r *LotRepo) ListExpiringBefore(cutoff time.Time) ([]*entity.Lot, error) {
	query := `SELECT ` + lotColumns + `
		FROM lots
		WHERE status = $1 AND expiration_date IS NOT NULL AND expiration_date <= $2
		ORDER BY expiration_date ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, entity.StatusActive, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list expiring lots: %w", err)
	}
	defer rows.Close()
	return scanLots(rows)
}

func (r *LotRepo) scanOne(query string, args ...any) (*entity.Lot, error) {
	var l entity.Lot
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&l.ID, &l.ProductID, &l.UnitID, &l.WarehouseID, &l.Code, &l.Description,
		&l.IngressDate, &l.ExpirationDate, &l.CurrentBalance, &l.Status,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	return &l, nil
}

func scanLots(rows pgx.Rows) ([]*entity.Lot, error) {
	var list []*entity.Lot
	for rows.Next() {
		var l entity.Lot
		if err := rows.Scan(
			&l.ID, &l.ProductID, &l.UnitID, &l.WarehouseID, &l.Code, &l.Description,
			&l.IngressDate, &l.ExpirationDate, &l.CurrentBalance, &l.Status,
			&l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
