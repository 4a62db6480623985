// Package kardex implementa el motor de kardex de lotes: creación de lotes
// con movimiento semilla, registro transaccional de movimientos con bloqueo
// por lote, y el lado de lectura (listados, facetas, búsqueda, paginación).
package kardex

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcastro/kardex-api/internal/domain"
	"github.com/jcastro/kardex-api/internal/domain/entity"
	domkardex "github.com/jcastro/kardex-api/internal/domain/kardex"
	"github.com/jcastro/kardex-api/internal/domain/repository"
)

// intentos de generación de código de lote ante colisión de unicidad por bodega.
const lotCodeAttempts = 3

// LedgerUseCase orquesta el kardex: valida contra el catálogo, delega las
// invariantes puras al validador de dominio y ejecuta las mutaciones de saldo
// bajo una transacción con SELECT FOR UPDATE sobre la fila del lote.
type LedgerUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	unitRepo      repository.UnitRepository
	warehouseRepo repository.WarehouseRepository
	lotRepo       repository.LotRepository      // lado de lectura (pool, sin lock)
	movementRepo  repository.MovementRepository // lado de lectura (pool, sin lock)
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	unitRepo repository.UnitRepository,
	warehouseRepo repository.WarehouseRepository,
	lotRepo repository.LotRepository,
	movementRepo repository.MovementRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		unitRepo:      unitRepo,
		warehouseRepo: warehouseRepo,
		lotRepo:       lotRepo,
		movementRepo:  movementRepo,
	}
}

// CreateLotInput entrada para crear un lote.
type CreateLotInput struct {
	ProductID      string
	UnitID         string
	WarehouseID    string
	Description    string
	InitialStock   decimal.Decimal
	IngressDate    time.Time
	ExpirationDate *time.Time
}

// RecordMovementInput entrada para registrar un movimiento sobre un lote.
type RecordMovementInput struct {
	LotID    string
	Kind     string // inflow | outflow
	Quantity decimal.Decimal
	Code     string
	Gloss    string
}

// CreateLot valida la creación, genera un código de lote único por bodega y
// persiste el lote con su saldo inicial. Si el stock inicial es mayor que
// cero, en la misma transacción se registra el movimiento semilla
// {inflow, before 0, delta s, after s, code "ingreso-inicial"}.
func (uc *LedgerUseCase) CreateLot(ctx context.Context, input CreateLotInput) (*entity.Lot, error) {
	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	unit, err := uc.unitRepo.GetByID(input.UnitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByID(input.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}

	if verr := domkardex.ValidateCreation(domkardex.CreationInput{
		Product:        product,
		InitialStock:   input.InitialStock,
		IngressDate:    input.IngressDate,
		ExpirationDate: input.ExpirationDate,
	}); verr != nil {
		return nil, verr
	}

	now := time.Now()
	lot := &entity.Lot{
		ID:             uuid.New().String(),
		ProductID:      input.ProductID,
		UnitID:         input.UnitID,
		WarehouseID:    input.WarehouseID,
		Description:    input.Description,
		IngressDate:    input.IngressDate,
		ExpirationDate: input.ExpirationDate,
		CurrentBalance: input.InitialStock,
		Status:         entity.StatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// El código es único por bodega (constraint en BD); ante colisión se
	// regenera y reintenta dentro de una transacción nueva.
	for attempt := 0; attempt < lotCodeAttempts; attempt++ {
		lot.Code = newLotCode(input.IngressDate)
		err = uc.txRunner.Run(ctx, func(lotRepo repository.LotRepository, movRepo repository.MovementRepository) error {
			if err := lotRepo.Create(lot); err != nil {
				return err
			}
			if !input.InitialStock.IsPositive() {
				return nil
			}
			seed := &entity.Movement{
				ID:             uuid.New().String(),
				LotID:          lot.ID,
				Code:           entity.MovementCodeInitial,
				Kind:           entity.MovementKindInflow,
				QuantityBefore: decimal.Zero,
				QuantityDelta:  input.InitialStock,
				QuantityAfter:  input.InitialStock,
				Gloss:          "stock inicial del lote " + lot.Code,
				Status:         entity.StatusActive,
				CreatedAt:      now,
			}
			return movRepo.Create(seed)
		})
		if err == nil {
			return lot, nil
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
	}
	return nil, domain.ErrDuplicate
}

// RecordMovement registra un movimiento sobre un lote existente. La lectura
// del saldo, el cálculo, el append y la escritura del nuevo saldo ocurren
// dentro de una transacción con la fila del lote bloqueada: dos outflows
// concurrentes sobre el mismo lote nunca observan el mismo saldo previo.
func (uc *LedgerUseCase) RecordMovement(ctx context.Context, input RecordMovementInput) (*entity.Movement, error) {
	if verr := domkardex.ValidateMovement(input.Kind, input.Quantity, input.Code); verr != nil {
		return nil, verr
	}

	var movement *entity.Movement
	err := uc.txRunner.Run(ctx, func(lotRepo repository.LotRepository, movRepo repository.MovementRepository) error {
		lot, err := lotRepo.GetForUpdate(input.LotID)
		if err != nil {
			return err
		}
		if lot == nil {
			return domain.ErrNotFound
		}

		before := lot.CurrentBalance
		var after decimal.Decimal
		if input.Kind == entity.MovementKindOutflow {
			if input.Quantity.GreaterThan(before) {
				return domain.ErrInsufficientStock
			}
			after = before.Sub(input.Quantity)
		} else {
			after = before.Add(input.Quantity)
		}

		now := time.Now()
		movement = &entity.Movement{
			ID:             uuid.New().String(),
			LotID:          lot.ID,
			Code:           input.Code,
			Kind:           input.Kind,
			QuantityBefore: before,
			QuantityDelta:  input.Quantity,
			QuantityAfter:  after,
			Gloss:          input.Gloss,
			Status:         entity.StatusActive,
			CreatedAt:      now,
		}
		if err := movRepo.Create(movement); err != nil {
			return err
		}
		return lotRepo.UpdateBalance(lot.ID, after, now)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// ListLotsByWarehouse devuelve todos los lotes de la bodega (cualquier estado)
// en orden estable.
func (uc *LedgerUseCase) ListLotsByWarehouse(warehouseID string) ([]*entity.Lot, error) {
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	return uc.lotRepo.ListByWarehouse(warehouseID)
}

// ListMovementsByLot devuelve el kardex del lote en orden de creación.
func (uc *LedgerUseCase) ListMovementsByLot(lotID string) ([]*entity.Movement, error) {
	lot, err := uc.lotRepo.GetByID(lotID)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrNotFound
	}
	return uc.movementRepo.ListByLot(lotID)
}

// ListLedgerByWarehouse devuelve el log de actividad completo de la bodega,
// cada entrada anotada con nombre de producto y código de lote.
func (uc *LedgerUseCase) ListLedgerByWarehouse(warehouseID string) ([]*entity.LedgerEntry, error) {
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	return uc.movementRepo.ListByWarehouse(warehouseID)
}

// GetLot devuelve un lote por ID.
func (uc *LedgerUseCase) GetLot(lotID string) (*entity.Lot, error) {
	lot, err := uc.lotRepo.GetByID(lotID)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrNotFound
	}
	return lot, nil
}

// newLotCode genera un código de lote legible: LOTE-<fecha ingreso>-<sufijo>.
func newLotCode(ingress time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return "LOTE-" + ingress.Format("20060102") + "-" + suffix
}
