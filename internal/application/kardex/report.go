package kardex

import (
	"context"

	"github.com/jcastro/kardex-api/internal/domain"
	"github.com/jcastro/kardex-api/internal/domain/entity"
)

// ReportData todo lo necesario para renderizar el reporte de kardex de un lote.
type ReportData struct {
	Lot       *entity.Lot
	Product   *entity.Product
	Unit      *entity.UnitOfMeasure
	Warehouse *entity.Warehouse
	Movements []*entity.Movement
}

// KardexPDFGenerator puerto del renderizador del reporte (implementado en
// infrastructure/pdf con Maroto).
type KardexPDFGenerator interface {
	GenerateKardexPDF(
		ctx context.Context,
		lot *entity.Lot,
		product *entity.Product,
		unit *entity.UnitOfMeasure,
		warehouse *entity.Warehouse,
		movements []*entity.Movement,
	) ([]byte, error)
}

// GetReportData arma los datos del reporte de kardex de un lote.
func (uc *LedgerUseCase) GetReportData(lotID string) (*ReportData, error) {
	lot, err := uc.GetLot(lotID)
	if err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(lot.ProductID)
	if err != nil {
		return nil, err
	}
	unit, err := uc.unitRepo.GetByID(lot.UnitID)
	if err != nil {
		return nil, err
	}
	warehouse, err := uc.warehouseRepo.GetByID(lot.WarehouseID)
	if err != nil {
		return nil, err
	}
	if product == nil || unit == nil || warehouse == nil {
		return nil, domain.ErrNotFound
	}
	movements, err := uc.movementRepo.ListByLot(lotID)
	if err != nil {
		return nil, err
	}
	return &ReportData{
		Lot:       lot,
		Product:   product,
		Unit:      unit,
		Warehouse: warehouse,
		Movements: movements,
	}, nil
}
