package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastro/kardex-api/internal/domain/entity"
)

// Formato de fechas calendario en el contrato HTTP.
const DateLayout = "2006-01-02"

// CreateLotRequest body para POST /api/kardex/lots.
type CreateLotRequest struct {
	ProductID      string          `json:"product_id"`
	UnitID         string          `json:"unit_id"`
	WarehouseID    string          `json:"warehouse_id"`
	Description    string          `json:"description,omitempty"`
	InitialStock   decimal.Decimal `json:"initial_stock"`
	IngressDate    string          `json:"ingress_date"`              // YYYY-MM-DD
	ExpirationDate *string         `json:"expiration_date,omitempty"` // YYYY-MM-DD
}

// RegisterMovementRequest body para POST /api/kardex/movements.
type RegisterMovementRequest struct {
	LotID    string          `json:"lot_id"`
	Kind     string          `json:"kind"` // inflow | outflow
	Quantity decimal.Decimal `json:"quantity"`
	Code     string          `json:"code"`
	Gloss    string          `json:"gloss,omitempty"`
}

// LotResponse representación HTTP de un lote.
type LotResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	UnitID         string          `json:"unit_id"`
	WarehouseID    string          `json:"warehouse_id"`
	Code           string          `json:"code"`
	Description    string          `json:"description,omitempty"`
	IngressDate    string          `json:"ingress_date"`
	ExpirationDate *string         `json:"expiration_date,omitempty"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
}

// MovementResponse representación HTTP de un movimiento del kardex.
type MovementResponse struct {
	ID             string          `json:"id"`
	LotID          string          `json:"lot_id"`
	Code           string          `json:"code"`
	Kind           string          `json:"kind"`
	QuantityBefore decimal.Decimal `json:"quantity_before"`
	QuantityDelta  decimal.Decimal `json:"quantity_delta"`
	QuantityAfter  decimal.Decimal `json:"quantity_after"`
	Gloss          string          `json:"gloss,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// LedgerEntryResponse movimiento anotado para el log de actividad por bodega.
type LedgerEntryResponse struct {
	MovementResponse
	ProductName string `json:"product_name"`
	LotCode     string `json:"lot_code"`
}

// FacetsResponse facetas derivadas para filtros dependientes.
type FacetsResponse struct {
	Products []string `json:"products"`
	LotCodes []string `json:"lot_codes"`
}

// WarehouseLedgerResponse página del log de actividad más sus facetas.
type WarehouseLedgerResponse struct {
	Entries []LedgerEntryResponse `json:"entries"`
	Facets  FacetsResponse        `json:"facets"`
	Page    int                   `json:"page"`
	Size    int                   `json:"size"`
	Total   int                   `json:"total"`
}

// FromLot convierte la entidad al DTO de respuesta.
func FromLot(l *entity.Lot) LotResponse {
	var exp *string
	if l.ExpirationDate != nil {
		s := l.ExpirationDate.Format(DateLayout)
		exp = &s
	}
	return LotResponse{
		ID:             l.ID,
		ProductID:      l.ProductID,
		UnitID:         l.UnitID,
		WarehouseID:    l.WarehouseID,
		Code:           l.Code,
		Description:    l.Description,
		IngressDate:    l.IngressDate.Format(DateLayout),
		ExpirationDate: exp,
		CurrentBalance: l.CurrentBalance,
		Status:         l.Status,
		CreatedAt:      l.CreatedAt,
	}
}

// FromMovement convierte la entidad al DTO de respuesta.
func FromMovement(m *entity.Movement) MovementResponse {
	return MovementResponse{
		ID:             m.ID,
		LotID:          m.LotID,
		Code:           m.Code,
		Kind:           m.Kind,
		QuantityBefore: m.QuantityBefore,
		QuantityDelta:  m.QuantityDelta,
		QuantityAfter:  m.QuantityAfter,
		Gloss:          m.Gloss,
		CreatedAt:      m.CreatedAt,
	}
}

// FromLedgerEntry convierte la entrada anotada al DTO de respuesta.
func FromLedgerEntry(e *entity.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		MovementResponse: FromMovement(&e.Movement),
		ProductName:      e.ProductName,
		LotCode:          e.LotCode,
	}
}
