// Package kardex contiene las reglas de dominio puras del kardex de lotes,
// separadas del almacenamiento para poder testearlas de forma aislada.
package kardex

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastro/kardex-api/internal/domain"
	"github.com/jcastro/kardex-api/internal/domain/entity"
)

// CreationInput datos mínimos para validar la creación de un lote.
type CreationInput struct {
	Product        *entity.Product
	InitialStock   decimal.Decimal
	IngressDate    time.Time
	ExpirationDate *time.Time
}

// ValidateCreation aplica las invariantes de creación de un lote, en orden y
// con corte en el primer fallo:
//
//  1. stock inicial >= 0
//  2. producto perecible => fecha de vencimiento presente
//  3. fecha de vencimiento presente => vencimiento >= fecha de ingreso
//
// Devuelve nil si todo pasa, o un *domain.ValidationError con el campo fallido.
func ValidateCreation(in CreationInput) *domain.ValidationError {
	if in.InitialStock.IsNegative() {
		return domain.NewValidationError("initial_stock", "el stock inicial no puede ser negativo")
	}
	if in.Product != nil && in.Product.Perishable && in.ExpirationDate == nil {
		return domain.NewValidationError("expiration_date", "producto perecible requiere fecha de vencimiento")
	}
	if in.ExpirationDate != nil && in.ExpirationDate.Before(in.IngressDate) {
		return domain.NewValidationError("expiration_date", "la fecha de vencimiento no puede ser anterior a la fecha de ingreso")
	}
	return nil
}

// ValidateMovement aplica las invariantes de registro de un movimiento que no
// dependen del saldo actual: clase conocida, delta estrictamente positivo y
// código de clasificación presente.
func ValidateMovement(kind string, delta decimal.Decimal, code string) *domain.ValidationError {
	if kind != entity.MovementKindInflow && kind != entity.MovementKindOutflow {
		return domain.NewValidationError("kind", "debe ser inflow u outflow")
	}
	if !delta.IsPositive() {
		return domain.NewValidationError("quantity", "la cantidad debe ser mayor que cero")
	}
	if code == "" {
		return domain.NewValidationError("code", "código de movimiento requerido")
	}
	return nil
}
