package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas). Todos son resultados
// esperados que el caller debe poder distinguir; solo los fallos de I/O de la
// capa de almacenamiento se propagan como errores genéricos envueltos.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto de concurrencia, reintentar")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// FieldError señala una regla violada atribuible a un campo de entrada,
// para que la capa de presentación pueda asociar el mensaje al input correcto.
type FieldError struct {
	Field  string
	Reason string
}

// ValidationError agrupa los fallos de validación por campo. Cumple errors.Is
// contra ErrInvalidInput para que los handlers mapeen con un solo sentinel.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError construye un ValidationError con un único campo fallido.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Reason: reason}}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrInvalidInput.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return fmt.Sprintf("%s (%s)", ErrInvalidInput.Error(), strings.Join(parts, "; "))
}

// Is permite errors.Is(err, domain.ErrInvalidInput) sobre un ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
