package dto

// PageRequest paginación para listados. El tamaño de página lo decide el
// caller; fuera de rango se responde página vacía, nunca error.
type PageRequest struct {
	Page int `query:"page" validate:"min=1"`
	Size int `query:"size" validate:"min=1,max=100"`
}

// DefaultPage aplica valores por defecto si Page/Size vienen en cero.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Size <= 0 {
		p.Size = 20
	}
	if p.Size > 100 {
		p.Size = 100
	}
}

// FieldErrorDTO fallo de validación atribuible a un campo del request.
type FieldErrorDTO struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ErrorResponse cuerpo de error HTTP. Fields solo viene en errores de validación.
type ErrorResponse struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Fields  []FieldErrorDTO `json:"fields,omitempty"`
}
