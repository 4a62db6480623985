package entity

// UnitOfMeasure unidad de medida del catálogo (solo lectura para el kardex).
type UnitOfMeasure struct {
	ID           string
	Name         string
	Abbreviation string
}
