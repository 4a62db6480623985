package entity

import "time"

// Product entrada del catálogo de productos, de solo lectura para el motor de
// kardex. Perishable gobierna la regla de vencimiento en la creación de lotes.
type Product struct {
	ID         string
	Name       string
	Category   string
	Perishable bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
