package entity

import "time"

// Warehouse representa una bodega donde se almacenan lotes. Para el motor de
// kardex es solo una identidad: no impone estructura interna.
type Warehouse struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
