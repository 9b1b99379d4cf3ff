package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario (multi-bodega).
// Code es único en todo el sistema.
type Warehouse struct {
	ID        string
	Name      string
	Code      string
	Address   string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
