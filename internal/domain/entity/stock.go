package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa el stock actual de un producto en una bodega.
// Fila única por (ProductID, WarehouseID); Quantity nunca baja de cero.
// ReservedQuantity rastrea cantidades apartadas para salidas pendientes
// que aún no se descuentan de Quantity.
type Stock struct {
	ProductID        string
	WarehouseID      string
	Quantity         decimal.Decimal
	ReservedQuantity decimal.Decimal
	UpdatedAt        time.Time
}
