package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro de stock.
const (
	MovementTypeIn         = "in"         // entrada
	MovementTypeOut        = "out"        // salida
	MovementTypeAdjustment = "adjustment" // ajuste a conteo físico
)

// StockMovement es una entrada inmutable del libro de movimientos (append-only).
// Quantity es el cambio APLICADO con signo (negativo para salidas); Previous/New
// son la foto del stock antes y después, de modo que Previous+Quantity == New.
type StockMovement struct {
	ID               string
	ProductID        string
	WarehouseID      string
	OperationID      string // vacío si el movimiento no proviene de una operación
	Type             string // in, out, adjustment
	Quantity         decimal.Decimal
	PreviousQuantity decimal.Decimal
	NewQuantity      decimal.Decimal
	Reference        string
	Notes            string
	CreatedBy        string // UserID
	CreatedAt        time.Time
}
