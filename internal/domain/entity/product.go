package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo.
// El stock se maneja por bodega en Stock; el producto solo define el punto de reorden.
type Product struct {
	ID              string
	SKU             string // código único
	Name            string
	CategoryID      string
	UnitOfMeasure   string
	ReorderLevel    *decimal.Decimal // nil = sin punto de reorden
	ReorderQuantity *decimal.Decimal // cantidad sugerida de pedido
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
