package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// DashboardKPIs indicadores agregados del tablero principal.
type DashboardKPIs struct {
	TotalProducts     int // productos activos con stock > 0
	LowStockItems     int // con stock > 0 pero <= punto de reorden
	OutOfStockItems   int // productos activos sin stock
	PendingReceipts   int
	PendingDeliveries int
	PendingTransfers  int
}

// LowStockResult un producto por debajo de su punto de reorden.
type LowStockResult struct {
	ProductID       string
	SKU             string
	ProductName     string
	CategoryName    string
	UnitOfMeasure   string
	ReorderLevel    decimal.Decimal
	ReorderQuantity decimal.Decimal
	CurrentStock    decimal.Decimal
}

// DashboardRepository consultas de solo lectura para el tablero (no muta estado;
// lee directamente las tablas del libro y del registro de operaciones).
type DashboardRepository interface {
	GetKPIs(ctx context.Context) (*DashboardKPIs, error)
	GetLowStock(ctx context.Context) ([]LowStockResult, error)
}
