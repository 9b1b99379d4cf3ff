package dto

import "github.com/shopspring/decimal"

// DashboardKPIsResponse indicadores del tablero principal.
type DashboardKPIsResponse struct {
	TotalProducts     int `json:"total_products"`
	LowStockItems     int `json:"low_stock_items"`
	OutOfStockItems   int `json:"out_of_stock_items"`
	PendingReceipts   int `json:"pending_receipts"`
	PendingDeliveries int `json:"pending_deliveries"`
	PendingTransfers  int `json:"pending_transfers"`
}

// LowStockProductDTO producto por debajo de su punto de reorden.
type LowStockProductDTO struct {
	ProductID       string          `json:"product_id"`
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	CategoryName    string          `json:"category_name,omitempty"`
	UnitOfMeasure   string          `json:"unit_of_measure"`
	ReorderLevel    decimal.Decimal `json:"reorder_level"`
	ReorderQuantity decimal.Decimal `json:"reorder_quantity"`
	CurrentStock    decimal.Decimal `json:"current_stock"`
}
