package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Si InitialStock > 0 y
// WarehouseID viene, se crea la fila de stock y se registra el movimiento
// inicial en el libro (referencia INITIAL-{SKU}).
type CreateProductRequest struct {
	Name            string           `json:"name" validate:"required,min=1,max=200"`
	SKU             string           `json:"sku" validate:"required,min=1,max=64"`
	CategoryID      string           `json:"category_id" validate:"required"`
	UnitOfMeasure   string           `json:"unit_of_measure" validate:"required"`
	ReorderLevel    *decimal.Decimal `json:"reorder_level"`
	ReorderQuantity *decimal.Decimal `json:"reorder_quantity"`
	InitialStock    *decimal.Decimal `json:"initial_stock"`
	WarehouseID     string           `json:"warehouse_id"`
}

// UpdateProductRequest entrada para actualizar un producto (el SKU no cambia).
type UpdateProductRequest struct {
	Name            *string          `json:"name" validate:"omitempty,min=1,max=200"`
	CategoryID      *string          `json:"category_id"`
	UnitOfMeasure   *string          `json:"unit_of_measure"`
	ReorderLevel    *decimal.Decimal `json:"reorder_level"`
	ReorderQuantity *decimal.Decimal `json:"reorder_quantity"`
}

// WarehouseStockDTO stock de un producto en una bodega concreta.
type WarehouseStockDTO struct {
	WarehouseID      string          `json:"warehouse_id"`
	Quantity         decimal.Decimal `json:"quantity"`
	ReservedQuantity decimal.Decimal `json:"reserved_quantity"`
}

// ProductResponse salida de un producto con su stock agregado.
// AvailableStock = TotalStock - reservas pendientes.
type ProductResponse struct {
	ID               string              `json:"id"`
	SKU              string              `json:"sku"`
	Name             string              `json:"name"`
	CategoryID       string              `json:"category_id"`
	CategoryName     string              `json:"category_name,omitempty"`
	UnitOfMeasure    string              `json:"unit_of_measure"`
	ReorderLevel     *decimal.Decimal    `json:"reorder_level,omitempty"`
	ReorderQuantity  *decimal.Decimal    `json:"reorder_quantity,omitempty"`
	IsActive         bool                `json:"is_active"`
	TotalStock       decimal.Decimal     `json:"total_stock"`
	AvailableStock   decimal.Decimal     `json:"available_stock"`
	IsLowStock       bool                `json:"is_low_stock"`
	StockByWarehouse []WarehouseStockDTO `json:"stock_by_warehouse,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
