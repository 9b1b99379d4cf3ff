package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOperationRequest entrada para crear una operación (estado inicial draft).
// DestinationWarehouseID es obligatorio solo para transfer; SupplierName aplica a
// receipt y CustomerName a delivery.
type CreateOperationRequest struct {
	Type                   string     `json:"type" validate:"required,oneof=receipt delivery transfer adjustment"`
	WarehouseID            string     `json:"warehouse_id" validate:"required"`
	DestinationWarehouseID string     `json:"destination_warehouse_id"`
	SupplierName           string     `json:"supplier_name"`
	CustomerName           string     `json:"customer_name"`
	Notes                  string     `json:"notes"`
	ScheduledDate          *time.Time `json:"scheduled_date"`
}

// AddLineRequest entrada para agregar una línea a una operación en draft.
// Para adjustment, PlannedQuantity es el conteo objetivo (puede ser 0).
type AddLineRequest struct {
	ProductID       string           `json:"product_id" validate:"required"`
	PlannedQuantity decimal.Decimal  `json:"planned_quantity"`
	ActualQuantity  *decimal.Decimal `json:"actual_quantity"`
	UnitPrice       *decimal.Decimal `json:"unit_price"`
}

// UpdateOperationStatusRequest entrada para avanzar/cancelar una operación
// (draft → waiting → ready, o canceled desde cualquier estado no terminal).
type UpdateOperationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=waiting ready canceled"`
}

// OperationLineResponse salida de una línea con metadatos del producto.
type OperationLineResponse struct {
	ID              string           `json:"id"`
	ProductID       string           `json:"product_id"`
	ProductName     string           `json:"product_name,omitempty"`
	ProductSKU      string           `json:"product_sku,omitempty"`
	PlannedQuantity decimal.Decimal  `json:"planned_quantity"`
	ActualQuantity  *decimal.Decimal `json:"actual_quantity,omitempty"`
	UnitPrice       *decimal.Decimal `json:"unit_price,omitempty"`
}

// OperationResponse salida de una operación con sus líneas.
type OperationResponse struct {
	ID                   string                  `json:"id"`
	Type                 string                  `json:"type"`
	Reference            string                  `json:"reference"`
	Status               string                  `json:"status"`
	WarehouseID          string                  `json:"warehouse_id"`
	WarehouseName        string                  `json:"warehouse_name,omitempty"`
	DestinationWarehouse string                  `json:"destination_warehouse_id,omitempty"`
	DestinationName      string                  `json:"destination_warehouse_name,omitempty"`
	SupplierName         string                  `json:"supplier_name,omitempty"`
	CustomerName         string                  `json:"customer_name,omitempty"`
	Notes                string                  `json:"notes,omitempty"`
	ScheduledDate        *time.Time              `json:"scheduled_date,omitempty"`
	CompletedDate        *time.Time              `json:"completed_date,omitempty"`
	Lines                []OperationLineResponse `json:"lines,omitempty"`
	TotalItems           decimal.Decimal         `json:"total_items"`
	CreatedAt            time.Time               `json:"created_at"`
}

// OperationListResponse lista de operaciones (más recientes primero).
type OperationListResponse struct {
	Items []OperationResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// StockMovementResponse salida de una entrada del libro de movimientos.
type StockMovementResponse struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"product_id"`
	WarehouseID      string          `json:"warehouse_id"`
	OperationID      string          `json:"operation_id,omitempty"`
	Type             string          `json:"type"`
	Quantity         decimal.Decimal `json:"quantity"`
	PreviousQuantity decimal.Decimal `json:"previous_quantity"`
	NewQuantity      decimal.Decimal `json:"new_quantity"`
	Reference        string          `json:"reference"`
	Notes            string          `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}
