package entity

import "time"

// Tipos de operación de stock.
const (
	OperationTypeReceipt    = "receipt"    // recepción de proveedor
	OperationTypeDelivery   = "delivery"   // entrega a cliente
	OperationTypeTransfer   = "transfer"   // traslado entre bodegas
	OperationTypeAdjustment = "adjustment" // ajuste a conteo físico
)

// Estados del ciclo de vida de una operación.
// done y canceled son terminales: no admiten más cambios de líneas ni de estado.
const (
	OperationStatusDraft    = "draft"
	OperationStatusWaiting  = "waiting"
	OperationStatusReady    = "ready"
	OperationStatusDone     = "done"
	OperationStatusCanceled = "canceled"
)

// Operation representa un movimiento planificado de stock compuesto por líneas.
// DestinationWarehouseID solo aplica a transfer; SupplierName a receipt y
// CustomerName a delivery.
type Operation struct {
	ID                     string
	Type                   string
	Reference              string
	Status                 string
	WarehouseID            string
	DestinationWarehouseID string
	SupplierName           string
	CustomerName           string
	Notes                  string
	ScheduledDate          *time.Time
	CompletedDate          *time.Time
	CreatedBy              string // UserID
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// IsValidOperationType indica si el tipo de operación es uno de los soportados.
func IsValidOperationType(t string) bool {
	switch t {
	case OperationTypeReceipt, OperationTypeDelivery, OperationTypeTransfer, OperationTypeAdjustment:
		return true
	}
	return false
}

// IsTerminalStatus indica si un estado es terminal (done o canceled).
func IsTerminalStatus(s string) bool {
	return s == OperationStatusDone || s == OperationStatusCanceled
}
