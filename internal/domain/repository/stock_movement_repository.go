package repository

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia del libro de movimientos.
// El libro es append-only: no existe Update ni Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByOperation(operationID string) ([]*entity.StockMovement, error)
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	ListByWarehouse(warehouseID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
}
