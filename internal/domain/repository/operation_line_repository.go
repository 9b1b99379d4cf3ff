package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// OperationLineRepository define el puerto de persistencia para las líneas de una operación.
type OperationLineRepository interface {
	Create(line *entity.OperationLine) error
	ListByOperation(operationID string) ([]*entity.OperationLine, error)
}
