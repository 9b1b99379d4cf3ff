package operations

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad para el procesamiento de operaciones: lectura
// de líneas, read-modify-write de stock, apéndices al libro y cambio de estado
// confirman o se revierten juntos.
//
// La implementación reintenta fn un número acotado de veces ante fallos de
// serialización/deadlock y devuelve domain.ErrTransactionConflict al agotarlos,
// por lo que fn debe ser re-ejecutable (todo su estado vive dentro de la tx).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		opRepo repository.OperationRepository,
		lineRepo repository.OperationLineRepository,
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}
