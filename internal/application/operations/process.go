package operations

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// deltaResult foto antes/después de un cambio sobre una fila de stock.
// applied es el cambio realmente aplicado con signo, ya recortado por el piso
// de cero, por lo que previous + applied == newQty siempre.
type deltaResult struct {
	previous decimal.Decimal
	applied  decimal.Decimal
	newQty   decimal.Decimal
}

// Process procesa una operación: valida, aplica los deltas de cada línea al
// stock, registra los movimientos en el libro y deja la operación en done.
// Todo ocurre dentro de UNA transacción; la fila de la operación se bloquea al
// inicio (SELECT FOR UPDATE) para que de dos Process concurrentes sobre la misma
// operación solo el primero llegue a done y el segundo reciba ErrAlreadyProcessed.
func (uc *OperationUseCase) Process(ctx context.Context, operationID, userID string) (string, error) {
	if userID == "" {
		return "", domain.ErrUnauthorized
	}
	err := uc.txRunner.Run(ctx, func(
		opRepo repository.OperationRepository,
		lineRepo repository.OperationLineRepository,
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
	) error {
		op, err := opRepo.GetByIDForUpdate(operationID)
		if err != nil {
			return err
		}
		if op == nil {
			return domain.ErrNotFound
		}
		if op.Status == entity.OperationStatusDone {
			return domain.ErrAlreadyProcessed
		}
		if op.Status == entity.OperationStatusCanceled {
			return domain.ErrOperationCanceled
		}

		lines, err := lineRepo.ListByOperation(operationID)
		if err != nil {
			return err
		}

		now := time.Now()
		for _, line := range lines {
			qty := line.EffectiveQuantity()
			switch op.Type {
			case entity.OperationTypeReceipt:
				res, err := applyDelta(stockRepo, line.ProductID, op.WarehouseID, qty, now)
				if err != nil {
					return err
				}
				if err := logMovement(movRepo, op, line.ProductID, op.WarehouseID, entity.MovementTypeIn, res, userID, now); err != nil {
					return err
				}
			case entity.OperationTypeDelivery:
				res, err := applyDelta(stockRepo, line.ProductID, op.WarehouseID, qty.Neg(), now)
				if err != nil {
					return err
				}
				if err := logMovement(movRepo, op, line.ProductID, op.WarehouseID, entity.MovementTypeOut, res, userID, now); err != nil {
					return err
				}
			case entity.OperationTypeTransfer:
				if op.DestinationWarehouseID == "" {
					return domain.ErrInvalidInput
				}
				out, err := applyDelta(stockRepo, line.ProductID, op.WarehouseID, qty.Neg(), now)
				if err != nil {
					return err
				}
				if err := logMovement(movRepo, op, line.ProductID, op.WarehouseID, entity.MovementTypeOut, out, userID, now); err != nil {
					return err
				}
				in, err := applyDelta(stockRepo, line.ProductID, op.DestinationWarehouseID, qty, now)
				if err != nil {
					return err
				}
				if err := logMovement(movRepo, op, line.ProductID, op.DestinationWarehouseID, entity.MovementTypeIn, in, userID, now); err != nil {
					return err
				}
			case entity.OperationTypeAdjustment:
				// La cantidad efectiva es el conteo OBJETIVO: se fija el stock a ese
				// valor y el libro registra la diferencia con signo.
				res, err := setLevel(stockRepo, line.ProductID, op.WarehouseID, qty, now)
				if err != nil {
					return err
				}
				if err := logMovement(movRepo, op, line.ProductID, op.WarehouseID, entity.MovementTypeAdjustment, res, userID, now); err != nil {
					return err
				}
			default:
				return domain.ErrInvalidInput
			}
		}

		completed := now
		return opRepo.UpdateStatus(operationID, entity.OperationStatusDone, &completed)
	})
	if err != nil {
		return "", err
	}
	return operationID, nil
}

// applyDelta aplica un cambio con signo al stock de (producto, bodega) con piso
// en cero: la cantidad nunca queda negativa, un decremento mayor al disponible se
// recorta. La fila se crea perezosamente en el primer movimiento positivo; un
// delta ≤ 0 sobre una fila inexistente es un no-op con cantidad resultante 0.
func applyDelta(stockRepo repository.StockRepository, productID, warehouseID string, delta decimal.Decimal, now time.Time) (deltaResult, error) {
	stock, err := stockRepo.GetForUpdate(productID, warehouseID)
	if err != nil {
		return deltaResult{}, err
	}
	previous := stock.Quantity
	newQty := decimal.Max(decimal.Zero, previous.Add(delta))

	// previous y newQty en cero cubre la fila inexistente (no se crea) y la fila
	// ya en cero a la que no le cambia nada.
	if !(previous.IsZero() && newQty.IsZero()) {
		stock.Quantity = newQty
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(stock); err != nil {
			return deltaResult{}, err
		}
	}
	return deltaResult{previous: previous, applied: newQty.Sub(previous), newQty: newQty}, nil
}

// setLevel fija el stock de (producto, bodega) a un conteo objetivo (ajuste a
// inventario físico) y devuelve la diferencia aplicada.
func setLevel(stockRepo repository.StockRepository, productID, warehouseID string, target decimal.Decimal, now time.Time) (deltaResult, error) {
	if target.LessThan(decimal.Zero) {
		return deltaResult{}, domain.ErrInvalidInput
	}
	stock, err := stockRepo.GetForUpdate(productID, warehouseID)
	if err != nil {
		return deltaResult{}, err
	}
	previous := stock.Quantity
	if !(previous.IsZero() && target.IsZero()) {
		stock.Quantity = target
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(stock); err != nil {
			return deltaResult{}, err
		}
	}
	return deltaResult{previous: previous, applied: target.Sub(previous), newQty: target}, nil
}

// logMovement agrega una entrada inmutable al libro con la foto antes/después
// que devolvió applyDelta/setLevel; no se relee el stock, así el libro siempre
// reconcilia: previous_quantity + quantity == new_quantity.
func logMovement(movRepo repository.StockMovementRepository, op *entity.Operation, productID, warehouseID, movType string, res deltaResult, userID string, now time.Time) error {
	return movRepo.Create(&entity.StockMovement{
		ID:               uuid.New().String(),
		ProductID:        productID,
		WarehouseID:      warehouseID,
		OperationID:      op.ID,
		Type:             movType,
		Quantity:         res.applied,
		PreviousQuantity: res.previous,
		NewQuantity:      res.newQty,
		Reference:        op.Reference,
		CreatedBy:        userID,
		CreatedAt:        now,
	})
}
