package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// StockUseCase consultas de solo lectura sobre el stock y el libro de
// movimientos. No muta estado; los repos van ligados al pool, no a una tx.
type StockUseCase struct {
	stockRepo   repository.StockRepository
	movRepo     repository.StockMovementRepository
	productRepo repository.ProductRepository
	opRepo      repository.OperationRepository
}

// NewStockUseCase construye el caso de uso de consultas de stock.
func NewStockUseCase(
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	opRepo repository.OperationRepository,
) *StockUseCase {
	return &StockUseCase{stockRepo: stockRepo, movRepo: movRepo, productRepo: productRepo, opRepo: opRepo}
}

// GetByProduct devuelve el stock de un producto desglosado por bodega.
func (uc *StockUseCase) GetByProduct(ctx context.Context, productID string) ([]dto.WarehouseStockDTO, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	stocks, err := uc.stockRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WarehouseStockDTO, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, dto.WarehouseStockDTO{
			WarehouseID:      s.WarehouseID,
			Quantity:         s.Quantity,
			ReservedQuantity: s.ReservedQuantity,
		})
	}
	return out, nil
}

// ListMovementsByProduct lista el libro de movimientos de un producto,
// del más reciente al más antiguo, con rango de fechas opcional.
func (uc *StockUseCase) ListMovementsByProduct(ctx context.Context, productID string, from, to *time.Time, limit, offset int) ([]dto.StockMovementResponse, error) {
	movements, err := uc.movRepo.ListByProduct(productID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(movements), nil
}

// ListMovementsByWarehouse lista el libro de movimientos de una bodega.
func (uc *StockUseCase) ListMovementsByWarehouse(ctx context.Context, warehouseID string, from, to *time.Time, limit, offset int) ([]dto.StockMovementResponse, error) {
	movements, err := uc.movRepo.ListByWarehouse(warehouseID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(movements), nil
}

// ListMovementsByOperation lista los movimientos que generó una operación
// en orden de aplicación.
func (uc *StockUseCase) ListMovementsByOperation(ctx context.Context, operationID string) ([]dto.StockMovementResponse, error) {
	op, err := uc.opRepo.GetByID(operationID)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, domain.ErrNotFound
	}
	movements, err := uc.movRepo.ListByOperation(operationID)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(movements), nil
}

func toMovementResponses(movements []*entity.StockMovement) []dto.StockMovementResponse {
	out := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.StockMovementResponse{
			ID:               m.ID,
			ProductID:        m.ProductID,
			WarehouseID:      m.WarehouseID,
			OperationID:      m.OperationID,
			Type:             m.Type,
			Quantity:         m.Quantity,
			PreviousQuantity: m.PreviousQuantity,
			NewQuantity:      m.NewQuantity,
			Reference:        m.Reference,
			Notes:            m.Notes,
			CreatedAt:        m.CreatedAt,
		})
	}
	return out
}
