package operations

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/operation"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// OperationUseCase gestiona el ciclo de vida de las operaciones de stock
// (receipt, delivery, transfer, adjustment): creación en draft, líneas,
// avance de estado y procesamiento transaccional contra el libro de stock.
type OperationUseCase struct {
	txRunner      TxRunner
	opRepo        repository.OperationRepository
	lineRepo      repository.OperationLineRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewOperationUseCase construye el caso de uso.
func NewOperationUseCase(
	txRunner TxRunner,
	opRepo repository.OperationRepository,
	lineRepo repository.OperationLineRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *OperationUseCase {
	return &OperationUseCase{
		txRunner:      txRunner,
		opRepo:        opRepo,
		lineRepo:      lineRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// Create crea una operación en estado draft con su referencia generada.
// Para transfer la bodega destino es obligatoria y distinta de la de origen.
func (uc *OperationUseCase) Create(ctx context.Context, userID string, in dto.CreateOperationRequest) (*dto.OperationResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if !entity.IsValidOperationType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	wh, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}
	if in.Type == entity.OperationTypeTransfer {
		if in.DestinationWarehouseID == "" || in.DestinationWarehouseID == in.WarehouseID {
			return nil, domain.ErrInvalidInput
		}
		dest, err := uc.warehouseRepo.GetByID(in.DestinationWarehouseID)
		if err != nil {
			return nil, err
		}
		if dest == nil {
			return nil, domain.ErrNotFound
		}
	} else if in.DestinationWarehouseID != "" {
		// La bodega destino solo tiene sentido en transfer.
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	op := &entity.Operation{
		ID:                     uuid.New().String(),
		Type:                   in.Type,
		Reference:              operation.NewReference(in.Type, now),
		Status:                 entity.OperationStatusDraft,
		WarehouseID:            in.WarehouseID,
		DestinationWarehouseID: in.DestinationWarehouseID,
		SupplierName:           in.SupplierName,
		CustomerName:           in.CustomerName,
		Notes:                  in.Notes,
		ScheduledDate:          in.ScheduledDate,
		CreatedBy:              userID,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if err := uc.opRepo.Create(op); err != nil {
		return nil, err
	}
	return uc.toResponse(op, nil), nil
}

// AddLine agrega una línea a una operación en draft. Las operaciones ya en
// curso o terminales no admiten líneas nuevas.
func (uc *OperationUseCase) AddLine(ctx context.Context, userID, operationID string, in dto.AddLineRequest) (*dto.OperationLineResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	op, err := uc.opRepo.GetByID(operationID)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, domain.ErrNotFound
	}
	if op.Status != entity.OperationStatusDraft {
		return nil, domain.ErrConflict
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	// En adjustment la cantidad es un conteo objetivo (0 es válido);
	// en el resto debe ser positiva.
	if op.Type == entity.OperationTypeAdjustment {
		if in.PlannedQuantity.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	} else if !in.PlannedQuantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.ActualQuantity != nil && in.ActualQuantity.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	line := &entity.OperationLine{
		ID:              uuid.New().String(),
		OperationID:     op.ID,
		ProductID:       in.ProductID,
		PlannedQuantity: in.PlannedQuantity,
		ActualQuantity:  in.ActualQuantity,
		UnitPrice:       in.UnitPrice,
		CreatedAt:       time.Now(),
	}
	if err := uc.lineRepo.Create(line); err != nil {
		return nil, err
	}
	return &dto.OperationLineResponse{
		ID:              line.ID,
		ProductID:       line.ProductID,
		ProductName:     product.Name,
		ProductSKU:      product.SKU,
		PlannedQuantity: line.PlannedQuantity,
		ActualQuantity:  line.ActualQuantity,
		UnitPrice:       line.UnitPrice,
	}, nil
}

// UpdateStatus avanza o cancela una operación (draft → waiting → ready, o
// canceled desde cualquier estado no terminal). done solo se alcanza con Process;
// los estados terminales no admiten cambios, incluida la cancelación de una done.
func (uc *OperationUseCase) UpdateStatus(ctx context.Context, operationID, newStatus string) error {
	op, err := uc.opRepo.GetByID(operationID)
	if err != nil {
		return err
	}
	if op == nil {
		return domain.ErrNotFound
	}
	if !operation.CanTransition(op.Status, newStatus) {
		return domain.ErrConflict
	}
	return uc.opRepo.UpdateStatus(operationID, newStatus, nil)
}

// GetByID devuelve una operación con sus líneas y nombres de bodega/producto.
func (uc *OperationUseCase) GetByID(ctx context.Context, operationID string) (*dto.OperationResponse, error) {
	op, err := uc.opRepo.GetByID(operationID)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.lineRepo.ListByOperation(op.ID)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(op, lines), nil
}

// List lista operaciones con filtros opcionales, más recientes primero.
func (uc *OperationUseCase) List(ctx context.Context, filter repository.OperationFilter, limit, offset int) (*dto.OperationListResponse, error) {
	ops, err := uc.opRepo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OperationResponse, 0, len(ops))
	for _, op := range ops {
		lines, err := uc.lineRepo.ListByOperation(op.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, *uc.toResponse(op, lines))
	}
	return &dto.OperationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *OperationUseCase) toResponse(op *entity.Operation, lines []*entity.OperationLine) *dto.OperationResponse {
	resp := &dto.OperationResponse{
		ID:                   op.ID,
		Type:                 op.Type,
		Reference:            op.Reference,
		Status:               op.Status,
		WarehouseID:          op.WarehouseID,
		DestinationWarehouse: op.DestinationWarehouseID,
		SupplierName:         op.SupplierName,
		CustomerName:         op.CustomerName,
		Notes:                op.Notes,
		ScheduledDate:        op.ScheduledDate,
		CompletedDate:        op.CompletedDate,
		TotalItems:           decimal.Zero,
		CreatedAt:            op.CreatedAt,
	}
	if wh, err := uc.warehouseRepo.GetByID(op.WarehouseID); err == nil && wh != nil {
		resp.WarehouseName = wh.Name
	}
	if op.DestinationWarehouseID != "" {
		if wh, err := uc.warehouseRepo.GetByID(op.DestinationWarehouseID); err == nil && wh != nil {
			resp.DestinationName = wh.Name
		}
	}
	for _, line := range lines {
		lr := dto.OperationLineResponse{
			ID:              line.ID,
			ProductID:       line.ProductID,
			PlannedQuantity: line.PlannedQuantity,
			ActualQuantity:  line.ActualQuantity,
			UnitPrice:       line.UnitPrice,
		}
		if p, err := uc.productRepo.GetByID(line.ProductID); err == nil && p != nil {
			lr.ProductName = p.Name
			lr.ProductSKU = p.SKU
		}
		resp.Lines = append(resp.Lines, lr)
		resp.TotalItems = resp.TotalItems.Add(line.PlannedQuantity)
	}
	return resp
}
