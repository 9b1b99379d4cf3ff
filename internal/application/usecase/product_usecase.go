package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ProductUseCase casos de uso de catálogo para productos, incluida la creación
// con stock inicial (que pasa por el libro de movimientos).
type ProductUseCase struct {
	txRunner      CatalogTxRunner
	productRepo   repository.ProductRepository
	categoryRepo  repository.CategoryRepository
	warehouseRepo repository.WarehouseRepository
	stockRepo     repository.StockRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	txRunner CatalogTxRunner,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	warehouseRepo repository.WarehouseRepository,
	stockRepo repository.StockRepository,
) *ProductUseCase {
	return &ProductUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		warehouseRepo: warehouseRepo,
		stockRepo:     stockRepo,
	}
}

// Create crea un producto. El SKU es único (ErrDuplicate si colisiona). Si viene
// stock inicial con bodega, la fila de stock y el movimiento inicial del libro
// se insertan en la misma transacción que el producto.
func (uc *ProductUseCase) Create(ctx context.Context, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}

	withInitialStock := in.InitialStock != nil && in.InitialStock.GreaterThan(decimal.Zero) && in.WarehouseID != ""
	if withInitialStock {
		wh, err := uc.warehouseRepo.GetByID(in.WarehouseID)
		if err != nil {
			return nil, err
		}
		if wh == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	product := &entity.Product{
		ID:              uuid.New().String(),
		SKU:             in.SKU,
		Name:            in.Name,
		CategoryID:      in.CategoryID,
		UnitOfMeasure:   in.UnitOfMeasure,
		ReorderLevel:    in.ReorderLevel,
		ReorderQuantity: in.ReorderQuantity,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = uc.txRunner.RunCatalog(ctx, func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		if !withInitialStock {
			return nil
		}
		if err := stockRepo.Upsert(&entity.Stock{
			ProductID:        product.ID,
			WarehouseID:      in.WarehouseID,
			Quantity:         *in.InitialStock,
			ReservedQuantity: decimal.Zero,
			UpdatedAt:        now,
		}); err != nil {
			return err
		}
		return movRepo.Create(&entity.StockMovement{
			ID:               uuid.New().String(),
			ProductID:        product.ID,
			WarehouseID:      in.WarehouseID,
			Type:             entity.MovementTypeIn,
			Quantity:         *in.InitialStock,
			PreviousQuantity: decimal.Zero,
			NewQuantity:      *in.InitialStock,
			Reference:        fmt.Sprintf("INITIAL-%s", in.SKU),
			Notes:            "Stock inicial",
			CreatedBy:        userID,
			CreatedAt:        now,
		})
	})
	if err != nil {
		return nil, err
	}
	resp := uc.toResponse(product, category.Name, nil)
	return resp, nil
}

// Update actualiza los campos editables de un producto (el SKU no cambia).
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = *in.CategoryID
	}
	if in.UnitOfMeasure != nil {
		product.UnitOfMeasure = *in.UnitOfMeasure
	}
	if in.ReorderLevel != nil {
		product.ReorderLevel = in.ReorderLevel
	}
	if in.ReorderQuantity != nil {
		product.ReorderQuantity = in.ReorderQuantity
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// GetByID devuelve un producto con su stock agregado por bodega.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	categoryName := ""
	if c, err := uc.categoryRepo.GetByID(product.CategoryID); err == nil && c != nil {
		categoryName = c.Name
	}
	stocks, err := uc.stockRepo.ListByProduct(product.ID)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(product, categoryName, stocks), nil
}

// List lista productos activos con su stock agregado; categoryID vacío = todos.
func (uc *ProductUseCase) List(ctx context.Context, categoryID string, limit, offset int) (*dto.ProductListResponse, error) {
	products, err := uc.productRepo.List(categoryID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		categoryName := ""
		if c, err := uc.categoryRepo.GetByID(p.CategoryID); err == nil && c != nil {
			categoryName = c.Name
		}
		stocks, err := uc.stockRepo.ListByProduct(p.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, *uc.toResponse(p, categoryName, stocks))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *ProductUseCase) toResponse(p *entity.Product, categoryName string, stocks []*entity.Stock) *dto.ProductResponse {
	resp := &dto.ProductResponse{
		ID:              p.ID,
		SKU:             p.SKU,
		Name:            p.Name,
		CategoryID:      p.CategoryID,
		CategoryName:    categoryName,
		UnitOfMeasure:   p.UnitOfMeasure,
		ReorderLevel:    p.ReorderLevel,
		ReorderQuantity: p.ReorderQuantity,
		IsActive:        p.IsActive,
		TotalStock:      decimal.Zero,
		AvailableStock:  decimal.Zero,
		CreatedAt:       p.CreatedAt,
	}
	totalReserved := decimal.Zero
	for _, s := range stocks {
		resp.TotalStock = resp.TotalStock.Add(s.Quantity)
		totalReserved = totalReserved.Add(s.ReservedQuantity)
		resp.StockByWarehouse = append(resp.StockByWarehouse, dto.WarehouseStockDTO{
			WarehouseID:      s.WarehouseID,
			Quantity:         s.Quantity,
			ReservedQuantity: s.ReservedQuantity,
		})
	}
	resp.AvailableStock = resp.TotalStock.Sub(totalReserved)
	if p.ReorderLevel != nil {
		resp.IsLowStock = resp.TotalStock.LessThanOrEqual(*p.ReorderLevel)
	}
	return resp
}
