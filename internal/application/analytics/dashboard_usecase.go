// Package analytics contiene los casos de uso de solo lectura del tablero:
// KPIs de inventario y lista de productos por debajo del punto de reorden.
package analytics

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// DashboardUseCase arma los indicadores del tablero principal.
// No muta estado: delega todo en DashboardRepository (consultas read-only
// sobre las tablas del libro y del registro de operaciones).
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{dashboardRepo: dashboardRepo}
}

// GetKPIs devuelve los contadores del tablero: productos con stock, bajo punto
// de reorden, agotados y operaciones pendientes por tipo (ni done ni canceled).
func (uc *DashboardUseCase) GetKPIs(ctx context.Context) (*dto.DashboardKPIsResponse, error) {
	kpis, err := uc.dashboardRepo.GetKPIs(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardKPIsResponse{
		TotalProducts:     kpis.TotalProducts,
		LowStockItems:     kpis.LowStockItems,
		OutOfStockItems:   kpis.OutOfStockItems,
		PendingReceipts:   kpis.PendingReceipts,
		PendingDeliveries: kpis.PendingDeliveries,
		PendingTransfers:  kpis.PendingTransfers,
	}, nil
}

// GetLowStock devuelve los productos activos con punto de reorden definido
// cuyo stock total está en o por debajo de ese punto.
func (uc *DashboardUseCase) GetLowStock(ctx context.Context) ([]dto.LowStockProductDTO, error) {
	rows, err := uc.dashboardRepo.GetLowStock(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]dto.LowStockProductDTO, 0, len(rows))
	for _, r := range rows {
		list = append(list, dto.LowStockProductDTO{
			ProductID:       r.ProductID,
			SKU:             r.SKU,
			Name:            r.ProductName,
			CategoryName:    r.CategoryName,
			UnitOfMeasure:   r.UnitOfMeasure,
			ReorderLevel:    r.ReorderLevel,
			ReorderQuantity: r.ReorderQuantity,
			CurrentStock:    r.CurrentStock,
		})
	}
	return list, nil
}
