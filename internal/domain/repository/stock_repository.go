package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar stock por producto+bodega.
// Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	Get(productID, warehouseID string) (*entity.Stock, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(productID, warehouseID string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	ListByProduct(productID string) ([]*entity.Stock, error)
	ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Stock, error)
}
