package usecase

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// CatalogTxRunner ejecuta una función dentro de una transacción con los
// repositorios de catálogo y del libro de stock. Lo usa la creación de producto
// con stock inicial: producto, fila de stock y movimiento inicial confirman juntos.
type CatalogTxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}
