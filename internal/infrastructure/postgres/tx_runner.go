package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Almacen-api/internal/application/operations"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// Ensure TxRunner implementa los puertos transaccionales de la aplicación.
var _ operations.TxRunner = (*TxRunner)(nil)
var _ usecase.CatalogTxRunner = (*TxRunner)(nil)

// maxTxAttempts intentos por transacción ante fallos de serialización/deadlock.
const maxTxAttempts = 3

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL, con reintento
// acotado cuando la transacción pierde por serialización o deadlock. Agotados
// los intentos devuelve domain.ErrTransactionConflict.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción para el procesamiento de operaciones, ejecuta fn con
// repos atados a la tx y hace Commit o Rollback. fn debe ser re-ejecutable: en un
// reintento la transacción anterior ya fue revertida por completo.
func (r *TxRunner) Run(ctx context.Context, fn func(
	opRepo repository.OperationRepository,
	lineRepo repository.OperationLineRepository,
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	return r.withRetry(ctx, func(ctx context.Context) error {
		tx, err := r.pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer func() { _ = tx.Rollback(ctx) }()

		opRepo := NewOperationRepository(tx)
		lineRepo := NewOperationLineRepository(tx)
		stockRepo := NewStockRepository(tx)
		movRepo := NewStockMovementRepository(tx)

		if err := fn(opRepo, lineRepo, stockRepo, movRepo); err != nil {
			return err
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit transaction: %w", err)
		}
		return nil
	})
}

// RunCatalog inicia una transacción con repos de catálogo y libro de stock
// (para crear producto con stock inicial).
func (r *TxRunner) RunCatalog(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	return r.withRetry(ctx, func(ctx context.Context) error {
		tx, err := r.pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer func() { _ = tx.Rollback(ctx) }()

		productRepo := NewProductRepository(tx)
		stockRepo := NewStockRepository(tx)
		movRepo := NewStockMovementRepository(tx)

		if err := fn(productRepo, stockRepo, movRepo); err != nil {
			return err
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit transaction: %w", err)
		}
		return nil
	})
}

func (r *TxRunner) withRetry(ctx context.Context, attempt func(ctx context.Context) error) error {
	var err error
	for i := 0; i < maxTxAttempts; i++ {
		err = attempt(ctx)
		if err == nil || !isRetryableTxError(err) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrTransactionConflict, err)
}
