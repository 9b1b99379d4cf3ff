package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas de solo lectura para el tablero.
// Lee directamente las tablas; no participa en transacciones.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador de consultas del tablero.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// GetKPIs calcula los indicadores del tablero en una sola pasada:
// conteos de stock por producto activo y operaciones pendientes por tipo.
func (r *DashboardRepo) GetKPIs(ctx context.Context) (*repository.DashboardKPIs, error) {
	kpis := &repository.DashboardKPIs{}

	stockQuery := `
		SELECT
			COUNT(*) FILTER (WHERE total > 0)                                   AS con_stock,
			COUNT(*) FILTER (WHERE total > 0 AND total <= p.reorder_level)      AS bajo_stock,
			COUNT(*) FILTER (WHERE total <= 0)                                  AS sin_stock
		FROM products p
		LEFT JOIN LATERAL (
			SELECT COALESCE(SUM(s.quantity), 0) AS total
			FROM stock s WHERE s.product_id = p.id
		) st ON true
		WHERE p.is_active`
	err := r.q.QueryRow(ctx, stockQuery).Scan(
		&kpis.TotalProducts, &kpis.LowStockItems, &kpis.OutOfStockItems,
	)
	if err != nil {
		return nil, fmt.Errorf("kpis de stock: %w", err)
	}

	opsQuery := `
		SELECT
			COUNT(*) FILTER (WHERE type = 'receipt')  AS receipts,
			COUNT(*) FILTER (WHERE type = 'delivery') AS deliveries,
			COUNT(*) FILTER (WHERE type = 'transfer') AS transfers
		FROM operations
		WHERE status NOT IN ('done', 'canceled')`
	err = r.q.QueryRow(ctx, opsQuery).Scan(
		&kpis.PendingReceipts, &kpis.PendingDeliveries, &kpis.PendingTransfers,
	)
	if err != nil {
		return nil, fmt.Errorf("kpis de operaciones: %w", err)
	}

	return kpis, nil
}

// GetLowStock lista los productos activos cuyo stock total está en o por
// debajo de su punto de reorden, ordenados por severidad relativa.
func (r *DashboardRepo) GetLowStock(ctx context.Context) ([]repository.LowStockResult, error) {
	query := `
		SELECT p.id, p.sku, p.name, COALESCE(c.name, ''), p.unit_of_measure,
		       p.reorder_level, p.reorder_quantity,
		       COALESCE(st.total, 0) AS current_stock
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN LATERAL (
			SELECT SUM(s.quantity) AS total
			FROM stock s WHERE s.product_id = p.id
		) st ON true
		WHERE p.is_active
		  AND p.reorder_level > 0
		  AND COALESCE(st.total, 0) <= p.reorder_level
		ORDER BY COALESCE(st.total, 0) / p.reorder_level, p.name`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("consulta de bajo stock: %w", err)
	}
	defer rows.Close()

	var results []repository.LowStockResult
	for rows.Next() {
		var lr repository.LowStockResult
		if err := rows.Scan(&lr.ProductID, &lr.SKU, &lr.ProductName, &lr.CategoryName,
			&lr.UnitOfMeasure, &lr.ReorderLevel, &lr.ReorderQuantity, &lr.CurrentStock); err != nil {
			return nil, fmt.Errorf("scan bajo stock: %w", err)
		}
		results = append(results, lr)
	}
	return results, rows.Err()
}
