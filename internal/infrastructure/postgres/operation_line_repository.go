package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.OperationLineRepository = (*OperationLineRepo)(nil)

// OperationLineRepo implementación de OperationLineRepository sobre PostgreSQL
// (usable con pool o tx).
type OperationLineRepo struct {
	q Querier
}

// NewOperationLineRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOperationLineRepository(q Querier) *OperationLineRepo {
	return &OperationLineRepo{q: q}
}

// Create persiste una línea de operación.
func (r *OperationLineRepo) Create(line *entity.OperationLine) error {
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	query := `
		INSERT INTO operation_lines (id, operation_id, product_id, planned_quantity, actual_quantity, unit_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.OperationID, line.ProductID, line.PlannedQuantity,
		line.ActualQuantity, line.UnitPrice, line.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create operation line: %w", err)
	}
	return nil
}

// ListByOperation lista las líneas de una operación en orden de inserción.
func (r *OperationLineRepo) ListByOperation(operationID string) ([]*entity.OperationLine, error) {
	query := `
		SELECT id, operation_id, product_id, planned_quantity, actual_quantity, unit_price, created_at
		FROM operation_lines WHERE operation_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, operationID)
	if err != nil {
		return nil, fmt.Errorf("list operation lines: %w", err)
	}
	defer rows.Close()

	var list []*entity.OperationLine
	for rows.Next() {
		var l entity.OperationLine
		if err := rows.Scan(&l.ID, &l.OperationID, &l.ProductID, &l.PlannedQuantity,
			&l.ActualQuantity, &l.UnitPrice, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan operation line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
