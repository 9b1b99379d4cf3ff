package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.OperationRepository = (*OperationRepo)(nil)

// OperationRepo implementación de OperationRepository sobre PostgreSQL (usable con pool o tx).
type OperationRepo struct {
	q Querier
}

// NewOperationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOperationRepository(q Querier) *OperationRepo {
	return &OperationRepo{q: q}
}

const operationColumns = `id, type, reference, status, warehouse_id, destination_warehouse_id, supplier_name, customer_name, notes, scheduled_date, completed_date, created_by, created_at, updated_at`

// Create persiste una nueva operación.
func (r *OperationRepo) Create(op *entity.Operation) error {
	query := `
		INSERT INTO operations (` + operationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	destination := (*string)(nil)
	if op.DestinationWarehouseID != "" {
		destination = &op.DestinationWarehouseID
	}
	_, err := r.q.Exec(context.Background(), query,
		op.ID, op.Type, op.Reference, op.Status, op.WarehouseID, destination,
		op.SupplierName, op.CustomerName, op.Notes, op.ScheduledDate, op.CompletedDate,
		op.CreatedBy, op.CreatedAt, op.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert operation: referencia duplicada: %w", err)
		}
		return fmt.Errorf("insert operation: %w", err)
	}
	return nil
}

// GetByID obtiene una operación por ID.
func (r *OperationRepo) GetByID(id string) (*entity.Operation, error) {
	query := `SELECT ` + operationColumns + ` FROM operations WHERE id = $1`
	return r.getOne(query, id)
}

// GetByIDForUpdate obtiene una operación bloqueando su fila (SELECT FOR UPDATE),
// para serializar procesamientos concurrentes de la misma operación.
func (r *OperationRepo) GetByIDForUpdate(id string) (*entity.Operation, error) {
	query := `SELECT ` + operationColumns + ` FROM operations WHERE id = $1 FOR UPDATE`
	return r.getOne(query, id)
}

func (r *OperationRepo) getOne(query, id string) (*entity.Operation, error) {
	var op entity.Operation
	var destination *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&op.ID, &op.Type, &op.Reference, &op.Status, &op.WarehouseID, &destination,
		&op.SupplierName, &op.CustomerName, &op.Notes, &op.ScheduledDate, &op.CompletedDate,
		&op.CreatedBy, &op.CreatedAt, &op.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get operation: %w", err)
	}
	if destination != nil {
		op.DestinationWarehouseID = *destination
	}
	return &op, nil
}

// UpdateStatus cambia el estado de una operación; completedDate solo viene al
// pasar a done.
func (r *OperationRepo) UpdateStatus(id, status string, completedDate *time.Time) error {
	query := `
		UPDATE operations SET status = $2, completed_date = COALESCE($3, completed_date), updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, status, completedDate)
	if err != nil {
		return fmt.Errorf("update operation status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update operation status: operación %s no existe", id)
	}
	return nil
}

// List lista operaciones con filtros opcionales, más recientes primero.
func (r *OperationRepo) List(filter repository.OperationFilter, limit, offset int) ([]*entity.Operation, error) {
	query := `SELECT ` + operationColumns + ` FROM operations WHERE 1=1`
	var args []any
	pos := 1
	if filter.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, filter.Status)
		pos++
	}
	if filter.WarehouseID != "" {
		query += fmt.Sprintf(" AND warehouse_id = $%d", pos)
		args = append(args, filter.WarehouseID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}
	defer rows.Close()

	var list []*entity.Operation
	for rows.Next() {
		var op entity.Operation
		var destination *string
		if err := rows.Scan(&op.ID, &op.Type, &op.Reference, &op.Status, &op.WarehouseID, &destination,
			&op.SupplierName, &op.CustomerName, &op.Notes, &op.ScheduledDate, &op.CompletedDate,
			&op.CreatedBy, &op.CreatedAt, &op.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}
		if destination != nil {
			op.DestinationWarehouseID = *destination
		}
		list = append(list, &op)
	}
	return list, rows.Err()
}
