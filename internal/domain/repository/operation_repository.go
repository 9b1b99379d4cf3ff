package repository

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// OperationFilter filtros opcionales para listar operaciones (vacío = sin filtro).
type OperationFilter struct {
	Type        string
	Status      string
	WarehouseID string
}

// OperationRepository define el puerto de persistencia para Operation.
type OperationRepository interface {
	Create(op *entity.Operation) error
	GetByID(id string) (*entity.Operation, error)
	// GetByIDForUpdate bloquea la fila de la operación (SELECT FOR UPDATE) para
	// serializar procesamientos concurrentes de la misma operación.
	GetByIDForUpdate(id string) (*entity.Operation, error)
	// UpdateStatus cambia el estado; completedDate solo se fija al pasar a done.
	UpdateStatus(id, status string, completedDate *time.Time) error
	List(filter OperationFilter, limit, offset int) ([]*entity.Operation, error)
}
