package operation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/operation"
)

func TestCanTransition_Matriz(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{entity.OperationStatusDraft, entity.OperationStatusWaiting, true},
		{entity.OperationStatusWaiting, entity.OperationStatusReady, true},
		{entity.OperationStatusDraft, entity.OperationStatusCanceled, true},
		{entity.OperationStatusWaiting, entity.OperationStatusCanceled, true},
		{entity.OperationStatusReady, entity.OperationStatusCanceled, true},

		// Sin saltos ni retrocesos.
		{entity.OperationStatusDraft, entity.OperationStatusReady, false},
		{entity.OperationStatusReady, entity.OperationStatusWaiting, false},
		{entity.OperationStatusWaiting, entity.OperationStatusDraft, false},

		// done solo se alcanza procesando, nunca por cambio de estado.
		{entity.OperationStatusDraft, entity.OperationStatusDone, false},
		{entity.OperationStatusReady, entity.OperationStatusDone, false},

		// Los terminales son inmutables, incluida la cancelación de una done.
		{entity.OperationStatusDone, entity.OperationStatusCanceled, false},
		{entity.OperationStatusDone, entity.OperationStatusWaiting, false},
		{entity.OperationStatusCanceled, entity.OperationStatusDraft, false},
		{entity.OperationStatusCanceled, entity.OperationStatusCanceled, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, operation.CanTransition(c.from, c.to),
			"transición %s → %s", c.from, c.to)
	}
}
