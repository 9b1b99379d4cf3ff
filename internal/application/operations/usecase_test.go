package operations_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_OperacionNaceEnDraftConReferencia(t *testing.T) {
	s := newScenario()
	out, err := s.uc.Create(context.Background(), testUserID, dto.CreateOperationRequest{
		Type:        entity.OperationTypeReceipt,
		WarehouseID: testWarehouseA,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OperationStatusDraft, out.Status)
	assert.True(t, strings.HasPrefix(out.Reference, "REC-"), "la referencia lleva el prefijo del tipo")
	assert.Equal(t, "Bodega Central", out.WarehouseName)
}

func TestCreate_TipoInvalidoFalla(t *testing.T) {
	s := newScenario()
	_, err := s.uc.Create(context.Background(), testUserID, dto.CreateOperationRequest{
		Type:        "devolucion",
		WarehouseID: testWarehouseA,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_BodegaInexistenteFalla(t *testing.T) {
	s := newScenario()
	_, err := s.uc.Create(context.Background(), testUserID, dto.CreateOperationRequest{
		Type:        entity.OperationTypeReceipt,
		WarehouseID: "no-existe",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_TransferExigeDestinoDistinto(t *testing.T) {
	s := newScenario()
	ctx := context.Background()

	_, err := s.uc.Create(ctx, testUserID, dto.CreateOperationRequest{
		Type:        entity.OperationTypeTransfer,
		WarehouseID: testWarehouseA,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "transfer sin destino debe fallar")

	_, err = s.uc.Create(ctx, testUserID, dto.CreateOperationRequest{
		Type:                   entity.OperationTypeTransfer,
		WarehouseID:            testWarehouseA,
		DestinationWarehouseID: testWarehouseA,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "transfer a la misma bodega debe fallar")

	out, err := s.uc.Create(ctx, testUserID, dto.CreateOperationRequest{
		Type:                   entity.OperationTypeTransfer,
		WarehouseID:            testWarehouseA,
		DestinationWarehouseID: testWarehouseB,
	})
	require.NoError(t, err)
	assert.Equal(t, "Bodega Norte", out.DestinationName)
}

func TestCreate_DestinoSoloAplicaATransfer(t *testing.T) {
	s := newScenario()
	_, err := s.uc.Create(context.Background(), testUserID, dto.CreateOperationRequest{
		Type:                   entity.OperationTypeReceipt,
		WarehouseID:            testWarehouseA,
		DestinationWarehouseID: testWarehouseB,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// AddLine
// ──────────────────────────────────────────────────────────────────────────────

func TestAddLine_SoloEnDraft(t *testing.T) {
	s := newScenario()
	ctx := context.Background()
	op := s.seedOperation("op-1", entity.OperationTypeReceipt, entity.OperationStatusReady, testWarehouseA, "")

	_, err := s.uc.AddLine(ctx, testUserID, op.ID, dto.AddLineRequest{
		ProductID:       testProductID,
		PlannedQuantity: d("5"),
	})
	assert.ErrorIs(t, err, domain.ErrConflict, "una operación fuera de draft no admite líneas")
}

func TestAddLine_CantidadDebeSerPositiva(t *testing.T) {
	s := newScenario()
	ctx := context.Background()
	op := s.seedOperation("op-1", entity.OperationTypeReceipt, entity.OperationStatusDraft, testWarehouseA, "")

	_, err := s.uc.AddLine(ctx, testUserID, op.ID, dto.AddLineRequest{
		ProductID:       testProductID,
		PlannedQuantity: d("0"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// En adjustment la cantidad es el conteo objetivo: cero es válido.
func TestAddLine_AjusteAdmiteConteoCero(t *testing.T) {
	s := newScenario()
	ctx := context.Background()
	op := s.seedOperation("op-1", entity.OperationTypeAdjustment, entity.OperationStatusDraft, testWarehouseA, "")

	out, err := s.uc.AddLine(ctx, testUserID, op.ID, dto.AddLineRequest{
		ProductID:       testProductID,
		PlannedQuantity: d("0"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Tornillo 3mm", out.ProductName)

	_, err = s.uc.AddLine(ctx, testUserID, op.ID, dto.AddLineRequest{
		ProductID:       testProductID,
		PlannedQuantity: d("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "un conteo negativo nunca es válido")
}

func TestAddLine_ProductoInexistenteFalla(t *testing.T) {
	s := newScenario()
	op := s.seedOperation("op-1", entity.OperationTypeReceipt, entity.OperationStatusDraft, testWarehouseA, "")

	_, err := s.uc.AddLine(context.Background(), testUserID, op.ID, dto.AddLineRequest{
		ProductID:       "no-existe",
		PlannedQuantity: d("5"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStatus_AvanceNormal(t *testing.T) {
	s := newScenario()
	ctx := context.Background()
	op := s.seedOperation("op-1", entity.OperationTypeReceipt, entity.OperationStatusDraft, testWarehouseA, "")

	require.NoError(t, s.uc.UpdateStatus(ctx, op.ID, entity.OperationStatusWaiting))
	require.NoError(t, s.uc.UpdateStatus(ctx, op.ID, entity.OperationStatusReady))

	got, _ := s.opRepo.GetByID(op.ID)
	assert.Equal(t, entity.OperationStatusReady, got.Status)
}

func TestUpdateStatus_NoPermiteSaltarEstados(t *testing.T) {
	s := newScenario()
	op := s.seedOperation("op-1", entity.OperationTypeReceipt, entity.OperationStatusDraft, testWarehouseA, "")

	err := s.uc.UpdateStatus(context.Background(), op.ID, entity.OperationStatusReady)
	assert.ErrorIs(t, err, domain.ErrConflict, "draft no puede pasar directo a ready")
}

func TestUpdateStatus_CancelarDesdeCualquierEstadoNoTerminal(t *testing.T) {
	s := newScenario()
	ctx := context.Background()

	for _, status := range []string{entity.OperationStatusDraft, entity.OperationStatusWaiting, entity.OperationStatusReady} {
		op := s.seedOperation("op-"+status, entity.OperationTypeReceipt, status, testWarehouseA, "")
		assert.NoError(t, s.uc.UpdateStatus(ctx, op.ID, entity.OperationStatusCanceled),
			"debe poder cancelarse desde %s", status)
	}
}

func TestUpdateStatus_EstadosTerminalesSonInmutables(t *testing.T) {
	s := newScenario()
	ctx := context.Background()

	done := s.seedOperation("op-done", entity.OperationTypeReceipt, entity.OperationStatusDone, testWarehouseA, "")
	canceled := s.seedOperation("op-canceled", entity.OperationTypeReceipt, entity.OperationStatusCanceled, testWarehouseA, "")

	assert.ErrorIs(t, s.uc.UpdateStatus(ctx, done.ID, entity.OperationStatusCanceled), domain.ErrConflict,
		"una operación done no puede cancelarse")
	assert.ErrorIs(t, s.uc.UpdateStatus(ctx, canceled.ID, entity.OperationStatusWaiting), domain.ErrConflict)
}
