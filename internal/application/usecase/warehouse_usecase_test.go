package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

func newWarehouseScenario() *usecase.WarehouseUseCase {
	warehouses := &memWarehouseRepo{warehouses: map[string]*entity.Warehouse{}}
	warehouses.Create(&entity.Warehouse{
		ID:        whID,
		Name:      "Bodega Central",
		Code:      "BC",
		Address:   "Calle 10 #5-20",
		IsActive:  true,
		CreatedAt: time.Now(),
	})
	return usecase.NewWarehouseUseCase(warehouses)
}

func TestWarehouseGetByID_NoExisteDevuelveNotFound(t *testing.T) {
	uc := newWarehouseScenario()

	out, err := uc.GetByID(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound, "una bodega inexistente debe devolver not found, no nil")
	assert.Nil(t, out)
}

func TestWarehouseUpdate_NoExisteDevuelveNotFound(t *testing.T) {
	uc := newWarehouseScenario()

	name := "Bodega Fantasma"
	out, err := uc.Update(context.Background(), "no-existe", dto.UpdateWarehouseRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, out)
}

func TestWarehouseUpdate_ActualizaNombreYDireccion(t *testing.T) {
	uc := newWarehouseScenario()

	name := "Bodega Sur"
	address := "Carrera 45 #12-08"
	out, err := uc.Update(context.Background(), whID, dto.UpdateWarehouseRequest{Name: &name, Address: &address})
	require.NoError(t, err)
	assert.Equal(t, "Bodega Sur", out.Name)
	assert.Equal(t, "Carrera 45 #12-08", out.Address)
	assert.Equal(t, "BC", out.Code, "el código de bodega no es editable")
}

func TestWarehouseCreate_CodigoDuplicadoFalla(t *testing.T) {
	uc := newWarehouseScenario()

	_, err := uc.Create(context.Background(), dto.CreateWarehouseRequest{Name: "Otra", Code: "BC"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
