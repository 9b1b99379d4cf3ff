package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/analytics"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
)

// DashboardHandler indicadores agregados del inventario (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetKPIs godoc
// @Summary      KPIs del tablero (stock y operaciones pendientes)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardKPIsResponse
// @Router       /api/dashboard/kpis [get]
func (h *DashboardHandler) GetKPIs(c *fiber.Ctx) error {
	out, err := h.uc.GetKPIs(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetLowStock godoc
// @Summary      Productos en o por debajo de su punto de reorden
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LowStockProductDTO
// @Router       /api/dashboard/low-stock [get]
func (h *DashboardHandler) GetLowStock(c *fiber.Ctx) error {
	out, err := h.uc.GetLowStock(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
