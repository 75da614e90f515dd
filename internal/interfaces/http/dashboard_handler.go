package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tesoreria-api/internal/application/analytics"
)

// DashboardHandler expone el resumen financiero del dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del dashboard
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        year   query  int  false  "Año (por defecto el actual)"
// @Param        month  query  int  false  "Mes 1-12 (por defecto el actual)"
// @Success      200    {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.UserContext(), c.QueryInt("year", 0), c.QueryInt("month", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
