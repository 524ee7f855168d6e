package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/ventas-instalaciones/internal/application/analytics"
	"github.com/jhoicas/ventas-instalaciones/internal/application/dto"
	"github.com/jhoicas/ventas-instalaciones/pkg/logger"
)

// DashboardHandler gráficas del dashboard y panel de prioridades.
type DashboardHandler struct {
	dashboard *appanalytics.DashboardUseCase
	panel     *appanalytics.PanelUseCase
	log       *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(dashboard *appanalytics.DashboardUseCase, panel *appanalytics.PanelUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, panel: panel, log: log}
}

// GetDashboard godoc
// @Summary      Datos de las gráficas del dashboard
// @Description  Sin rango usa desde el primer día del mes hasta hoy.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        desde  query  string  false  "YYYY-MM-DD"
// @Param        hasta  query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.Response{data=dto.DashboardDTO}
// @Failure      400  {object}  dto.ErrorResponse  "INVALID_DATE_RANGE"
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	q := dto.DashboardQuery{Desde: c.Query("desde"), Hasta: c.Query("hasta")}
	out, err := h.dashboard.GetDashboard(c.UserContext(), q)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// GetPanel godoc
// @Summary      Panel de prioridades
// @Description  Cada venta con su estado global (Sin agendar, Por confirmar, ...), ordenado por prioridad.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Cédula o nombre"
// @Param        estado  query  string  false  "Estado global"
// @Param        desde   query  string  false  "YYYY-MM-DD"
// @Param        hasta   query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.Response{data=dto.PanelDTO}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/panel [get]
func (h *DashboardHandler) GetPanel(c *fiber.Ctx) error {
	var q dto.PanelQuery
	if err := c.QueryParser(&q); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_QUERY", "parámetros inválidos")
	}
	out, err := h.panel.GetPanel(c.UserContext(), q)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}
