package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gastrostock/gastrostock-api/internal/application/analytics"
)

// AnalyticsHandler dashboard y reportes (protegido, solo lectura).
type AnalyticsHandler struct {
	dashboardUC *analytics.DashboardUseCase
	reportsUC   *analytics.ReportsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(dashboardUC *analytics.DashboardUseCase, reportsUC *analytics.ReportsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{dashboardUC: dashboardUC, reportsUC: reportsUC}
}

// Dashboard godoc
// @Summary      Resumen del dashboard
// @Tags         analitica
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.dashboardUC.Get(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte por período
// @Tags         analitica
// @Security     Bearer
// @Produce      json
// @Param        periodo  query  string  false  "diario | semanal | quincenal | mensual | trimestral | anual"  default(mensual)
// @Success      200  {object}  dto.ReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes [get]
func (h *AnalyticsHandler) Report(c *fiber.Ctx) error {
	out, err := h.reportsUC.Get(c.Context(), c.Query("periodo"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
