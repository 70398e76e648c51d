package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wymdy/erp-api/internal/application/insights"
)

// DashboardHandler métricas del mes e insights generados.
type DashboardHandler struct {
	uc   *insights.UseCase
	errs errorWriter
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *insights.UseCase, errs errorWriter) *DashboardHandler {
	return &DashboardHandler{uc: uc, errs: errs}
}

// Get godoc
// @Summary      Dashboard con insights
// @Description  Si el modelo de lenguaje falla o tarda, insights trae el texto de respaldo.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.UserContext())
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}
