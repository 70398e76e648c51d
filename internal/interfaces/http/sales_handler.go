package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/wymdy/erp-api/internal/application/sales"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SalesHandler historial, cuotas, exportación y comisiones.
type SalesHandler struct {
	uc   *sales.QueryUseCase
	errs errorWriter
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *sales.QueryUseCase, errs errorWriter) *SalesHandler {
	return &SalesHandler{uc: uc, errs: errs}
}

// History godoc
// @Summary      Historial de ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        filter  query  string  false  "all | proforma | confirmed"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {array}  dto.SaleSummaryResponse
// @Router       /api/sales [get]
func (h *SalesHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(c.UserContext(), c.Query("filter"), pageFromQuery(c))
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar historial a Excel
// @Tags         sales
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        filter  query  string  false  "all | proforma | confirmed"
// @Success      200
// @Router       /api/sales/export.xlsx [get]
func (h *SalesHandler) Export(c *fiber.Ctx) error {
	data, err := h.uc.Export(c.UserContext(), c.Query("filter"))
	if err != nil {
		return h.errs.write(c, err)
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="vendas-%s.xlsx"`, time.Now().Format("20060102")))
	return c.Send(data)
}

// Installments godoc
// @Summary      Cuotas de una venta
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {array}  dto.InstallmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/installments [get]
func (h *SalesHandler) Installments(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	out, err := h.uc.Installments(c.UserContext(), id)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// Commissions godoc
// @Summary      Comisiones de agentes de marketing
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CommissionResponse
// @Router       /api/finance/commissions [get]
func (h *SalesHandler) Commissions(c *fiber.Ctx) error {
	out, err := h.uc.Commissions(c.UserContext())
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}
