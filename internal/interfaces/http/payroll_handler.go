package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/wymdy/erp-api/internal/application/dto"
	"github.com/wymdy/erp-api/internal/application/payroll"
)

// PayrollHandler folha salarial.
type PayrollHandler struct {
	uc   *payroll.UseCase
	errs errorWriter
}

// NewPayrollHandler construye el handler.
func NewPayrollHandler(uc *payroll.UseCase, errs errorWriter) *PayrollHandler {
	return &PayrollHandler{uc: uc, errs: errs}
}

// Preview godoc
// @Summary      Calcular totales sin guardar
// @Tags         payroll
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PayrollRequest  true  "Entrada de nómina"
// @Success      200   {object}  dto.PayrollResponse
// @Router       /api/payroll/preview [post]
func (h *PayrollHandler) Preview(c *fiber.Ctx) error {
	var in dto.PayrollRequest
	if !bindJSON(c, &in) {
		return nil
	}
	out, err := h.uc.Preview(c.UserContext(), in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Registrar entrada de nómina y su gasto
// @Tags         payroll
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PayrollRequest  true  "Entrada de nómina"
// @Success      201   {object}  dto.PayrollResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/payroll [post]
func (h *PayrollHandler) Submit(c *fiber.Ctx) error {
	var in dto.PayrollRequest
	if !bindJSON(c, &in) {
		return nil
	}
	out, err := h.uc.Submit(c.UserContext(), in, GetUserID(c))
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Entradas de un período
// @Tags         payroll
// @Security     Bearer
// @Produce      json
// @Param        month  query  int  false  "Mes (default: actual)"
// @Param        year   query  int  false  "Año (default: actual)"
// @Success      200    {array}  dto.PayrollResponse
// @Router       /api/payroll [get]
func (h *PayrollHandler) List(c *fiber.Ctx) error {
	month, year, ok := periodFromQuery(c)
	if !ok {
		return nil
	}
	out, err := h.uc.List(c.UserContext(), month, year)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// Sheet godoc
// @Summary      Hoja salarial en PDF
// @Tags         payroll
// @Security     Bearer
// @Produce      application/pdf
// @Param        month  query  int  false  "Mes"
// @Param        year   query  int  false  "Año"
// @Success      200
// @Router       /api/payroll/sheet.pdf [get]
func (h *PayrollHandler) Sheet(c *fiber.Ctx) error {
	month, year, ok := periodFromQuery(c)
	if !ok {
		return nil
	}
	data, err := h.uc.SalarySheet(c.UserContext(), month, year)
	if err != nil {
		return h.errs.write(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="folha-%02d-%d.pdf"`, month, year))
	return c.Send(data)
}

// Reconcile godoc
// @Summary      Crear los gastos que faltan para entradas de nómina
// @Tags         payroll
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReconcileResponse
// @Router       /api/payroll/reconcile [post]
func (h *PayrollHandler) Reconcile(c *fiber.Ctx) error {
	out, err := h.uc.Reconcile(c.UserContext())
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// periodFromQuery month/year con el mes actual por defecto. Escribe 400 si están fuera de rango.
func periodFromQuery(c *fiber.Ctx) (int, int, bool) {
	now := time.Now()
	month := c.QueryInt("month", int(now.Month()))
	year := c.QueryInt("year", now.Year())
	if month < 1 || month > 12 || year < 2000 || year > 2100 {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "month 1-12 y year 2000-2100"})
		return 0, 0, false
	}
	return month, year, true
}
