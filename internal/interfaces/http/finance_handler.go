package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wymdy/erp-api/internal/application/usecase"
)

// FinanceHandler gastos.
type FinanceHandler struct {
	uc   *usecase.ExpenseUseCase
	errs errorWriter
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(uc *usecase.ExpenseUseCase, errs errorWriter) *FinanceHandler {
	return &FinanceHandler{uc: uc, errs: errs}
}

// Expenses godoc
// @Summary      Listado de gastos (incluye salarios de nómina)
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  false  "Categoría, p. ej. Salários"
// @Param        limit     query  int     false  "Límite"  default(100)
// @Success      200       {array}  dto.ExpenseResponse
// @Router       /api/finance/expenses [get]
func (h *FinanceHandler) Expenses(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("category"), c.QueryInt("limit"))
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}
