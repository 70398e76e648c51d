package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wymdy/erp-api/internal/application/dto"
	"github.com/wymdy/erp-api/internal/application/sales"
)

// CheckoutHandler expone la sesión de checkout (carrito + condiciones + finalización).
// Cada respuesta devuelve el estado completo con los totales recalculados.
type CheckoutHandler struct {
	uc   *sales.CheckoutUseCase
	errs errorWriter
}

// NewCheckoutHandler construye el handler.
func NewCheckoutHandler(uc *sales.CheckoutUseCase, errs errorWriter) *CheckoutHandler {
	return &CheckoutHandler{uc: uc, errs: errs}
}

// Start godoc
// @Summary      Abrir sesión de checkout
// @Tags         checkout
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StartCheckoutRequest  false  "Cliente opcional"
// @Success      201   {object}  dto.CheckoutResponse
// @Router       /api/checkout [post]
func (h *CheckoutHandler) Start(c *fiber.Ctx) error {
	var in dto.StartCheckoutRequest
	if len(c.Body()) > 0 && !bindJSON(c, &in) {
		return nil
	}
	out, err := h.uc.Start(c.UserContext(), in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Estado de la sesión de checkout
// @Tags         checkout
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.CheckoutResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/checkout/{id} [get]
func (h *CheckoutHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Agregar producto al carrito (suma si ya existe)
// @Tags         checkout
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sesión"
// @Param        body  body  dto.AddItemRequest  true  "Producto y cantidad"
// @Success      200   {object}  dto.CheckoutResponse
// @Router       /api/checkout/{id}/items [post]
func (h *CheckoutHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if !bindJSON(c, &in) {
		return nil
	}
	out, err := h.uc.AddItem(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// UpdateQuantity godoc
// @Summary      Ajustar cantidad de una línea (mínimo 1)
// @Tags         checkout
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id         path  string  true  "ID de la sesión"
// @Param        productId  path  string  true  "ID del producto"
// @Param        body       body  dto.UpdateQuantityRequest  true  "Delta"
// @Success      200        {object}  dto.CheckoutResponse
// @Router       /api/checkout/{id}/items/{productId} [patch]
func (h *CheckoutHandler) UpdateQuantity(c *fiber.Ctx) error {
	var in dto.UpdateQuantityRequest
	if !bindJSON(c, &in) {
		return nil
	}
	out, err := h.uc.UpdateQuantity(c.UserContext(), c.Params("id"), c.Params("productId"), in.Delta)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary      Quitar una línea del carrito
// @Tags         checkout
// @Security     Bearer
// @Produce      json
// @Param        id         path  string  true  "ID de la sesión"
// @Param        productId  path  string  true  "ID del producto"
// @Success      200        {object}  dto.CheckoutResponse
// @Router       /api/checkout/{id}/items/{productId} [delete]
func (h *CheckoutHandler) RemoveItem(c *fiber.Ctx) error {
	out, err := h.uc.RemoveItem(c.UserContext(), c.Params("id"), c.Params("productId"))
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// SetTerms godoc
// @Summary      Cliente, tipo de pago, descuento, interés y cuotas
// @Tags         checkout
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sesión"
// @Param        body  body  dto.CheckoutTermsRequest  true  "Condiciones"
// @Success      200   {object}  dto.CheckoutResponse
// @Router       /api/checkout/{id}/terms [put]
func (h *CheckoutHandler) SetTerms(c *fiber.Ctx) error {
	var in dto.CheckoutTermsRequest
	if !bindJSON(c, &in) {
		return nil
	}
	out, err := h.uc.SetTerms(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// Finalize godoc
// @Summary      Finalizar venta o proforma
// @Tags         checkout
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sesión"
// @Param        body  body  dto.FinalizeCheckoutRequest  false  "proforma"
// @Success      201   {object}  dto.SaleResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/checkout/{id}/finalize [post]
func (h *CheckoutHandler) Finalize(c *fiber.Ctx) error {
	var in dto.FinalizeCheckoutRequest
	if len(c.Body()) > 0 && !bindJSON(c, &in) {
		return nil
	}
	out, err := h.uc.Finalize(c.UserContext(), c.Params("id"), GetUserID(c), in.Proforma)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Cancel godoc
// @Summary      Descartar la sesión de checkout
// @Tags         checkout
// @Security     Bearer
// @Param        id   path  string  true  "ID de la sesión"
// @Success      204
// @Router       /api/checkout/{id} [delete]
func (h *CheckoutHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(c.UserContext(), c.Params("id")); err != nil {
		return h.errs.write(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
