package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wymdy/erp-api/internal/application/dto"
	"github.com/wymdy/erp-api/internal/application/sales"
	"github.com/wymdy/erp-api/internal/application/usecase"
)

// ClientHandler clientes y su contexto comercial.
type ClientHandler struct {
	uc    *usecase.ClientUseCase
	query *sales.QueryUseCase
	errs  errorWriter
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase, query *sales.QueryUseCase, errs errorWriter) *ClientHandler {
	return &ClientHandler{uc: uc, query: query, errs: errs}
}

// Create godoc
// @Summary      Alta rápida de cliente
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClientRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.ClientResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if !bindJSON(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar clientes
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ClientResponse
// @Router       /api/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageFromQuery(c))
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// Context godoc
// @Summary      Contexto del cliente (últimas ventas y saldo a crédito)
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.ClientContextResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id}/context [get]
func (h *ClientHandler) Context(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	out, err := h.query.ClientContext(c.UserContext(), id)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}
