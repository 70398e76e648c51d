package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/wymdy/erp-api/internal/application/dto"
	"github.com/wymdy/erp-api/internal/domain"
)

type errorMapping struct {
	err     error
	status  int
	code    string
	message string
}

// mappings errores de dominio → HTTP. El primero que coincide (errors.Is) gana.
var mappings = []errorMapping{
	{domain.ErrSessionNotFound, fiber.StatusNotFound, "SESSION_NOT_FOUND", "sesión de checkout no encontrada o expirada"},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "NOT_FOUND", "usuario no encontrado"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE", "el recurso ya existe"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT", "conflicto con el estado actual"},
	{domain.ErrClientRequired, fiber.StatusUnprocessableEntity, "CLIENT_REQUIRED", "seleccione un cliente"},
	{domain.ErrEmptyCart, fiber.StatusUnprocessableEntity, "EMPTY_CART", "el carrito está vacío"},
	{domain.ErrNegativeNetSalary, fiber.StatusUnprocessableEntity, "NEGATIVE_NET_SALARY", "el salario líquido no puede ser negativo"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION", ""},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "credenciales inválidas"},
	{domain.ErrUserInactive, fiber.StatusForbidden, "USER_INACTIVE", "usuario inactivo"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN", "acceso denegado"},
}

// errorWriter traduce errores de los use cases a dto.ErrorResponse. Los no mapeados son 500 y se registran.
type errorWriter struct {
	log zerolog.Logger
}

func (w errorWriter) write(c *fiber.Ctx, err error) error {
	for _, m := range mappings {
		if errors.Is(err, m.err) {
			msg := m.message
			if msg == "" {
				msg = err.Error()
			}
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: msg})
		}
	}
	w.log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
