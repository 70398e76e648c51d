package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wymdy/erp-api/internal/application/auth"
	"github.com/wymdy/erp-api/internal/application/dto"
)

// AuthHandler maneja el login con email + chave de acesso.
type AuthHandler struct {
	uc   *auth.AuthUseCase
	errs errorWriter
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, errs errorWriter) *AuthHandler {
	return &AuthHandler{uc: uc, errs: errs}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, access_key"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if !bindJSON(c, &in) {
		return nil
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}
