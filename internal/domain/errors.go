package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrUserNotFound  = errors.New("usuario no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrForbidden     = errors.New("acceso denegado")
	ErrConflict      = errors.New("conflicto con el estado actual")
	ErrUserInactive  = errors.New("usuario inactivo")

	// Checkout
	ErrClientRequired  = errors.New("cliente no seleccionado")
	ErrEmptyCart       = errors.New("carrito vacío")
	ErrSessionNotFound = errors.New("sesión de checkout no encontrada o expirada")

	// Nómina
	ErrNegativeNetSalary = errors.New("salario líquido negativo")
)
