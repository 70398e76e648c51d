// Package sales orquesta el checkout: sesión de carrito, finalización de la venta,
// historial, contexto del cliente y comisiones.
package sales

import (
	"context"

	"github.com/wymdy/erp-api/internal/domain/entity"
	"github.com/wymdy/erp-api/internal/domain/repository"
)

// SaleTxRunner ejecuta la finalización dentro de una transacción (venta + cuotas + auditoría).
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		installmentRepo repository.InstallmentRepository,
		auditRepo repository.AuditRepository,
	) error) error
}

// SessionStore guarda las sesiones de checkout entre peticiones.
// Get devuelve domain.ErrSessionNotFound si la sesión no existe o expiró.
type SessionStore interface {
	Save(ctx context.Context, s *CheckoutSession) error
	Get(ctx context.Context, id string) (*CheckoutSession, error)
	Delete(ctx context.Context, id string) error
	// Lock reserva la sesión para una finalización; devuelve domain.ErrConflict si ya está reservada.
	// La reserva expira sola si el proceso muere antes de Unlock.
	Lock(ctx context.Context, id string) error
	Unlock(ctx context.Context, id string) error
}

// SalesExporter genera la hoja de cálculo del historial de ventas.
type SalesExporter interface {
	ExportSales(rows []*entity.SaleSummary) ([]byte, error)
}
