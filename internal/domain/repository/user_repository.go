package repository

import (
	"context"

	"github.com/wymdy/erp-api/internal/domain/entity"
)

// UserRepository usuarios del sistema.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	// Update reescribe nombre, email, rol y hash de la chave.
	Update(ctx context.Context, user *entity.User) error
	UpdateStatus(ctx context.Context, id, status string) error
}

// AuditRepository registro de auditoría (solo append + lectura).
type AuditRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	ListRecent(ctx context.Context, limit int) ([]*entity.AuditLog, error)
}
