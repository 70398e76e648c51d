package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/wymdy/erp-api/internal/application/dto"
	"github.com/wymdy/erp-api/internal/domain/entity"
	"github.com/wymdy/erp-api/internal/domain/repository"
	"github.com/wymdy/erp-api/pkg/logger"
)

const auditListMax = 500

// AuditUseCase registra y lista acciones de los usuarios.
type AuditUseCase struct {
	repo repository.AuditRepository
	log  zerolog.Logger
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(repo repository.AuditRepository, log *logger.Logger) *AuditUseCase {
	return &AuditUseCase{repo: repo, log: log.Component("audit")}
}

// Record guarda una entrada. Un fallo de auditoría se registra en el log pero no
// invalida la operación que ya se confirmó.
func (uc *AuditUseCase) Record(ctx context.Context, userID, action, entityName, entityID string, before, after any) {
	entry := &entity.AuditLog{
		ID:        uuid.New().String(),
		UserID:    userID,
		Action:    action,
		Entity:    entityName,
		EntityID:  entityID,
		Before:    marshalOrEmpty(before),
		After:     marshalOrEmpty(after),
		Timestamp: time.Now(),
	}
	if err := uc.repo.Create(ctx, entry); err != nil {
		uc.log.Warn().Err(err).Str("action", action).Str("entity_id", entityID).Msg("no se pudo registrar auditoría")
	}
}

// List últimas entradas, más reciente primero.
func (uc *AuditUseCase) List(ctx context.Context, limit int) ([]dto.AuditLogResponse, error) {
	if limit <= 0 || limit > auditListMax {
		limit = 100
	}
	list, err := uc.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AuditLogResponse, 0, len(list))
	for _, l := range list {
		out = append(out, dto.AuditLogResponse{
			ID:        l.ID,
			UserID:    l.UserID,
			Action:    l.Action,
			Entity:    l.Entity,
			EntityID:  l.EntityID,
			Before:    l.Before,
			After:     l.After,
			Timestamp: l.Timestamp,
		})
	}
	return out, nil
}

func marshalOrEmpty(v any) string {
	if v == nil {
		return ""
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(raw)
}
