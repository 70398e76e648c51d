package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wymdy/erp-api/internal/application/dto"
	"github.com/wymdy/erp-api/internal/domain"
	"github.com/wymdy/erp-api/internal/domain/entity"
	"github.com/wymdy/erp-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase gestión de usuarios del sistema (pantalla de configuración).
type UserUseCase struct {
	repo  repository.UserRepository
	audit *AuditUseCase
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, audit *AuditUseCase) *UserUseCase {
	return &UserUseCase{repo: repo, audit: audit}
}

// Create alta de usuario; la chave de acesso se guarda como hash bcrypt.
func (uc *UserUseCase) Create(ctx context.Context, actorID string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.AccessKey), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	u := &entity.User{
		ID:            uuid.New().String(),
		Name:          strings.TrimSpace(in.Name),
		Email:         email,
		Role:          in.Role,
		Status:        entity.StatusActive,
		AccessKeyHash: string(hash),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	res := ToUserResponse(u)
	uc.audit.Record(ctx, actorID, "user.create", "users", u.ID, nil, res)
	return res, nil
}

// List todos los usuarios.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *ToUserResponse(u))
	}
	return out, nil
}

// Update edita nombre, email, rol o chave. Un administrador no puede quitarse su propio rol ADMIN.
func (uc *UserUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	before := ToUserResponse(u)

	if in.Name != nil {
		u.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email != u.Email {
			other, err := uc.repo.FindByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if other != nil {
				return nil, domain.ErrDuplicate
			}
			u.Email = email
		}
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		if id == actorID && u.Role == entity.RoleAdmin && *in.Role != entity.RoleAdmin {
			return nil, domain.ErrConflict
		}
		u.Role = *in.Role
	}
	if in.AccessKey != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.AccessKey), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.AccessKeyHash = string(hash)
	}
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	res := ToUserResponse(u)
	uc.audit.Record(ctx, actorID, "user.update", "users", id, before, res)
	return res, nil
}

// UpdateStatus activa o desactiva. Un usuario no puede desactivarse a sí mismo.
func (uc *UserUseCase) UpdateStatus(ctx context.Context, actorID, id, status string) error {
	if status != entity.StatusActive && status != entity.StatusInactive {
		return domain.ErrInvalidInput
	}
	if id == actorID && status == entity.StatusInactive {
		return domain.ErrConflict
	}
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUserNotFound
	}
	if err := uc.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	uc.audit.Record(ctx, actorID, "user.status", "users", id,
		map[string]string{"status": u.Status}, map[string]string{"status": status})
	return nil
}

// ToUserResponse proyección sin la chave.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}
