package auth

import (
	"context"
	"strings"
	"time"

	"github.com/wymdy/erp-api/internal/application/dto"
	"github.com/wymdy/erp-api/internal/application/usecase"
	"github.com/wymdy/erp-api/internal/domain"
	"github.com/wymdy/erp-api/internal/domain/entity"
	"github.com/wymdy/erp-api/internal/domain/repository"
	"github.com/wymdy/erp-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login con email y chave de acesso.
type AuthUseCase struct {
	userRepo repository.UserRepository
	audit    *usecase.AuditUseCase
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, audit *usecase.AuditUseCase, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, audit: audit, jwtCfg: jwtCfg}
}

// Login verifica email/chave, genera JWT y retorna token + usuario.
// Email desconocido y chave incorrecta devuelven el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.AccessKeyHash), []byte(in.AccessKey)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.StatusActive {
		return nil, domain.ErrUserInactive
	}
	ttl := time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, ttl, jwt.Subject{UserID: user.ID, Name: user.Name, Role: user.Role})
	if err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, user.ID, "auth.login", "users", user.ID, nil, nil)
	return &dto.LoginResponse{
		Token: token,
		User:  *usecase.ToUserResponse(user),
	}, nil
}
