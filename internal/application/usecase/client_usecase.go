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
)

// ClientUseCase alta y consulta de clientes.
type ClientUseCase struct {
	repo  repository.ClientRepository
	audit *AuditUseCase
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository, audit *AuditUseCase) *ClientUseCase {
	return &ClientUseCase{repo: repo, audit: audit}
}

// Create alta rápida (nombre, NUIT, teléfono). NUIT repetido → ErrDuplicate.
func (uc *ClientUseCase) Create(ctx context.Context, userID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	nuit := strings.TrimSpace(in.NUIT)
	name := strings.TrimSpace(in.Name)
	if name == "" || nuit == "" || in.CreditLimit.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByNUIT(ctx, nuit)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	c := &entity.Client{
		ID:               uuid.New().String(),
		Name:             name,
		NUIT:             nuit,
		Phone:            strings.TrimSpace(in.Phone),
		Address:          in.Address,
		CreditLimit:      in.CreditLimit,
		MarketingAgentID: in.MarketingAgentID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	res := toClientResponse(c)
	uc.audit.Record(ctx, userID, "client.create", "clients", c.ID, nil, res)
	return res, nil
}

// GetByID obtiene un cliente.
func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (*dto.ClientResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(c), nil
}

// List clientes paginados por nombre.
func (uc *ClientUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.ClientResponse, error) {
	page.Normalize()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toClientResponse(c))
	}
	return out, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:               c.ID,
		Name:             c.Name,
		NUIT:             c.NUIT,
		Phone:            c.Phone,
		Address:          c.Address,
		CreditLimit:      c.CreditLimit,
		Balance:          c.Balance,
		MarketingAgentID: c.MarketingAgentID,
	}
}
