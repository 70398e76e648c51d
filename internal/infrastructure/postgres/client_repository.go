package postgres

import (
	"context"
	"fmt"

	"github.com/wymdy/erp-api/internal/domain/entity"
	"github.com/wymdy/erp-api/internal/domain/repository"
)

var (
	_ repository.ClientRepository         = (*ClientRepo)(nil)
	_ repository.MarketingAgentRepository = (*MarketingAgentRepo)(nil)
)

const clientColumns = `id, name, nuit, phone, address, credit_limit, balance, marketing_agent_id::text, created_at, updated_at`

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

func scanClient(row rowScanner) (*entity.Client, error) {
	var c entity.Client
	if err := row.Scan(&c.ID, &c.Name, &c.NUIT, &c.Phone, &c.Address, &c.CreditLimit, &c.Balance,
		&c.MarketingAgentID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo cliente. NUIT repetido → ErrDuplicate.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO clients (id, name, nuit, phone, address, credit_limit, balance, marketing_agent_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.Name, c.NUIT, c.Phone, c.Address, c.CreditLimit, c.Balance, nullString(c.MarketingAgentID),
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert client", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. nil si no existe.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	return r.getOne(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)
}

// GetByNUIT obtiene un cliente por NUIT. nil si no existe.
func (r *ClientRepo) GetByNUIT(ctx context.Context, nuit string) (*entity.Client, error) {
	return r.getOne(ctx, `SELECT `+clientColumns+` FROM clients WHERE nuit = $1`, nuit)
}

func (r *ClientRepo) getOne(ctx context.Context, query string, arg string) (*entity.Client, error) {
	c, err := scanClient(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// List clientes por nombre con paginación.
func (r *ClientRepo) List(ctx context.Context, limit, offset int) ([]*entity.Client, error) {
	return r.list(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
}

// ListByAgent clientes atribuidos a un agente de marketing.
func (r *ClientRepo) ListByAgent(ctx context.Context, agentID string) ([]*entity.Client, error) {
	return r.list(ctx, `SELECT `+clientColumns+` FROM clients WHERE marketing_agent_id = $1 ORDER BY name`, agentID)
}

func (r *ClientRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Client, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// MarketingAgentRepo agentes comerciales.
type MarketingAgentRepo struct {
	q Querier
}

// NewMarketingAgentRepository construye el adaptador.
func NewMarketingAgentRepository(q Querier) *MarketingAgentRepo {
	return &MarketingAgentRepo{q: q}
}

// Create persiste un agente.
func (r *MarketingAgentRepo) Create(ctx context.Context, a *entity.MarketingAgent) error {
	_, err := r.q.Exec(ctx, `INSERT INTO marketing_agents (id, name, bonus_percentage) VALUES ($1, $2, $3)`,
		a.ID, a.Name, a.BonusPercentage)
	if err != nil {
		return fmt.Errorf("insert marketing agent: %w", err)
	}
	return nil
}

// List todos los agentes por nombre.
func (r *MarketingAgentRepo) List(ctx context.Context) ([]*entity.MarketingAgent, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, bonus_percentage FROM marketing_agents ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list marketing agents: %w", err)
	}
	defer rows.Close()
	var list []*entity.MarketingAgent
	for rows.Next() {
		var a entity.MarketingAgent
		if err := rows.Scan(&a.ID, &a.Name, &a.BonusPercentage); err != nil {
			return nil, fmt.Errorf("scan marketing agent: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
