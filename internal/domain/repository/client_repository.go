package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/wymdy/erp-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	GetByNUIT(ctx context.Context, nuit string) (*entity.Client, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Client, error)
	ListByAgent(ctx context.Context, agentID string) ([]*entity.Client, error)
}

// MarketingAgentRepository agentes comerciales.
type MarketingAgentRepository interface {
	Create(ctx context.Context, agent *entity.MarketingAgent) error
	List(ctx context.Context) ([]*entity.MarketingAgent, error)
}

// SaleRepository ventas y cuotas.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// List historial (más reciente primero). filter: all | proforma | confirmed.
	List(ctx context.Context, filter string, limit, offset int) ([]*entity.SaleSummary, error)
	ListByClient(ctx context.Context, clientID string, limit int) ([]*entity.SaleSummary, error)
	// OutstandingCredit Σ total de las ventas a crédito del cliente que no están pagadas.
	OutstandingCredit(ctx context.Context, clientID string) (decimal.Decimal, error)
	// SumByClients Σ total de ventas confirmadas de los clientes dados.
	SumByClients(ctx context.Context, clientIDs []string) (decimal.Decimal, error)
}

// InstallmentRepository cronograma de cuotas.
type InstallmentRepository interface {
	// CreateBatch inserta todas las cuotas en una sola sentencia.
	CreateBatch(ctx context.Context, installments []*entity.Installment) error
	ListBySale(ctx context.Context, saleID string) ([]*entity.Installment, error)
}
