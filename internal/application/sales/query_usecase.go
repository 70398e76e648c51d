package sales

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wymdy/erp-api/internal/application/dto"
	"github.com/wymdy/erp-api/internal/domain"
	"github.com/wymdy/erp-api/internal/domain/payroll"
	"github.com/wymdy/erp-api/internal/domain/repository"
)

// Filtros del historial de ventas.
const (
	FilterAll       = "all"
	FilterProforma  = "proforma"
	FilterConfirmed = "confirmed"
)

const (
	recentSalesLimit = 3
	exportLimit      = 5000
)

// QueryUseCase lecturas de ventas: historial, cuotas, contexto de cliente, exportación y comisiones.
type QueryUseCase struct {
	saleRepo        repository.SaleRepository
	installmentRepo repository.InstallmentRepository
	clientRepo      repository.ClientRepository
	agentRepo       repository.MarketingAgentRepository
	exporter        SalesExporter
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(
	saleRepo repository.SaleRepository,
	installmentRepo repository.InstallmentRepository,
	clientRepo repository.ClientRepository,
	agentRepo repository.MarketingAgentRepository,
	exporter SalesExporter,
) *QueryUseCase {
	return &QueryUseCase{
		saleRepo:        saleRepo,
		installmentRepo: installmentRepo,
		clientRepo:      clientRepo,
		agentRepo:       agentRepo,
		exporter:        exporter,
	}
}

// NormalizeFilter valida el filtro; vacío equivale a all.
func NormalizeFilter(f string) (string, error) {
	switch f {
	case "", FilterAll:
		return FilterAll, nil
	case FilterProforma, FilterConfirmed:
		return f, nil
	}
	return "", domain.ErrInvalidInput
}

// History lista ventas, más reciente primero.
func (uc *QueryUseCase) History(ctx context.Context, filter string, page dto.PageRequest) ([]dto.SaleSummaryResponse, error) {
	f, err := NormalizeFilter(filter)
	if err != nil {
		return nil, err
	}
	page.Normalize()
	list, err := uc.saleRepo.List(ctx, f, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return ToSaleSummaryResponses(list), nil
}

// Installments cronograma de una venta.
func (uc *QueryUseCase) Installments(ctx context.Context, saleID string) ([]dto.InstallmentResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.installmentRepo.ListBySale(ctx, saleID)
	if err != nil {
		return nil, err
	}
	out := ToInstallmentResponses(list)
	if out == nil {
		out = []dto.InstallmentResponse{}
	}
	return out, nil
}

// ClientContext últimas ventas y saldo a crédito pendiente del cliente.
func (uc *QueryUseCase) ClientContext(ctx context.Context, clientID string) (*dto.ClientContextResponse, error) {
	c, err := uc.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	recent, err := uc.saleRepo.ListByClient(ctx, clientID, recentSalesLimit)
	if err != nil {
		return nil, err
	}
	outstanding, err := uc.saleRepo.OutstandingCredit(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return &dto.ClientContextResponse{
		Client: dto.ClientResponse{
			ID:               c.ID,
			Name:             c.Name,
			NUIT:             c.NUIT,
			Phone:            c.Phone,
			Address:          c.Address,
			CreditLimit:      c.CreditLimit,
			Balance:          c.Balance,
			MarketingAgentID: c.MarketingAgentID,
		},
		RecentSales:        ToSaleSummaryResponses(recent),
		OutstandingBalance: outstanding,
	}, nil
}

// Export genera el XLSX del historial filtrado.
func (uc *QueryUseCase) Export(ctx context.Context, filter string) ([]byte, error) {
	f, err := NormalizeFilter(filter)
	if err != nil {
		return nil, err
	}
	list, err := uc.saleRepo.List(ctx, f, exportLimit, 0)
	if err != nil {
		return nil, err
	}
	data, err := uc.exporter.ExportSales(list)
	if err != nil {
		return nil, fmt.Errorf("exportar ventas: %w", err)
	}
	return data, nil
}

// Commissions bónus de cada agente: Σ ventas confirmadas de sus clientes × porcentaje / 100.
func (uc *QueryUseCase) Commissions(ctx context.Context) ([]dto.CommissionResponse, error) {
	agents, err := uc.agentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CommissionResponse, 0, len(agents))
	for _, a := range agents {
		clients, err := uc.clientRepo.ListByAgent(ctx, a.ID)
		if err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(clients))
		for _, c := range clients {
			ids = append(ids, c.ID)
		}
		total := decimal.Zero
		if len(ids) > 0 {
			if total, err = uc.saleRepo.SumByClients(ctx, ids); err != nil {
				return nil, err
			}
		}
		out = append(out, dto.CommissionResponse{
			AgentID:         a.ID,
			AgentName:       a.Name,
			BonusPercentage: a.BonusPercentage,
			ClientCount:     len(ids),
			TotalSales:      total,
			Commission:      payroll.Commission(total, a.BonusPercentage),
		})
	}
	return out, nil
}
