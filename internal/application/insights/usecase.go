// Package insights arma el resumen del dashboard y pide al modelo de lenguaje
// tres observaciones cortas sobre stock y caja.
package insights

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"github.com/wymdy/erp-api/internal/application/dto"
	"github.com/wymdy/erp-api/internal/application/ports"
	"github.com/wymdy/erp-api/internal/domain/entity"
	"github.com/wymdy/erp-api/internal/domain/repository"
	"github.com/wymdy/erp-api/pkg/logger"
)

// Fallback texto mostrado cuando el generador no responde o falla.
const Fallback = "Insights automáticos indisponíveis no momento."

// Instruction instrucción fija enviada al modelo junto con las métricas.
const Instruction = "Analise os seguintes dados do ERP da Wymdy Company e forneça 3 insights rápidos " +
	"(máx 15 palavras cada) focados em estoque baixo ou fluxo de caixa. Responda em Português."

const (
	defaultTimeout  = 10 * time.Second
	lowStockSamples = 10
)

// UseCase dashboard con insights. Se invoca una vez por vista, sin reintentos ni caché.
type UseCase struct {
	analyticsRepo repository.AnalyticsRepository
	productRepo   repository.ProductRepository
	llm           ports.InsightGenerator
	metrics       ports.Metrics
	timeout       time.Duration
	log           zerolog.Logger
	now           func() time.Time
}

// NewUseCase construye el caso de uso. llm nil desactiva la llamada y devuelve siempre Fallback.
func NewUseCase(
	analyticsRepo repository.AnalyticsRepository,
	productRepo repository.ProductRepository,
	llm ports.InsightGenerator,
	metrics ports.Metrics,
	log *logger.Logger,
) *UseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &UseCase{
		analyticsRepo: analyticsRepo,
		productRepo:   productRepo,
		llm:           llm,
		metrics:       metrics,
		timeout:       defaultTimeout,
		log:           log.Component("insights"),
		now:           time.Now,
	}
}

// WithTimeout cambia el límite de la llamada al modelo.
func (uc *UseCase) WithTimeout(d time.Duration) *UseCase {
	uc.timeout = d
	return uc
}

type lowStockItem struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Stock    string `json:"stock"`
	MinStock string `json:"min_stock"`
}

type summary struct {
	Period             string         `json:"period"`
	MonthSales         string         `json:"month_sales"`
	PendingReceivables string         `json:"pending_receivables"`
	MonthExpenses      string         `json:"month_expenses"`
	LowStockCount      int            `json:"low_stock_count"`
	ActiveEmployees    int            `json:"active_employees"`
	LowStock           []lowStockItem `json:"low_stock"`
}

// Dashboard métricas del mes en curso más el texto de insights.
// Solo los errores de métricas se propagan; los del generador se sustituyen por Fallback.
func (uc *UseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	now := uc.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type metricsResult struct {
		m   *repository.DashboardMetrics
		err error
	}
	type lowStockResult struct {
		list []*entity.Product
		err  error
	}
	metricsCh := make(chan metricsResult, 1)
	lowCh := make(chan lowStockResult, 1)

	go func() {
		m, err := uc.analyticsRepo.GetDashboardMetrics(ctx, monthStart, now)
		metricsCh <- metricsResult{m, err}
	}()
	go func() {
		list, err := uc.productRepo.ListLowStock(ctx)
		lowCh <- lowStockResult{list, err}
	}()

	mr := <-metricsCh
	lr := <-lowCh
	if mr.err != nil {
		return nil, mr.err
	}
	if lr.err != nil {
		uc.log.Warn().Err(lr.err).Msg("dashboard: sin detalle de stock bajo")
	}

	m := mr.m
	s := summary{
		Period:             monthStart.Format("01/2006"),
		MonthSales:         m.MonthSales.StringFixed(2),
		PendingReceivables: m.PendingReceivables.StringFixed(2),
		MonthExpenses:      m.MonthExpenses.StringFixed(2),
		LowStockCount:      m.LowStockCount,
		ActiveEmployees:    m.ActiveEmployees,
	}
	for i, p := range lr.list {
		if i == lowStockSamples {
			break
		}
		s.LowStock = append(s.LowStock, lowStockItem{
			SKU: p.SKU, Name: p.Name, Stock: p.CurrentStock.String(), MinStock: p.MinStock.String(),
		})
	}

	return &dto.DashboardResponse{
		MonthSales:         m.MonthSales,
		PendingReceivables: m.PendingReceivables,
		MonthExpenses:      m.MonthExpenses,
		LowStockCount:      m.LowStockCount,
		ActiveEmployees:    m.ActiveEmployees,
		Insights:           uc.Generate(ctx, s),
		GeneratedAt:        now,
	}, nil
}

// Generate serializa payload y pide los insights. Nunca falla: cualquier error devuelve Fallback.
func (uc *UseCase) Generate(ctx context.Context, payload any) string {
	start := time.Now()
	if uc.llm == nil {
		uc.metrics.InsightRequest("disabled", 0)
		return Fallback
	}
	data, err := json.Marshal(payload)
	if err != nil {
		uc.log.Warn().Err(err).Msg("insights: serializar métricas")
		uc.metrics.InsightRequest("error", time.Since(start))
		return Fallback
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	text, err := uc.llm.GenerateInsights(ctx, Instruction, data)
	if err != nil || text == "" {
		uc.log.Warn().Err(err).Dur("took", time.Since(start)).Msg("insights: generador no disponible")
		uc.metrics.InsightRequest("fallback", time.Since(start))
		return Fallback
	}
	uc.metrics.InsightRequest("ok", time.Since(start))
	return text
}
