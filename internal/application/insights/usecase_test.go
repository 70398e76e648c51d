package insights_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wymdy/erp-api/internal/application/insights"
	"github.com/wymdy/erp-api/internal/domain/entity"
	"github.com/wymdy/erp-api/internal/domain/repository"
	"github.com/wymdy/erp-api/pkg/logger"
)

type fakeAnalytics struct {
	m   *repository.DashboardMetrics
	err error
}

func (f *fakeAnalytics) GetDashboardMetrics(context.Context, time.Time, time.Time) (*repository.DashboardMetrics, error) {
	return f.m, f.err
}

type fakeProducts struct {
	repository.ProductRepository
}

func (fakeProducts) ListLowStock(context.Context) ([]*entity.Product, error) {
	return []*entity.Product{{SKU: "SEM-01", Name: "Semente", CurrentStock: decimal.NewFromInt(2), MinStock: decimal.NewFromInt(10)}}, nil
}

type fakeLLM struct {
	text        string
	err         error
	block       bool
	instruction string
	data        string
}

func (f *fakeLLM) GenerateInsights(ctx context.Context, instruction string, data []byte) (string, error) {
	f.instruction, f.data = instruction, string(data)
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.text, f.err
}

func metrics() *fakeAnalytics {
	return &fakeAnalytics{m: &repository.DashboardMetrics{
		MonthSales: decimal.NewFromInt(120000), PendingReceivables: decimal.NewFromInt(30000),
		MonthExpenses: decimal.NewFromInt(45000), LowStockCount: 1, ActiveEmployees: 8,
	}}
}

func TestDashboard_ConInsights(t *testing.T) {
	llm := &fakeLLM{text: "1. Repor sementes."}
	uc := insights.NewUseCase(metrics(), fakeProducts{}, llm, nil, logger.Nop())

	res, err := uc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1. Repor sementes.", res.Insights)
	assert.Equal(t, 8, res.ActiveEmployees)
	assert.Equal(t, insights.Instruction, llm.instruction)
	assert.Contains(t, llm.data, `"month_sales":"120000.00"`)
	assert.Contains(t, llm.data, "SEM-01")
}

func TestDashboard_FalloDelGeneradorUsaFallback(t *testing.T) {
	uc := insights.NewUseCase(metrics(), fakeProducts{}, &fakeLLM{err: errors.New("quota")}, nil, logger.Nop())
	res, err := uc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, insights.Fallback, res.Insights)
}

func TestDashboard_TimeoutUsaFallback(t *testing.T) {
	uc := insights.NewUseCase(metrics(), fakeProducts{}, &fakeLLM{block: true}, nil, logger.Nop()).
		WithTimeout(20 * time.Millisecond)
	res, err := uc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, insights.Fallback, res.Insights)
}

func TestDashboard_SinGenerador(t *testing.T) {
	uc := insights.NewUseCase(metrics(), fakeProducts{}, nil, nil, logger.Nop())
	res, err := uc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, insights.Fallback, res.Insights)
}

func TestDashboard_ErrorDeMetricasSePropaga(t *testing.T) {
	uc := insights.NewUseCase(&fakeAnalytics{err: errors.New("db caída")}, fakeProducts{}, &fakeLLM{text: "x"}, nil, logger.Nop())
	_, err := uc.Dashboard(context.Background())
	assert.Error(t, err)
}
