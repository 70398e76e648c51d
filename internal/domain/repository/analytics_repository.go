package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardMetrics agregados crudos para el dashboard y el generador de insights.
type DashboardMetrics struct {
	MonthSales         decimal.Decimal // ventas confirmadas del período
	PendingReceivables decimal.Decimal // cuotas pendientes o vencidas
	MonthExpenses      decimal.Decimal
	LowStockCount      int
	ActiveEmployees    int
}

// AnalyticsRepository consultas read-only para el dashboard.
type AnalyticsRepository interface {
	GetDashboardMetrics(ctx context.Context, from, to time.Time) (*DashboardMetrics, error)
}
