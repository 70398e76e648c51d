package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/wymdy/erp-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetDashboardMetrics agrega en una sola consulta:
//   - ventas confirmadas (no proforma) del período
//   - cuotas pendientes o vencidas (cuentas por cobrar)
//   - gastos del período
//   - productos con stock bajo y funcionarios activos
func (r *AnalyticsRepo) GetDashboardMetrics(ctx context.Context, from, to time.Time) (*repository.DashboardMetrics, error) {
	const query = `
	SELECT
	    (SELECT COALESCE(SUM(total), 0) FROM sales
	      WHERE status <> 'proforma' AND date BETWEEN $1 AND $2)                AS month_sales,
	    (SELECT COALESCE(SUM(amount), 0) FROM installments
	      WHERE status IN ('pending', 'overdue'))                               AS pending_receivables,
	    (SELECT COALESCE(SUM(amount), 0) FROM expenses
	      WHERE date BETWEEN $1 AND $2)                                         AS month_expenses,
	    (SELECT COUNT(*) FROM products WHERE current_stock <= min_stock)        AS low_stock_count,
	    (SELECT COUNT(*) FROM employees WHERE status = 'active')                AS active_employees`

	var m repository.DashboardMetrics
	if err := r.q.QueryRow(ctx, query, from, to).Scan(
		&m.MonthSales, &m.PendingReceivables, &m.MonthExpenses, &m.LowStockCount, &m.ActiveEmployees,
	); err != nil {
		return nil, fmt.Errorf("analytics.GetDashboardMetrics: %w", err)
	}
	return &m, nil
}
