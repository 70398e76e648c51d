// Package metrics expone métricas de negocio y HTTP en formato Prometheus.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/wymdy/erp-api/internal/application/ports"
)

var _ ports.Metrics = (*Prometheus)(nil)

// Prometheus colectores de negocio (ventas, nómina, insights) y de HTTP.
type Prometheus struct {
	salesTotal      *prometheus.CounterVec
	salesAmount     *prometheus.CounterVec
	payrollTotal    prometheus.Counter
	payrollNet      prometheus.Counter
	mirrorFailures  prometheus.Counter
	insightRequests *prometheus.CounterVec
	insightDuration prometheus.Histogram
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

// New crea y registra los colectores en reg. Registrar dos veces en el mismo registro provoca panic.
func New(namespace string, reg prometheus.Registerer) *Prometheus {
	m := &Prometheus{
		salesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "sales_finalized_total",
			Help: "Ventas finalizadas por tipo y estado.",
		}, []string{"type", "status"}),
		salesAmount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "sales_amount_total",
			Help: "Importe acumulado de ventas finalizadas (MT).",
		}, []string{"type"}),
		payrollTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "payroll_entries_total",
			Help: "Entradas de nómina registradas.",
		}),
		payrollNet: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "payroll_net_amount_total",
			Help: "Salario líquido acumulado (MT).",
		}),
		mirrorFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "payroll_expense_mirror_failures_total",
			Help: "Entradas de nómina cuyo gasto espejo no pudo crearse.",
		}),
		insightRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "insight_requests_total",
			Help: "Peticiones al generador de insights por resultado.",
		}, []string{"outcome"}),
		insightDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "insight_duration_seconds",
			Help:    "Latencia del generador de insights.",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10},
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "http_requests_total",
			Help: "Peticiones HTTP atendidas.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "Latencia de las peticiones HTTP.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(
		m.salesTotal, m.salesAmount, m.payrollTotal, m.payrollNet, m.mirrorFailures,
		m.insightRequests, m.insightDuration, m.httpRequests, m.httpDuration,
	)
	return m
}

func (m *Prometheus) SaleFinalized(saleType, status string, total float64) {
	m.salesTotal.WithLabelValues(saleType, status).Inc()
	m.salesAmount.WithLabelValues(saleType).Add(total)
}

func (m *Prometheus) PayrollSubmitted(net float64) {
	m.payrollTotal.Inc()
	if net > 0 {
		m.payrollNet.Add(net)
	}
}

func (m *Prometheus) ExpenseMirrorFailed() { m.mirrorFailures.Inc() }

func (m *Prometheus) InsightRequest(outcome string, took time.Duration) {
	m.insightRequests.WithLabelValues(outcome).Inc()
	m.insightDuration.Observe(took.Seconds())
}

// Middleware mide cada petición usando la ruta registrada (no la URL) como etiqueta.
func (m *Prometheus) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		m.httpRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}
