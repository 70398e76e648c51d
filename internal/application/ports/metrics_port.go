package ports

import "time"

// Metrics puerto de métricas de negocio. El adaptador Prometheus vive en infrastructure/metrics.
type Metrics interface {
	SaleFinalized(saleType, status string, total float64)
	PayrollSubmitted(net float64)
	ExpenseMirrorFailed()
	InsightRequest(outcome string, took time.Duration)
}

// NopMetrics implementación vacía para tests y para cuando no hay registro.
type NopMetrics struct{}

func (NopMetrics) SaleFinalized(string, string, float64) {}
func (NopMetrics) PayrollSubmitted(float64) {}
func (NopMetrics) ExpenseMirrorFailed() {}
func (NopMetrics) InsightRequest(string, time.Duration) {}
