package sales

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wymdy/erp-api/internal/domain/entity"
)

// DefaultInstallmentIntervalDays cadencia fija entre vencimientos (no depende del calendario).
const DefaultInstallmentIntervalDays = 30

// ScheduledInstallment cuota calculada, aún sin persistir.
type ScheduledInstallment struct {
	Number  int
	Amount  decimal.Decimal
	DueDate time.Time
}

// NeedsInstallments indica si una venta genera cronograma: crédito y más de una cuota.
func NeedsInstallments(saleType string, count int) bool {
	return saleType == entity.SaleTypeCredit && count > 1
}

// BuildSchedule divide total en count cuotas iguales con vencimiento cada intervalDays desde from.
// Cada cuota se redondea al céntimo y la última absorbe la diferencia, así Σ cuotas = total.
// Devuelve nil si count < 1.
func BuildSchedule(total decimal.Decimal, count int, from time.Time, intervalDays int) []ScheduledInstallment {
	if count < 1 {
		return nil
	}
	if intervalDays <= 0 {
		intervalDays = DefaultInstallmentIntervalDays
	}

	base := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	share := total.Div(decimal.NewFromInt(int64(count))).Round(2)

	out := make([]ScheduledInstallment, count)
	allocated := decimal.Zero
	for i := 0; i < count; i++ {
		amount := share
		if i == count-1 {
			amount = total.Sub(allocated)
		}
		allocated = allocated.Add(amount)
		out[i] = ScheduledInstallment{
			Number:  i + 1,
			Amount:  amount,
			DueDate: base.AddDate(0, 0, (i+1)*intervalDays),
		}
	}
	return out
}
