package sales_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wymdy/erp-api/internal/domain/entity"
	"github.com/wymdy/erp-api/internal/domain/sales"
)

var today = time.Date(2026, 10, 17, 15, 4, 5, 0, time.UTC)

func TestBuildSchedule_TresCuotasIguales(t *testing.T) {
	got := sales.BuildSchedule(d("3000"), 3, today, 30)
	require.Len(t, got, 3)

	base := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	for i, inst := range got {
		assert.Equal(t, i+1, inst.Number)
		assert.True(t, d("1000").Equal(inst.Amount))
		assert.Equal(t, base.AddDate(0, 0, 30*(i+1)), inst.DueDate)
	}
}

func TestBuildSchedule_UltimaAbsorbeRedondeo(t *testing.T) {
	total := d("1000")
	got := sales.BuildSchedule(total, 3, today, 30)
	require.Len(t, got, 3)

	assert.True(t, d("333.33").Equal(got[0].Amount))
	assert.True(t, d("333.33").Equal(got[1].Amount))
	assert.True(t, d("333.34").Equal(got[2].Amount))

	sum := decimal.Zero
	share := total.Div(d("3"))
	for _, inst := range got {
		sum = sum.Add(inst.Amount)
		assert.True(t, inst.Amount.Sub(share).Abs().LessThanOrEqual(d("0.02")))
	}
	assert.True(t, total.Equal(sum))
}

func TestBuildSchedule_VencimientosCrecientes(t *testing.T) {
	got := sales.BuildSchedule(d("945"), 12, today, 30)
	require.Len(t, got, 12)
	for i := 1; i < len(got); i++ {
		assert.Equal(t, 30*24*time.Hour, got[i].DueDate.Sub(got[i-1].DueDate))
	}
}

func TestBuildSchedule_Bordes(t *testing.T) {
	assert.Nil(t, sales.BuildSchedule(d("100"), 0, today, 30))

	one := sales.BuildSchedule(d("100"), 1, today, 0)
	require.Len(t, one, 1)
	assert.True(t, d("100").Equal(one[0].Amount))
	assert.Equal(t, time.Date(2026, 11, 16, 0, 0, 0, 0, time.UTC), one[0].DueDate)
}

func TestNeedsInstallments(t *testing.T) {
	assert.True(t, sales.NeedsInstallments(entity.SaleTypeCredit, 2))
	assert.False(t, sales.NeedsInstallments(entity.SaleTypeCredit, 1))
	assert.False(t, sales.NeedsInstallments(entity.SaleTypeCash, 6))
	assert.False(t, sales.NeedsInstallments(entity.SaleTypeQuote, 6))
}
