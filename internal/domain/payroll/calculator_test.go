package payroll_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/wymdy/erp-api/internal/domain/payroll"
)

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }

// Folha de João Pedro: base 15000, INSS 450, sin otros campos.
func TestCompute_SoloBaseEINSS(t *testing.T) {
	got := payroll.Compute(payroll.Input{
		BaseSalary: d("15000"),
		INSS:       d("450"),
	})

	assert.True(t, d("0").Equal(got.TotalSubsidies))
	assert.True(t, d("15000").Equal(got.TotalIncome))
	assert.True(t, d("450").Equal(got.TotalDeductions))
	assert.True(t, d("14550").Equal(got.NetSalary))
}

func TestCompute_TodosLosCampos(t *testing.T) {
	in := payroll.Input{
		BaseSalary:         d("10000"),
		FoodAllowance:      d("1500"),
		TransportAllowance: d("800"),
		Bonus:              d("250.50"),
		PersonalCommission: d("1200"),
		TeamCommission:     d("300"),
		OtherIncome:        d("100"),
		Loans:              d("2000"),
		INSS:               d("300"),
		OtherDeductions:    d("49.50"),
	}
	got := payroll.Compute(in)

	assert.True(t, d("4050.50").Equal(got.TotalSubsidies), got.TotalSubsidies.String())
	assert.True(t, d("14150.50").Equal(got.TotalIncome), got.TotalIncome.String())
	assert.True(t, d("2349.50").Equal(got.TotalDeductions), got.TotalDeductions.String())

	want := in.BaseSalary.Add(in.FoodAllowance).Add(in.TransportAllowance).Add(in.Bonus).
		Add(in.PersonalCommission).Add(in.TeamCommission).Add(in.OtherIncome).
		Sub(in.Loans.Add(in.OtherDeductions).Add(in.INSS))
	assert.True(t, want.Equal(got.NetSalary))
}

// El líquido puede quedar negativo; el cálculo no lo corrige.
func TestCompute_LiquidoNegativoNoSeLimita(t *testing.T) {
	got := payroll.Compute(payroll.Input{BaseSalary: d("1000"), Loans: d("5000")})
	assert.True(t, d("-4000").Equal(got.NetSalary))
}

func TestDefaultINSS(t *testing.T) {
	assert.True(t, d("450").Equal(payroll.DefaultINSS(d("15000"), payroll.DefaultINSSRate)))
	assert.True(t, d("37.04").Equal(payroll.DefaultINSS(d("1234.56"), payroll.DefaultINSSRate)))
}

func TestCommission(t *testing.T) {
	assert.True(t, d("1500").Equal(payroll.Commission(d("30000"), d("5"))))
	assert.True(t, payroll.Commission(d("0"), d("5")).IsZero())
}
