// Package payroll contiene el cálculo puro de la folha salarial.
package payroll

import (
	"github.com/shopspring/decimal"
)

// DefaultINSSRate contribución estatutaria por defecto sobre el salario base (3%).
var DefaultINSSRate = decimal.NewFromFloat(0.03)

// Input los campos crudos editables de una entrada de nómina.
type Input struct {
	BaseSalary         decimal.Decimal
	FoodAllowance      decimal.Decimal
	TransportAllowance decimal.Decimal
	Bonus              decimal.Decimal
	PersonalCommission decimal.Decimal
	TeamCommission     decimal.Decimal
	OtherIncome        decimal.Decimal
	Loans              decimal.Decimal
	INSS               decimal.Decimal
	OtherDeductions    decimal.Decimal
}

// Totals los cuatro derivados; nunca se editan por separado.
type Totals struct {
	TotalSubsidies  decimal.Decimal
	TotalIncome     decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
}

// Compute agrega ingresos y deducciones. NetSalary no se limita a cero.
func Compute(in Input) Totals {
	subsidies := in.FoodAllowance.
		Add(in.TransportAllowance).
		Add(in.Bonus).
		Add(in.PersonalCommission).
		Add(in.TeamCommission)
	income := in.BaseSalary.Add(subsidies).Add(in.OtherIncome)
	deductions := in.Loans.Add(in.OtherDeductions).Add(in.INSS)

	return Totals{
		TotalSubsidies:  subsidies,
		TotalIncome:     income,
		TotalDeductions: deductions,
		NetSalary:       income.Sub(deductions),
	}
}

// DefaultINSS contribución sugerida al elegir un funcionario: base × rate.
func DefaultINSS(baseSalary, rate decimal.Decimal) decimal.Decimal {
	return baseSalary.Mul(rate).Round(2)
}

// Commission bónus de un agente: Σ ventas × porcentaje / 100.
func Commission(totalSales, bonusPercentage decimal.Decimal) decimal.Decimal {
	return totalSales.Mul(bonusPercentage).Div(decimal.NewFromInt(100))
}
