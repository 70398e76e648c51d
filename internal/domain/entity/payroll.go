package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollEntry registro de salario de un funcionario en un mes/año.
// Los cuatro totales son derivados y se guardan desnormalizados.
type PayrollEntry struct {
	ID                 string
	EmployeeID         string
	EmployeeName       string
	Month              int
	Year               int
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
	TotalSubsidies     decimal.Decimal
	TotalIncome        decimal.Decimal
	TotalDeductions    decimal.Decimal
	NetSalary          decimal.Decimal
	UserID             string
	CreatedAt          time.Time
}
