package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollRequest campos crudos de una entrada de nómina. Los valores omitidos cuentan como 0.
// INSS nil = usar el valor por defecto (base × tasa configurada).
type PayrollRequest struct {
	EmployeeID         string           `json:"employee_id" validate:"required,uuid"`
	Month              int              `json:"month" validate:"required,min=1,max=12"`
	Year               int              `json:"year" validate:"required,min=2000,max=2100"`
	BaseSalary         *decimal.Decimal `json:"base_salary" validate:"omitempty,dgte0"`
	FoodAllowance      decimal.Decimal  `json:"food_allowance" validate:"dgte0"`
	TransportAllowance decimal.Decimal  `json:"transport_allowance" validate:"dgte0"`
	Bonus              decimal.Decimal  `json:"bonus" validate:"dgte0"`
	PersonalCommission decimal.Decimal  `json:"personal_commission" validate:"dgte0"`
	TeamCommission     decimal.Decimal  `json:"team_commission" validate:"dgte0"`
	OtherIncome        decimal.Decimal  `json:"other_income" validate:"dgte0"`
	Loans              decimal.Decimal  `json:"loans" validate:"dgte0"`
	INSS               *decimal.Decimal `json:"inss" validate:"omitempty,dgte0"`
	OtherDeductions    decimal.Decimal  `json:"other_deductions" validate:"dgte0"`
}

// PayrollResponse entrada con sus totales derivados.
type PayrollResponse struct {
	ID                 string          `json:"id,omitempty"`
	EmployeeID         string          `json:"employee_id"`
	EmployeeName       string          `json:"employee_name"`
	Month              int             `json:"month"`
	Year               int             `json:"year"`
	BaseSalary         decimal.Decimal `json:"base_salary"`
	FoodAllowance      decimal.Decimal `json:"food_allowance"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	Bonus              decimal.Decimal `json:"bonus"`
	PersonalCommission decimal.Decimal `json:"personal_commission"`
	TeamCommission     decimal.Decimal `json:"team_commission"`
	OtherIncome        decimal.Decimal `json:"other_income"`
	Loans              decimal.Decimal `json:"loans"`
	INSS               decimal.Decimal `json:"inss"`
	OtherDeductions    decimal.Decimal `json:"other_deductions"`
	TotalSubsidies     decimal.Decimal `json:"total_subsidies"`
	TotalIncome        decimal.Decimal `json:"total_income"`
	TotalDeductions    decimal.Decimal `json:"total_deductions"`
	NetSalary          decimal.Decimal `json:"net_salary"`
	ExpenseID          string          `json:"expense_id,omitempty"`
}

// ReconcileResponse resultado de la reconciliación nómina ↔ gasto.
type ReconcileResponse struct {
	Checked  int      `json:"checked"`
	Created  int      `json:"created"`
	Failures []string `json:"failures,omitempty"`
}

// ExpenseResponse gasto en el listado de finanzas. PayrollEntryID sólo en los gastos espejo de nómina.
type ExpenseResponse struct {
	ID             string          `json:"id"`
	Category       string          `json:"category"`
	Amount         decimal.Decimal `json:"amount"`
	Date           time.Time       `json:"date"`
	Provider       string          `json:"provider,omitempty"`
	Description    string          `json:"description"`
	Status         string          `json:"status"`
	PayrollEntryID *string         `json:"payroll_entry_id,omitempty"`
}
