package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de gasto.
const (
	ExpenseStatusPending  = "pending"
	ExpenseStatusApproved = "approved"
	ExpenseStatusPaid     = "paid"
)

// Expense gasto de la empresa. Los gastos de nómina llevan PayrollEntryID.
type Expense struct {
	ID             string
	Category       string
	Amount         decimal.Decimal
	Date           time.Time
	Provider       string
	Description    string
	Status         string
	UserID         string
	PayrollEntryID *string
	CreatedAt      time.Time
}
