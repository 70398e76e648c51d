package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee funcionario; fuente del salario base y del INSS por defecto en la nómina.
type Employee struct {
	ID            string
	UserID        *string
	Name          string
	Email         string
	Phone         string
	Address       string
	Position      string
	Department    string
	BankName      string
	AccountNumber string
	NIB           string
	Salary        decimal.Decimal
	Status        string // active, inactive
	AdmissionDate time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsActive indica si el funcionario puede entrar en la folha.
func (e *Employee) IsActive() bool {
	return e.Status == StatusActive
}

// Estados comunes de registros maestros.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)
