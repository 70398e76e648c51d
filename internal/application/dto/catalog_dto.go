package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateClientRequest body para POST /api/clients (alta rápida desde el checkout).
type CreateClientRequest struct {
	Name             string          `json:"name" validate:"required,min=1,max=200"`
	NUIT             string          `json:"nuit" validate:"required,max=30"`
	Phone            string          `json:"phone,omitempty" validate:"max=30"`
	Address          string          `json:"address,omitempty"`
	CreditLimit      decimal.Decimal `json:"credit_limit" validate:"dgte0"`
	MarketingAgentID *string         `json:"marketing_agent_id,omitempty" validate:"omitempty,uuid"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	NUIT             string          `json:"nuit"`
	Phone            string          `json:"phone,omitempty"`
	Address          string          `json:"address,omitempty"`
	CreditLimit      decimal.Decimal `json:"credit_limit"`
	Balance          decimal.Decimal `json:"balance"`
	MarketingAgentID *string         `json:"marketing_agent_id,omitempty"`
}

// ClientContextResponse contexto mostrado al seleccionar un cliente en el checkout.
type ClientContextResponse struct {
	Client             ClientResponse        `json:"client"`
	RecentSales        []SaleSummaryResponse `json:"recent_sales"`
	OutstandingBalance decimal.Decimal       `json:"outstanding_balance"`
}

// EmployeeRequest alta o edición de funcionario.
type EmployeeRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Email         string          `json:"email" validate:"omitempty,email"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	Position      string          `json:"position" validate:"required"`
	Department    string          `json:"department"`
	BankName      string          `json:"bank_name"`
	AccountNumber string          `json:"account_number"`
	NIB           string          `json:"nib"`
	Salary        decimal.Decimal `json:"salary" validate:"dgte0"`
	Status        string          `json:"status" validate:"omitempty,oneof=active inactive"`
	AdmissionDate string          `json:"admission_date" validate:"omitempty,datetime=2006-01-02"`
}

// EmployeeResponse funcionario en respuestas.
type EmployeeResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	Position      string          `json:"position"`
	Department    string          `json:"department"`
	BankName      string          `json:"bank_name"`
	AccountNumber string          `json:"account_number"`
	NIB           string          `json:"nib"`
	Salary        decimal.Decimal `json:"salary"`
	Status        string          `json:"status"`
	AdmissionDate string          `json:"admission_date"`
}

// AuditLogResponse fila del visor de auditoría.
type AuditLogResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entity_id"`
	Before    string    `json:"before,omitempty"`
	After     string    `json:"after,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
