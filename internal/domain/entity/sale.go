package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de venta.
const (
	SaleTypeCash   = "cash"
	SaleTypeCredit = "credit"
	SaleTypeQuote  = "quote" // proforma, no vinculante
)

// Estados de venta.
const (
	SaleStatusPending  = "pending"
	SaleStatusPartial  = "partial"
	SaleStatusPaid     = "paid"
	SaleStatusOverdue  = "overdue"
	SaleStatusProforma = "proforma"
)

// Sale cabecera de venta. Total es el total final (tras descuento e intereses) y nunca es negativo.
type Sale struct {
	ID        string
	ClientID  string
	Total     decimal.Decimal
	Discount  decimal.Decimal // importe de descuento aplicado
	Type      string
	Status    string
	Date      time.Time
	UserID    string
	CreatedAt time.Time
}

// IsProforma indica si el documento es una cotización.
func (s *Sale) IsProforma() bool {
	return s.Status == SaleStatusProforma
}

// SaleSummary fila del historial de ventas (incluye el nombre del cliente).
type SaleSummary struct {
	ID         string
	ClientID   string
	ClientName string
	Total      decimal.Decimal
	Type       string
	Status     string
	Date       time.Time
}

// Estados de cuota.
const (
	InstallmentStatusPending = "pending"
	InstallmentStatusPaid    = "paid"
	InstallmentStatusOverdue = "overdue"
)

// Installment una cuota del cronograma de una venta a crédito.
type Installment struct {
	ID      string
	SaleID  string
	Number  int
	Amount  decimal.Decimal
	DueDate time.Time
	Status  string
	PaidAt  *time.Time
}
