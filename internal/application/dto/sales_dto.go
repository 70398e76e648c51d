package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StartCheckoutRequest body opcional para POST /api/checkout.
type StartCheckoutRequest struct {
	ClientID string `json:"client_id,omitempty" validate:"omitempty,uuid"`
}

// AddItemRequest body para POST /api/checkout/:id/items.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

// UpdateQuantityRequest body para PATCH /api/checkout/:id/items/:productId.
type UpdateQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// CheckoutTermsRequest body para PUT /api/checkout/:id/terms.
type CheckoutTermsRequest struct {
	ClientID         string          `json:"client_id" validate:"omitempty,uuid"`
	ClearClient      bool            `json:"clear_client" validate:"excluded_with=ClientID"`
	PaymentType      string          `json:"payment_type" validate:"required,oneof=cash credit"`
	DiscountAmount   decimal.Decimal `json:"discount_amount" validate:"dgte0"`
	DiscountKind     string          `json:"discount_kind" validate:"omitempty,oneof=fixed percent"`
	InterestRate     decimal.Decimal `json:"interest_rate" validate:"dgte0"`
	InstallmentCount int             `json:"installment_count" validate:"gte=0,lte=120"`
}

// FinalizeCheckoutRequest body para POST /api/checkout/:id/finalize.
type FinalizeCheckoutRequest struct {
	Proforma bool `json:"proforma"`
}

// CartItemResponse línea del carrito.
type CartItemResponse struct {
	ProductID string          `json:"product_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// TotalsResponse derivados del motor de precios (recalculados en cada lectura).
type TotalsResponse struct {
	Subtotal            decimal.Decimal `json:"subtotal"`
	DiscountAmount      decimal.Decimal `json:"discount_amount"`
	AmountAfterDiscount decimal.Decimal `json:"amount_after_discount"`
	InterestAmount      decimal.Decimal `json:"interest_amount"`
	FinalTotal          decimal.Decimal `json:"final_total"`
}

// CheckoutResponse estado completo del view-model de checkout.
type CheckoutResponse struct {
	ID               string             `json:"id"`
	ClientID         string             `json:"client_id,omitempty"`
	PaymentType      string             `json:"payment_type"`
	DiscountAmount   decimal.Decimal    `json:"discount_amount"`
	DiscountKind     string             `json:"discount_kind"`
	InterestRate     decimal.Decimal    `json:"interest_rate"`
	InstallmentCount int                `json:"installment_count"`
	Items            []CartItemResponse `json:"items"`
	Totals           TotalsResponse     `json:"totals"`
	CanFinalize      bool               `json:"can_finalize"`
}

// InstallmentResponse cuota en respuestas.
type InstallmentResponse struct {
	ID      string          `json:"id"`
	Number  int             `json:"number"`
	Amount  decimal.Decimal `json:"amount"`
	DueDate string          `json:"due_date"`
	Status  string          `json:"status"`
}

// SaleResponse venta creada al finalizar el checkout.
type SaleResponse struct {
	ID           string                `json:"id"`
	ClientID     string                `json:"client_id"`
	Total        decimal.Decimal       `json:"total"`
	Discount     decimal.Decimal       `json:"discount"`
	Type         string                `json:"type"`
	Status       string                `json:"status"`
	Date         string                `json:"date"`
	Installments []InstallmentResponse `json:"installments,omitempty"`
}

// SaleSummaryResponse fila del historial de ventas.
type SaleSummaryResponse struct {
	ID         string          `json:"id"`
	ClientID   string          `json:"client_id"`
	ClientName string          `json:"client_name,omitempty"`
	Total      decimal.Decimal `json:"total"`
	Type       string          `json:"type"`
	Status     string          `json:"status"`
	Date       string          `json:"date"`
}

// CommissionResponse bónus de un agente de marketing.
type CommissionResponse struct {
	AgentID         string          `json:"agent_id"`
	AgentName       string          `json:"agent_name"`
	BonusPercentage decimal.Decimal `json:"bonus_percentage"`
	ClientCount     int             `json:"client_count"`
	TotalSales      decimal.Decimal `json:"total_sales"`
	Commission      decimal.Decimal `json:"commission"`
}

// DashboardResponse métricas del dashboard más el texto de insights.
type DashboardResponse struct {
	MonthSales         decimal.Decimal `json:"month_sales"`
	PendingReceivables decimal.Decimal `json:"pending_receivables"`
	MonthExpenses      decimal.Decimal `json:"month_expenses"`
	LowStockCount      int             `json:"low_stock_count"`
	ActiveEmployees    int             `json:"active_employees"`
	Insights           string          `json:"insights"`
	GeneratedAt        time.Time       `json:"generated_at"`
}
