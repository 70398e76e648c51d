package sales

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wymdy/erp-api/internal/domain"
	"github.com/wymdy/erp-api/internal/domain/entity"
	domainsales "github.com/wymdy/erp-api/internal/domain/sales"
)

// CheckoutSession view-model de una pantalla de checkout. Se crea vacía por sesión
// y solo guarda entradas; los totales se derivan en cada lectura.
type CheckoutSession struct {
	ID               string                   `json:"id"`
	ClientID         string                   `json:"client_id,omitempty"`
	Cart             domainsales.Cart         `json:"cart"`
	PaymentType      string                   `json:"payment_type"`
	DiscountAmount   decimal.Decimal          `json:"discount_amount"`
	DiscountKind     domainsales.DiscountKind `json:"discount_kind"`
	InterestRate     decimal.Decimal          `json:"interest_rate"`
	InstallmentCount int                      `json:"installment_count"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

// TermsInput cambios de condiciones comerciales.
type TermsInput struct {
	// ClientID vacío conserva el cliente actual; ClearClient lo quita.
	ClientID         string
	ClearClient      bool
	PaymentType      string
	DiscountAmount   decimal.Decimal
	DiscountKind     domainsales.DiscountKind
	InterestRate     decimal.Decimal
	InstallmentCount int
}

// NewCheckoutSession sesión en blanco: contado, sin descuento, una cuota.
func NewCheckoutSession(id string, defaultInterest decimal.Decimal, now time.Time) *CheckoutSession {
	return &CheckoutSession{
		ID:               id,
		PaymentType:      entity.SaleTypeCash,
		DiscountKind:     domainsales.DiscountFixed,
		InterestRate:     defaultInterest,
		InstallmentCount: 1,
		UpdatedAt:        now,
	}
}

// AddItem agrega el producto (fusiona si ya está).
func (s *CheckoutSession) AddItem(p entity.Product, qty int) {
	s.Cart.Add(p, qty)
}

// UpdateQuantity aplica delta sin bajar de 1.
func (s *CheckoutSession) UpdateQuantity(productID string, delta int) error {
	if !s.Cart.UpdateQuantity(productID, delta) {
		return domain.ErrNotFound
	}
	return nil
}

// RemoveItem elimina la línea.
func (s *CheckoutSession) RemoveItem(productID string) error {
	if !s.Cart.Remove(productID) {
		return domain.ErrNotFound
	}
	return nil
}

// SetTerms reemplaza cliente, forma de pago, descuento, juros y número de cuotas.
func (s *CheckoutSession) SetTerms(in TermsInput) error {
	if in.PaymentType != entity.SaleTypeCash && in.PaymentType != entity.SaleTypeCredit {
		return domain.ErrInvalidInput
	}
	if in.DiscountAmount.IsNegative() || in.InterestRate.IsNegative() || in.InstallmentCount < 0 {
		return domain.ErrInvalidInput
	}
	kind := in.DiscountKind
	if kind == "" {
		kind = domainsales.DiscountFixed
	}
	if kind != domainsales.DiscountFixed && kind != domainsales.DiscountPercent {
		return domain.ErrInvalidInput
	}
	if in.ClearClient && in.ClientID != "" {
		return domain.ErrInvalidInput
	}
	count := in.InstallmentCount
	if count == 0 {
		count = 1
	}
	switch {
	case in.ClearClient:
		s.ClientID = ""
	case in.ClientID != "":
		s.ClientID = in.ClientID
	}
	s.PaymentType = in.PaymentType
	s.DiscountAmount = in.DiscountAmount
	s.DiscountKind = kind
	s.InterestRate = in.InterestRate
	s.InstallmentCount = count
	return nil
}

// Terms condiciones para el motor de precios.
func (s *CheckoutSession) Terms() domainsales.Terms {
	return domainsales.Terms{
		Discount:     domainsales.Discount{Amount: s.DiscountAmount, Kind: s.DiscountKind},
		PaymentType:  s.PaymentType,
		InterestRate: s.InterestRate,
	}
}

// Totals recalcula subtotal, descuento, juros y total final con el estado actual.
func (s *CheckoutSession) Totals() domainsales.Totals {
	return domainsales.Calculate(s.Cart.Lines(), s.Terms())
}

// CanFinalize cliente seleccionado y carrito con líneas.
func (s *CheckoutSession) CanFinalize() bool {
	return s.ClientID != "" && !s.Cart.IsEmpty()
}

// precondition devuelve el error correspondiente a la primera precondición incumplida.
func (s *CheckoutSession) precondition() error {
	if s.ClientID == "" {
		return domain.ErrClientRequired
	}
	if s.Cart.IsEmpty() {
		return domain.ErrEmptyCart
	}
	return nil
}

// Reset vuelve al estado inicial conservando el ID.
func (s *CheckoutSession) Reset(defaultInterest decimal.Decimal) {
	*s = *NewCheckoutSession(s.ID, defaultInterest, s.UpdatedAt)
}
