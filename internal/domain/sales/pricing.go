// Package sales contiene las reglas puras del checkout: precios, carrito y cronograma de cuotas.
package sales

import (
	"github.com/shopspring/decimal"
	"github.com/wymdy/erp-api/internal/domain/entity"
)

// DiscountKind forma de interpretar Discount.Amount.
type DiscountKind string

const (
	DiscountFixed   DiscountKind = "fixed"
	DiscountPercent DiscountKind = "percent"
)

var hundred = decimal.NewFromInt(100)

// Discount descuento aplicado sobre el subtotal.
type Discount struct {
	Amount decimal.Decimal
	Kind   DiscountKind
}

// Line línea de precio: precio unitario × cantidad.
type Line struct {
	UnitPrice decimal.Decimal
	Quantity  decimal.Decimal
}

// Terms condiciones comerciales del checkout que afectan al total.
type Terms struct {
	Discount     Discount
	PaymentType  string          // cash | credit
	InterestRate decimal.Decimal // porcentaje, solo aplica a crédito
}

// Totals resultado del motor de precios.
type Totals struct {
	Subtotal            decimal.Decimal
	DiscountAmount      decimal.Decimal
	AmountAfterDiscount decimal.Decimal
	InterestAmount      decimal.Decimal
	FinalTotal          decimal.Decimal
}

// Subtotal Σ(precio unitario × cantidad).
func Subtotal(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.UnitPrice.Mul(l.Quantity))
	}
	return total
}

// DiscountAmount importe del descuento: porcentaje del subtotal o valor fijo.
func DiscountAmount(subtotal decimal.Decimal, d Discount) decimal.Decimal {
	if d.Kind == DiscountPercent {
		return subtotal.Mul(d.Amount).Div(hundred)
	}
	return d.Amount
}

// Calculate calcula subtotal, descuento, intereses y total final.
// Un descuento mayor que el subtotal deja el importe en cero, nunca negativo.
func Calculate(lines []Line, terms Terms) Totals {
	subtotal := Subtotal(lines)
	discount := DiscountAmount(subtotal, terms.Discount)

	after := subtotal.Sub(discount)
	if after.IsNegative() {
		after = decimal.Zero
	}

	interest := decimal.Zero
	if terms.PaymentType == entity.SaleTypeCredit {
		interest = after.Mul(terms.InterestRate).Div(hundred)
	}

	return Totals{
		Subtotal:            subtotal,
		DiscountAmount:      discount,
		AmountAfterDiscount: after,
		InterestAmount:      interest,
		FinalTotal:          after.Add(interest),
	}
}
