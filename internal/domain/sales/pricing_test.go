package sales_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/wymdy/erp-api/internal/domain/entity"
	"github.com/wymdy/erp-api/internal/domain/sales"
)

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func TestSubtotal_DosLineas(t *testing.T) {
	lines := []sales.Line{
		{UnitPrice: d("500"), Quantity: d("2")},
		{UnitPrice: d("300"), Quantity: d("1")},
	}
	assert.True(t, d("1300").Equal(sales.Subtotal(lines)))
}

// subtotal 1000, 10% de descuento y 5% de juros a crédito → 945.
func TestCalculate_CreditoConDescuentoPorcentual(t *testing.T) {
	lines := []sales.Line{{UnitPrice: d("1000"), Quantity: d("1")}}
	got := sales.Calculate(lines, sales.Terms{
		Discount:     sales.Discount{Amount: d("10"), Kind: sales.DiscountPercent},
		PaymentType:  entity.SaleTypeCredit,
		InterestRate: d("5"),
	})

	assert.True(t, d("1000").Equal(got.Subtotal))
	assert.True(t, d("100").Equal(got.DiscountAmount))
	assert.True(t, d("900").Equal(got.AmountAfterDiscount))
	assert.True(t, d("45").Equal(got.InterestAmount))
	assert.True(t, d("945").Equal(got.FinalTotal))
}

func TestCalculate_ContadoIgnoraJuros(t *testing.T) {
	lines := []sales.Line{{UnitPrice: d("1000"), Quantity: d("1")}}
	got := sales.Calculate(lines, sales.Terms{
		Discount:     sales.Discount{Amount: d("50"), Kind: sales.DiscountFixed},
		PaymentType:  entity.SaleTypeCash,
		InterestRate: d("12"),
	})

	assert.True(t, d("50").Equal(got.DiscountAmount))
	assert.True(t, got.InterestAmount.IsZero())
	assert.True(t, d("950").Equal(got.FinalTotal))
}

func TestCalculate_DescuentoMayorQueSubtotalQuedaEnCero(t *testing.T) {
	lines := []sales.Line{{UnitPrice: d("100"), Quantity: d("2")}}

	fixed := sales.Calculate(lines, sales.Terms{
		Discount:     sales.Discount{Amount: d("500"), Kind: sales.DiscountFixed},
		PaymentType:  entity.SaleTypeCredit,
		InterestRate: d("10"),
	})
	assert.True(t, fixed.AmountAfterDiscount.IsZero())
	assert.True(t, fixed.InterestAmount.IsZero())
	assert.True(t, fixed.FinalTotal.IsZero())

	pct := sales.Calculate(lines, sales.Terms{
		Discount: sales.Discount{Amount: d("150"), Kind: sales.DiscountPercent},
	})
	assert.True(t, d("300").Equal(pct.DiscountAmount))
	assert.True(t, pct.AmountAfterDiscount.IsZero())
}

func TestCalculate_CarritoVacio(t *testing.T) {
	got := sales.Calculate(nil, sales.Terms{PaymentType: entity.SaleTypeCredit, InterestRate: d("5")})
	assert.True(t, got.Subtotal.IsZero())
	assert.True(t, got.FinalTotal.IsZero())
}

// finalTotal = amountAfterDiscount + interestAmount para una rejilla de entradas.
func TestCalculate_Propiedades(t *testing.T) {
	subtotals := []string{"0", "1", "99.99", "1000", "25000.5"}
	discounts := []sales.Discount{
		{Amount: d("0"), Kind: sales.DiscountFixed},
		{Amount: d("10"), Kind: sales.DiscountPercent},
		{Amount: d("100"), Kind: sales.DiscountPercent},
		{Amount: d("2000"), Kind: sales.DiscountFixed},
	}
	rates := []string{"0", "2.5", "5"}
	types := []string{entity.SaleTypeCash, entity.SaleTypeCredit}

	for _, s := range subtotals {
		for _, disc := range discounts {
			for _, r := range rates {
				for _, ty := range types {
					lines := []sales.Line{{UnitPrice: d(s), Quantity: d("1")}}
					got := sales.Calculate(lines, sales.Terms{Discount: disc, PaymentType: ty, InterestRate: d(r)})

					assert.False(t, got.AmountAfterDiscount.IsNegative())
					assert.True(t, got.FinalTotal.Equal(got.AmountAfterDiscount.Add(got.InterestAmount)))
					if ty == entity.SaleTypeCash {
						assert.True(t, got.InterestAmount.IsZero())
					} else {
						want := got.AmountAfterDiscount.Mul(d(r)).Div(d("100"))
						assert.True(t, want.Equal(got.InterestAmount))
					}
				}
			}
		}
	}
}
