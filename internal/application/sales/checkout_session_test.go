package sales_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appsales "github.com/wymdy/erp-api/internal/application/sales"
	"github.com/wymdy/erp-api/internal/domain"
	"github.com/wymdy/erp-api/internal/domain/entity"
	domainsales "github.com/wymdy/erp-api/internal/domain/sales"
)

func TestCheckoutSession_EstadoInicial(t *testing.T) {
	s := appsales.NewCheckoutSession("s1", d("5"), time.Now())
	assert.Equal(t, entity.SaleTypeCash, s.PaymentType)
	assert.Equal(t, 1, s.InstallmentCount)
	assert.False(t, s.CanFinalize())
	assert.True(t, s.Totals().FinalTotal.IsZero())
}

func TestCheckoutSession_SetTermsValida(t *testing.T) {
	s := appsales.NewCheckoutSession("s1", d("0"), time.Now())
	assert.ErrorIs(t, s.SetTerms(appsales.TermsInput{PaymentType: entity.SaleTypeCredit, DiscountAmount: d("-1")}), domain.ErrInvalidInput)
	assert.ErrorIs(t, s.SetTerms(appsales.TermsInput{PaymentType: entity.SaleTypeCredit, DiscountKind: "bogus"}), domain.ErrInvalidInput)
	require.NoError(t, s.SetTerms(appsales.TermsInput{PaymentType: entity.SaleTypeCredit, InstallmentCount: 0}))
	assert.Equal(t, 1, s.InstallmentCount)
	assert.Equal(t, domainsales.DiscountFixed, s.DiscountKind)
}

func TestCheckoutSession_QuitarCliente(t *testing.T) {
	s := appsales.NewCheckoutSession("s1", d("0"), time.Now())
	s.AddItem(entity.Product{ID: "p1", SalePrice: d("100")}, 1)
	require.NoError(t, s.SetTerms(appsales.TermsInput{ClientID: "c1", PaymentType: entity.SaleTypeCash}))
	require.True(t, s.CanFinalize())

	// sin client_id se conserva el cliente
	require.NoError(t, s.SetTerms(appsales.TermsInput{PaymentType: entity.SaleTypeCredit}))
	assert.Equal(t, "c1", s.ClientID)

	require.NoError(t, s.SetTerms(appsales.TermsInput{ClearClient: true, PaymentType: entity.SaleTypeCash}))
	assert.Empty(t, s.ClientID)
	assert.False(t, s.CanFinalize())

	assert.ErrorIs(t, s.SetTerms(appsales.TermsInput{ClientID: "c2", ClearClient: true, PaymentType: entity.SaleTypeCash}),
		domain.ErrInvalidInput)
}

func TestCheckoutSession_ResetYJSON(t *testing.T) {
	s := appsales.NewCheckoutSession("s1", d("2"), time.Now())
	s.AddItem(entity.Product{ID: "p1", SalePrice: d("100")}, 3)
	require.NoError(t, s.SetTerms(appsales.TermsInput{
		ClientID: "c1", PaymentType: entity.SaleTypeCredit,
		DiscountAmount: d("10"), DiscountKind: domainsales.DiscountPercent, InterestRate: d("5"), InstallmentCount: 2,
	}))

	raw, err := json.Marshal(s)
	require.NoError(t, err)
	var back appsales.CheckoutSession
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, s.Totals().FinalTotal.Equal(back.Totals().FinalTotal))
	assert.True(t, d("283.5").Equal(back.Totals().FinalTotal))

	s.Reset(d("2"))
	assert.Equal(t, "s1", s.ID)
	assert.Empty(t, s.ClientID)
	assert.True(t, s.Cart.IsEmpty())
	assert.Equal(t, 1, s.InstallmentCount)
}
