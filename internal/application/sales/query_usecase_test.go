package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wymdy/erp-api/internal/application/dto"
	appsales "github.com/wymdy/erp-api/internal/application/sales"
	"github.com/wymdy/erp-api/internal/domain"
	"github.com/wymdy/erp-api/internal/domain/entity"
)

func strp(s string) *string { return &s }

func newQuery(s *fakeSales, c *fakeClients, a *fakeAgents, x *fakeExporter) *appsales.QueryUseCase {
	return appsales.NewQueryUseCase(s, &fakeInstallments{}, c, a, x)
}

func TestHistory_Filtros(t *testing.T) {
	s := &fakeSales{}
	uc := newQuery(s, &fakeClients{}, &fakeAgents{}, &fakeExporter{})
	ctx := context.Background()

	_, err := uc.History(ctx, "", dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, appsales.FilterAll, s.lastQuery)

	_, err = uc.History(ctx, "confirmed", dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, appsales.FilterConfirmed, s.lastQuery)

	_, err = uc.History(ctx, "borradores", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClientContext(t *testing.T) {
	now := time.Now()
	s := &fakeSales{summaries: []*entity.SaleSummary{
		{ID: "s4", Total: d("10"), Date: now}, {ID: "s3", Total: d("20"), Date: now},
		{ID: "s2", Total: d("30"), Date: now}, {ID: "s1", Total: d("40"), Date: now},
	}}
	c := &fakeClients{byID: map[string]*entity.Client{clientID: {ID: clientID, Name: "Machamba Sol"}}}
	uc := newQuery(s, c, &fakeAgents{}, &fakeExporter{})

	res, err := uc.ClientContext(context.Background(), clientID)
	require.NoError(t, err)
	assert.Len(t, res.RecentSales, 3)
	assert.True(t, d("1500").Equal(res.OutstandingBalance))

	_, err = uc.ClientContext(context.Background(), "otro")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// bónus = Σ ventas de los clientes del agente × porcentaje / 100.
func TestCommissions(t *testing.T) {
	s := &fakeSales{sums: map[string]decimal.Decimal{"c1": d("10000"), "c2": d("5000"), "c3": d("999")}}
	c := &fakeClients{byAgent: map[string][]*entity.Client{
		"a1": {{ID: "c1", MarketingAgentID: strp("a1")}, {ID: "c2", MarketingAgentID: strp("a1")}},
	}}
	a := &fakeAgents{list: []*entity.MarketingAgent{
		{ID: "a1", Name: "Ana", BonusPercentage: d("2.5")},
		{ID: "a2", Name: "Rui", BonusPercentage: d("3")},
	}}
	uc := newQuery(s, c, a, &fakeExporter{})

	res, err := uc.Commissions(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, 2, res[0].ClientCount)
	assert.True(t, d("15000").Equal(res[0].TotalSales))
	assert.True(t, d("375").Equal(res[0].Commission))
	assert.True(t, res[1].Commission.IsZero())
}

func TestExport(t *testing.T) {
	s := &fakeSales{summaries: []*entity.SaleSummary{{ID: "s1"}, {ID: "s2"}}}
	x := &fakeExporter{}
	uc := newQuery(s, &fakeClients{}, &fakeAgents{}, x)
	data, err := uc.Export(context.Background(), "proforma")
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), data)
	assert.Equal(t, 2, x.rows)
	assert.Equal(t, appsales.FilterProforma, s.lastQuery)
}
