package sales_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/shopspring/decimal"
	appsales "github.com/wymdy/erp-api/internal/application/sales"
	"github.com/wymdy/erp-api/internal/domain"
	"github.com/wymdy/erp-api/internal/domain/entity"
	"github.com/wymdy/erp-api/internal/domain/repository"
)

// ── Fakes en memoria ──────────────────────────────────────────────────────────

type fakeProducts struct {
	repository.ProductRepository
	byID map[string]*entity.Product
}

func (f *fakeProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return f.byID[id], nil
}

type fakeClients struct {
	repository.ClientRepository
	byID    map[string]*entity.Client
	byAgent map[string][]*entity.Client
}

func (f *fakeClients) GetByID(_ context.Context, id string) (*entity.Client, error) {
	return f.byID[id], nil
}

func (f *fakeClients) ListByAgent(_ context.Context, agentID string) ([]*entity.Client, error) {
	return f.byAgent[agentID], nil
}

// fakeStore guarda JSON para que cada Get devuelva una copia independiente.
type fakeStore struct {
	mu       sync.Mutex
	sessions map[string][]byte
	locked   map[string]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{sessions: map[string][]byte{}, locked: map[string]bool{}}
}

func (f *fakeStore) Lock(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.locked[id] {
		return domain.ErrConflict
	}
	f.locked[id] = true
	return nil
}

func (f *fakeStore) Unlock(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.locked, id)
	return nil
}

func (f *fakeStore) Save(_ context.Context, s *appsales.CheckoutSession) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[s.ID] = raw
	return nil
}

func (f *fakeStore) Get(_ context.Context, id string) (*appsales.CheckoutSession, error) {
	f.mu.Lock()
	raw, ok := f.sessions[id]
	f.mu.Unlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	var s appsales.CheckoutSession
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, id)
	return nil
}

type fakeSales struct {
	repository.SaleRepository
	created   []*entity.Sale
	createErr error
	summaries []*entity.SaleSummary
	lastQuery string
	sums      map[string]decimal.Decimal
}

func (f *fakeSales) Create(_ context.Context, s *entity.Sale) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, s)
	return nil
}

func (f *fakeSales) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	for _, s := range f.created {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSales) List(_ context.Context, filter string, _, _ int) ([]*entity.SaleSummary, error) {
	f.lastQuery = filter
	return f.summaries, nil
}

func (f *fakeSales) ListByClient(_ context.Context, _ string, limit int) ([]*entity.SaleSummary, error) {
	if len(f.summaries) > limit {
		return f.summaries[:limit], nil
	}
	return f.summaries, nil
}

func (f *fakeSales) OutstandingCredit(_ context.Context, _ string) (decimal.Decimal, error) {
	return decimal.RequireFromString("1500"), nil
}

func (f *fakeSales) SumByClients(_ context.Context, ids []string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, id := range ids {
		total = total.Add(f.sums[id])
	}
	return total, nil
}

type fakeInstallments struct {
	repository.InstallmentRepository
	batches [][]*entity.Installment
	err     error
}

func (f *fakeInstallments) CreateBatch(_ context.Context, list []*entity.Installment) error {
	if f.err != nil {
		return f.err
	}
	f.batches = append(f.batches, list)
	return nil
}

func (f *fakeInstallments) ListBySale(_ context.Context, saleID string) ([]*entity.Installment, error) {
	var out []*entity.Installment
	for _, b := range f.batches {
		for _, i := range b {
			if i.SaleID == saleID {
				out = append(out, i)
			}
		}
	}
	return out, nil
}

type fakeAudit struct {
	repository.AuditRepository
	logs []*entity.AuditLog
}

func (f *fakeAudit) Create(_ context.Context, l *entity.AuditLog) error {
	f.logs = append(f.logs, l)
	return nil
}

// fakeTx ejecuta el callback con los mismos repos; si falla descarta lo escrito (rollback).
// Con entered/release no nil la transacción avisa al entrar y espera antes de escribir.
type fakeTx struct {
	sales        *fakeSales
	installments *fakeInstallments
	audit        *fakeAudit
	entered      chan struct{}
	release      chan struct{}
}

func (f *fakeTx) RunSale(_ context.Context, fn func(
	repository.SaleRepository, repository.InstallmentRepository, repository.AuditRepository,
) error) error {
	if f.entered != nil {
		f.entered <- struct{}{}
		<-f.release
	}
	nSales, nBatches, nLogs := len(f.sales.created), len(f.installments.batches), len(f.audit.logs)
	if err := fn(f.sales, f.installments, f.audit); err != nil {
		f.sales.created = f.sales.created[:nSales]
		f.installments.batches = f.installments.batches[:nBatches]
		f.audit.logs = f.audit.logs[:nLogs]
		return err
	}
	return nil
}

type fakeAgents struct {
	repository.MarketingAgentRepository
	list []*entity.MarketingAgent
}

func (f *fakeAgents) List(context.Context) ([]*entity.MarketingAgent, error) { return f.list, nil }

type fakeExporter struct{ rows int }

func (f *fakeExporter) ExportSales(rows []*entity.SaleSummary) ([]byte, error) {
	f.rows = len(rows)
	return []byte("xlsx"), nil
}

var errBoom = errors.New("boom")
