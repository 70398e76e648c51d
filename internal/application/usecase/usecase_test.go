package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wymdy/erp-api/internal/application/dto"
	"github.com/wymdy/erp-api/internal/application/usecase"
	"github.com/wymdy/erp-api/internal/domain"
	"github.com/wymdy/erp-api/internal/domain/entity"
	"github.com/wymdy/erp-api/internal/domain/repository"
	"github.com/wymdy/erp-api/pkg/logger"
)

type memAudit struct {
	repository.AuditRepository
	logs []*entity.AuditLog
}

func (m *memAudit) Create(_ context.Context, l *entity.AuditLog) error {
	m.logs = append(m.logs, l)
	return nil
}

func (m *memAudit) ListRecent(_ context.Context, limit int) ([]*entity.AuditLog, error) {
	if len(m.logs) > limit {
		return m.logs[:limit], nil
	}
	return m.logs, nil
}

type memProducts struct {
	repository.ProductRepository
	bySKU map[string]*entity.Product
}

func (m *memProducts) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	return m.bySKU[sku], nil
}

func (m *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range m.bySKU {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memProducts) Create(_ context.Context, p *entity.Product) error {
	m.bySKU[p.SKU] = p
	return nil
}

func (m *memProducts) Update(context.Context, *entity.Product) error { return nil }

type memClients struct {
	repository.ClientRepository
	byNUIT map[string]*entity.Client
}

func (m *memClients) GetByNUIT(_ context.Context, nuit string) (*entity.Client, error) {
	return m.byNUIT[nuit], nil
}

func (m *memClients) Create(_ context.Context, c *entity.Client) error {
	m.byNUIT[c.NUIT] = c
	return nil
}

type memUsers struct {
	repository.UserRepository
	byID map[string]*entity.User
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) { return m.byID[id], nil }

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.byID[u.ID] = u
	return nil
}

func (m *memUsers) Update(_ context.Context, u *entity.User) error {
	m.byID[u.ID] = u
	return nil
}

func (m *memUsers) UpdateStatus(_ context.Context, id, status string) error {
	m.byID[id].Status = status
	return nil
}

type memExpenses struct {
	repository.ExpenseRepository
	list      []*entity.Expense
	lastLimit int
}

func (m *memExpenses) ListByCategory(_ context.Context, category string, limit int) ([]*entity.Expense, error) {
	m.lastLimit = limit
	var out []*entity.Expense
	for _, x := range m.list {
		if category == "" || x.Category == category {
			out = append(out, x)
		}
	}
	return out, nil
}

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }
func sp(v string) *string        { return &v }

func TestProduct_CreateSKUDuplicado(t *testing.T) {
	audit := &memAudit{}
	uc := usecase.NewProductUseCase(&memProducts{bySKU: map[string]*entity.Product{}},
		usecase.NewAuditUseCase(audit, logger.Nop()))
	ctx := context.Background()
	in := dto.CreateProductRequest{SKU: "SEM-01", Name: "Semente", Unit: "saco",
		SalePrice: d("500"), MinStock: d("10"), CurrentStock: d("4")}

	p, err := uc.Create(ctx, "u1", in)
	require.NoError(t, err)
	assert.True(t, p.LowStock)

	_, err = uc.Create(ctx, "u1", in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, audit.logs, 1)
}

func TestProduct_UpdateNoTocaStock(t *testing.T) {
	repo := &memProducts{bySKU: map[string]*entity.Product{
		"FER": {ID: "p1", SKU: "FER", SalePrice: d("10"), CurrentStock: d("50"), MinStock: d("5")},
	}}
	uc := usecase.NewProductUseCase(repo, usecase.NewAuditUseCase(&memAudit{}, logger.Nop()))
	price := d("12.5")
	res, err := uc.Update(context.Background(), "u1", "p1", dto.UpdateProductRequest{SalePrice: &price})
	require.NoError(t, err)
	assert.True(t, price.Equal(res.SalePrice))
	assert.True(t, d("50").Equal(res.CurrentStock))

	_, err = uc.Update(context.Background(), "u1", "nada", dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_AltaRapida(t *testing.T) {
	uc := usecase.NewClientUseCase(&memClients{byNUIT: map[string]*entity.Client{}},
		usecase.NewAuditUseCase(&memAudit{}, logger.Nop()))
	ctx := context.Background()
	c, err := uc.Create(ctx, "u1", dto.CreateClientRequest{Name: " Machamba Sol ", NUIT: "400123456", Phone: "840000000"})
	require.NoError(t, err)
	assert.Equal(t, "Machamba Sol", c.Name)

	_, err = uc.Create(ctx, "u1", dto.CreateClientRequest{Name: "Outra", NUIT: "400123456"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUser_CreateYEstado(t *testing.T) {
	users := &memUsers{byID: map[string]*entity.User{}}
	audit := &memAudit{}
	uc := usecase.NewUserUseCase(users, usecase.NewAuditUseCase(audit, logger.Nop()))
	ctx := context.Background()

	_, err := uc.Create(ctx, "admin", dto.CreateUserRequest{Name: "Ana", Email: "ana@wymdy.co.mz", Role: "CEO", AccessKey: "123456"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	u, err := uc.Create(ctx, "admin", dto.CreateUserRequest{Name: "Ana", Email: "Ana@Wymdy.co.mz", Role: entity.RoleFinance, AccessKey: "123456"})
	require.NoError(t, err)
	assert.Equal(t, "ana@wymdy.co.mz", u.Email)
	assert.NotEqual(t, "123456", users.byID[u.ID].AccessKeyHash)

	_, err = uc.Create(ctx, "admin", dto.CreateUserRequest{Name: "Ana", Email: "ana@wymdy.co.mz", Role: entity.RoleHR, AccessKey: "654321"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	require.NoError(t, uc.UpdateStatus(ctx, "admin", u.ID, entity.StatusInactive))
	assert.Equal(t, entity.StatusInactive, users.byID[u.ID].Status)
	assert.ErrorIs(t, uc.UpdateStatus(ctx, u.ID, u.ID, entity.StatusInactive), domain.ErrConflict)
	assert.ErrorIs(t, uc.UpdateStatus(ctx, "admin", "fantasma", entity.StatusActive), domain.ErrUserNotFound)

	logs, err := usecase.NewAuditUseCase(audit, logger.Nop()).List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestUser_Update(t *testing.T) {
	users := &memUsers{byID: map[string]*entity.User{
		"admin": {ID: "admin", Name: "Admin", Email: "admin@wymdy.co.mz", Role: entity.RoleAdmin, Status: entity.StatusActive},
		"u2":    {ID: "u2", Name: "Rita", Email: "rita@wymdy.co.mz", Role: entity.RoleSeller, Status: entity.StatusActive, AccessKeyHash: "viejo"},
	}}
	audit := &memAudit{}
	uc := usecase.NewUserUseCase(users, usecase.NewAuditUseCase(audit, logger.Nop()))
	ctx := context.Background()

	res, err := uc.Update(ctx, "admin", "u2", dto.UpdateUserRequest{
		Name: sp(" Rita Cossa "), Role: sp(entity.RoleFinance), AccessKey: sp("nova-chave"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Rita Cossa", res.Name)
	assert.Equal(t, entity.RoleFinance, res.Role)
	assert.Equal(t, "rita@wymdy.co.mz", res.Email, "email omitido no cambia")
	assert.NotEqual(t, "viejo", users.byID["u2"].AccessKeyHash)
	require.Len(t, audit.logs, 1)
	assert.Equal(t, "user.update", audit.logs[0].Action)

	_, err = uc.Update(ctx, "admin", "u2", dto.UpdateUserRequest{Email: sp("ADMIN@wymdy.co.mz")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Update(ctx, "admin", "admin", dto.UpdateUserRequest{Role: sp(entity.RoleSeller)})
	assert.ErrorIs(t, err, domain.ErrConflict, "el admin no se quita su propio rol")

	_, err = uc.Update(ctx, "admin", "fantasma", dto.UpdateUserRequest{Name: sp("X")})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestExpense_ListIncluyeSalarios(t *testing.T) {
	pid := "5f1d8a2e-0000-4c4c-8d8d-00000000aaaa"
	repo := &memExpenses{list: []*entity.Expense{
		{ID: "x1", Category: "Salários", Amount: d("14550"), Description: "Salário João - 10/2026",
			Status: entity.ExpenseStatusPending, PayrollEntryID: &pid},
		{ID: "x2", Category: "Combustível", Amount: d("800"), Description: "Gasóleo", Status: entity.ExpenseStatusPaid},
	}}
	uc := usecase.NewExpenseUseCase(repo)
	ctx := context.Background()

	all, err := uc.List(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, 100, repo.lastLimit)

	salaries, err := uc.List(ctx, "Salários", 10000)
	require.NoError(t, err)
	require.Len(t, salaries, 1)
	assert.Equal(t, 100, repo.lastLimit, "límite fuera de rango vuelve al valor por defecto")
	assert.Equal(t, entity.ExpenseStatusPending, salaries[0].Status)
	require.NotNil(t, salaries[0].PayrollEntryID)
	assert.Equal(t, pid, *salaries[0].PayrollEntryID)
	assert.True(t, d("14550").Equal(salaries[0].Amount))
}
