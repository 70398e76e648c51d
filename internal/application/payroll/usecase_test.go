package payroll_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wymdy/erp-api/internal/application/dto"
	apppayroll "github.com/wymdy/erp-api/internal/application/payroll"
	"github.com/wymdy/erp-api/internal/domain"
	"github.com/wymdy/erp-api/internal/domain/entity"
	"github.com/wymdy/erp-api/internal/domain/repository"
	"github.com/wymdy/erp-api/pkg/logger"
)

const empID = "5f1d8a2e-0000-4c4c-8d8d-000000000001"

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }
func dp(v string) *decimal.Decimal {
	x := d(v)
	return &x
}

// ── Fakes ────────────────────────────────────────────────────────────────────

type fakeEmployees struct {
	repository.EmployeeRepository
	byID map[string]*entity.Employee
}

func (f *fakeEmployees) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	return f.byID[id], nil
}

type fakePayroll struct {
	repository.PayrollRepository
	entries   []*entity.PayrollEntry
	orphans   []*entity.PayrollEntry
	expenses  *fakeExpenses
	listCalls int
}

func (f *fakePayroll) Create(_ context.Context, e *entity.PayrollEntry) error {
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakePayroll) GetByEmployeePeriod(_ context.Context, empID string, m, y int) (*entity.PayrollEntry, error) {
	for _, e := range f.entries {
		if e.EmployeeID == empID && e.Month == m && e.Year == y {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakePayroll) ListByPeriod(_ context.Context, m, y int) ([]*entity.PayrollEntry, error) {
	var out []*entity.PayrollEntry
	for _, e := range f.entries {
		if e.Month == m && e.Year == y {
			out = append(out, e)
		}
	}
	return out, nil
}

// ListWithoutExpense respeta cursor y límite como la consulta real; orphans va ordenado por id.
func (f *fakePayroll) ListWithoutExpense(_ context.Context, afterID string, limit int) ([]*entity.PayrollEntry, error) {
	f.listCalls++
	var out []*entity.PayrollEntry
	for _, e := range f.orphans {
		if e.ID <= afterID || f.mirrored(e.ID) {
			continue
		}
		out = append(out, e)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakePayroll) mirrored(id string) bool {
	for _, x := range f.expenses.list {
		if x.PayrollEntryID != nil && *x.PayrollEntryID == id {
			return true
		}
	}
	return false
}

type fakeExpenses struct {
	repository.ExpenseRepository
	list   []*entity.Expense
	failOn string
}

func (f *fakeExpenses) Create(_ context.Context, e *entity.Expense) error {
	if f.failOn != "" && e.PayrollEntryID != nil && *e.PayrollEntryID == f.failOn {
		return assert.AnError
	}
	if f.failOn == "*" {
		return assert.AnError
	}
	f.list = append(f.list, e)
	return nil
}

type fakeAudit struct {
	repository.AuditRepository
	n int
}

func (f *fakeAudit) Create(context.Context, *entity.AuditLog) error { f.n++; return nil }

// fakeTx descarta lo escrito si fn falla.
type fakeTx struct {
	payroll  *fakePayroll
	expenses *fakeExpenses
	audit    *fakeAudit
}

func (f *fakeTx) RunPayroll(_ context.Context, fn func(
	repository.PayrollRepository, repository.ExpenseRepository, repository.AuditRepository,
) error) error {
	np, ne, na := len(f.payroll.entries), len(f.expenses.list), f.audit.n
	if err := fn(f.payroll, f.expenses, f.audit); err != nil {
		f.payroll.entries = f.payroll.entries[:np]
		f.expenses.list = f.expenses.list[:ne]
		f.audit.n = na
		return err
	}
	return nil
}

type fakeSheet struct{ got apppayroll.SalarySheet }

func (f *fakeSheet) GenerateSalarySheet(s apppayroll.SalarySheet) ([]byte, error) {
	f.got = s
	return []byte("%PDF"), nil
}

type fixture struct {
	uc       *apppayroll.UseCase
	payroll  *fakePayroll
	expenses *fakeExpenses
	sheet    *fakeSheet
}

func newFixture() *fixture {
	f := &fixture{expenses: &fakeExpenses{}, sheet: &fakeSheet{}}
	f.payroll = &fakePayroll{expenses: f.expenses}
	emps := &fakeEmployees{byID: map[string]*entity.Employee{
		empID:     {ID: empID, Name: "João Mabunda", Salary: d("15000"), Status: entity.StatusActive},
		"inativo": {ID: "inativo", Name: "Ex", Salary: d("1000"), Status: entity.StatusInactive},
	}}
	tx := &fakeTx{payroll: f.payroll, expenses: f.expenses, audit: &fakeAudit{}}
	f.uc = apppayroll.NewUseCase(emps, f.payroll, tx, f.sheet, nil, apppayroll.Config{
		INSSRate: d("0.03"), ExpenseCategory: "Salários", CompanyName: "WYMDY COMPANY LDA",
	}, logger.Nop())
	return f
}

// ─────────────────────────────────────────────────────────────────────────────
// Vista previa
// ─────────────────────────────────────────────────────────────────────────────

// base 15000 del funcionario, INSS por defecto 3% = 450 → líquido 14550.
func TestPreview_ValoresPorDefectoDelFuncionario(t *testing.T) {
	f := newFixture()
	res, err := f.uc.Preview(context.Background(), dto.PayrollRequest{EmployeeID: empID, Month: 10, Year: 2026})
	require.NoError(t, err)
	assert.True(t, d("15000").Equal(res.BaseSalary))
	assert.True(t, d("450").Equal(res.INSS))
	assert.True(t, d("15000").Equal(res.TotalIncome))
	assert.True(t, d("450").Equal(res.TotalDeductions))
	assert.True(t, d("14550").Equal(res.NetSalary))
	assert.Empty(t, f.payroll.entries)
}

func TestPreview_INSSEditable(t *testing.T) {
	f := newFixture()
	res, err := f.uc.Preview(context.Background(), dto.PayrollRequest{
		EmployeeID: empID, Month: 10, Year: 2026,
		BaseSalary: dp("20000"), INSS: dp("0"), FoodAllowance: d("1500"), Bonus: d("500"), Loans: d("2000"),
	})
	require.NoError(t, err)
	assert.True(t, d("2000").Equal(res.TotalSubsidies))
	assert.True(t, d("22000").Equal(res.TotalIncome))
	assert.True(t, d("20000").Equal(res.NetSalary))
}

func TestPreview_Errores(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.uc.Preview(ctx, dto.PayrollRequest{EmployeeID: "nadie", Month: 1, Year: 2026})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.uc.Preview(ctx, dto.PayrollRequest{EmployeeID: "inativo", Month: 1, Year: 2026})
	assert.ErrorIs(t, err, domain.ErrConflict)
	_, err = f.uc.Preview(ctx, dto.PayrollRequest{EmployeeID: empID, Month: 13, Year: 2026})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ─────────────────────────────────────────────────────────────────────────────
// Envío
// ─────────────────────────────────────────────────────────────────────────────

func TestSubmit_CreaEntradaYGastoEspejo(t *testing.T) {
	f := newFixture()
	res, err := f.uc.Submit(context.Background(), dto.PayrollRequest{EmployeeID: empID, Month: 10, Year: 2026}, "rh-1")
	require.NoError(t, err)
	require.Len(t, f.payroll.entries, 1)
	require.Len(t, f.expenses.list, 1)

	exp := f.expenses.list[0]
	assert.Equal(t, "Salários", exp.Category)
	assert.True(t, d("14550").Equal(exp.Amount))
	assert.Equal(t, "Salário João Mabunda - 10/2026", exp.Description)
	require.NotNil(t, exp.PayrollEntryID)
	assert.Equal(t, res.ID, *exp.PayrollEntryID)
	assert.Equal(t, exp.ID, res.ExpenseID)
}

func TestSubmit_RechazaLiquidoNegativo(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Submit(context.Background(), dto.PayrollRequest{
		EmployeeID: empID, Month: 10, Year: 2026, Loans: d("20000"),
	}, "rh-1")
	assert.ErrorIs(t, err, domain.ErrNegativeNetSalary)
	assert.Empty(t, f.payroll.entries)
}

func TestSubmit_DuplicadoEnElPeriodo(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	req := dto.PayrollRequest{EmployeeID: empID, Month: 10, Year: 2026}
	_, err := f.uc.Submit(ctx, req, "rh-1")
	require.NoError(t, err)
	_, err = f.uc.Submit(ctx, req, "rh-1")
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestSubmit_FalloDelGastoRevierteLaEntrada(t *testing.T) {
	f := newFixture()
	f.expenses.failOn = "*"
	_, err := f.uc.Submit(context.Background(), dto.PayrollRequest{EmployeeID: empID, Month: 10, Year: 2026}, "rh-1")
	require.Error(t, err)
	assert.Empty(t, f.payroll.entries, "sin gasto no queda nómina huérfana")
}

// ─────────────────────────────────────────────────────────────────────────────
// Reconciliación y hoja
// ─────────────────────────────────────────────────────────────────────────────

func TestReconcile_CreaGastosFaltantes(t *testing.T) {
	f := newFixture()
	f.payroll.orphans = []*entity.PayrollEntry{
		{ID: "p1", EmployeeName: "A", Month: 9, Year: 2026, NetSalary: d("1000")},
		{ID: "p2", EmployeeName: "B", Month: 9, Year: 2026, NetSalary: d("2000")},
	}
	f.expenses.failOn = "p2"
	res, err := f.uc.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Checked)
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, []string{"p2"}, res.Failures)
	require.Len(t, f.expenses.list, 1)
	assert.Equal(t, "Salário A - 09/2026", f.expenses.list[0].Description)
}

func TestReconcile_RecorreTodosLosLotes(t *testing.T) {
	f := newFixture()
	for i := 1; i <= 250; i++ {
		f.payroll.orphans = append(f.payroll.orphans, &entity.PayrollEntry{
			ID: fmt.Sprintf("p%04d", i), EmployeeName: "Func", Month: 8, Year: 2026, NetSalary: d("500"),
		})
	}
	// la primera huérfana falla siempre y no debe bloquear las siguientes
	f.expenses.failOn = "p0001"

	res, err := f.uc.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 250, res.Checked)
	assert.Equal(t, 249, res.Created)
	assert.Equal(t, []string{"p0001"}, res.Failures)
	assert.Len(t, f.expenses.list, 249)
	assert.Equal(t, 3, f.payroll.listCalls, "100 + 100 + 50")

	rest, err := f.payroll.ListWithoutExpense(context.Background(), "", 1000)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "p0001", rest[0].ID)
}

func TestReconcile_LoteExactoTerminaConConsultaVacia(t *testing.T) {
	f := newFixture()
	for i := 1; i <= 100; i++ {
		f.payroll.orphans = append(f.payroll.orphans, &entity.PayrollEntry{
			ID: fmt.Sprintf("p%04d", i), EmployeeName: "Func", Month: 8, Year: 2026, NetSalary: d("500"),
		})
	}
	res, err := f.uc.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 100, res.Created)
	assert.Equal(t, 2, f.payroll.listCalls)
}

func TestSalarySheet(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.uc.Submit(ctx, dto.PayrollRequest{EmployeeID: empID, Month: 10, Year: 2026}, "rh-1")
	require.NoError(t, err)
	data, err := f.uc.SalarySheet(ctx, 10, 2026)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data)
	assert.Equal(t, "WYMDY COMPANY LDA", f.sheet.got.CompanyName)
	assert.Len(t, f.sheet.got.Entries, 1)
}
