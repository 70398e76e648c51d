package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wymdy/erp-api/internal/domain"
	"github.com/wymdy/erp-api/internal/domain/entity"
	"github.com/wymdy/erp-api/internal/domain/repository"
)

var (
	_ repository.EmployeeRepository = (*EmployeeRepo)(nil)
	_ repository.PayrollRepository  = (*PayrollRepo)(nil)
	_ repository.ExpenseRepository  = (*ExpenseRepo)(nil)
)

// EmployeeRepo funcionarios.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `id, user_id::text, name, email, phone, address, position, department, bank_name,
	account_number, nib, salary, status, admission_date, created_at, updated_at`

func scanEmployee(row rowScanner) (*entity.Employee, error) {
	var e entity.Employee
	if err := row.Scan(&e.ID, &e.UserID, &e.Name, &e.Email, &e.Phone, &e.Address, &e.Position, &e.Department,
		&e.BankName, &e.AccountNumber, &e.NIB, &e.Salary, &e.Status, &e.AdmissionDate, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

// Create persiste un funcionario.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO employees (id, user_id, name, email, phone, address, position, department, bank_name,
			account_number, nib, salary, status, admission_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		e.ID, nullString(e.UserID), e.Name, e.Email, e.Phone, e.Address, e.Position, e.Department, e.BankName,
		e.AccountNumber, e.NIB, e.Salary, e.Status, e.AdmissionDate, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert employee", err)
	}
	return nil
}

// GetByID obtiene un funcionario. nil si no existe.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	e, err := scanEmployee(r.q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// Update reemplaza los datos editables.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE employees SET name = $2, email = $3, phone = $4, address = $5, position = $6, department = $7,
			bank_name = $8, account_number = $9, nib = $10, salary = $11, status = $12, admission_date = $13, updated_at = $14
		WHERE id = $1`,
		e.ID, e.Name, e.Email, e.Phone, e.Address, e.Position, e.Department,
		e.BankName, e.AccountNumber, e.NIB, e.Salary, e.Status, e.AdmissionDate, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List filtra por nombre o cargo.
func (r *EmployeeRepo) List(ctx context.Context, search string) ([]*entity.Employee, error) {
	rows, err := r.q.Query(ctx, `SELECT `+employeeColumns+` FROM employees
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR position ILIKE '%' || $1 || '%'
		ORDER BY name`, search)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// PayrollRepo entradas de nómina.
type PayrollRepo struct {
	q Querier
}

// NewPayrollRepository construye el adaptador.
func NewPayrollRepository(q Querier) *PayrollRepo {
	return &PayrollRepo{q: q}
}

const payrollColumns = `p.id, p.employee_id, p.employee_name, p.month, p.year, p.base_salary, p.food_allowance,
	p.transport_allowance, p.bonus, p.personal_commission, p.team_commission, p.other_income, p.loans, p.inss,
	p.other_deductions, p.total_subsidies, p.total_income, p.total_deductions, p.net_salary, p.user_id, p.created_at`

func scanPayroll(row rowScanner) (*entity.PayrollEntry, error) {
	var e entity.PayrollEntry
	if err := row.Scan(&e.ID, &e.EmployeeID, &e.EmployeeName, &e.Month, &e.Year, &e.BaseSalary, &e.FoodAllowance,
		&e.TransportAllowance, &e.Bonus, &e.PersonalCommission, &e.TeamCommission, &e.OtherIncome, &e.Loans, &e.INSS,
		&e.OtherDeductions, &e.TotalSubsidies, &e.TotalIncome, &e.TotalDeductions, &e.NetSalary, &e.UserID, &e.CreatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

// Create persiste la entrada con los totales desnormalizados. Mismo funcionario y período → ErrDuplicate.
func (r *PayrollRepo) Create(ctx context.Context, e *entity.PayrollEntry) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO payroll_entries (id, employee_id, employee_name, month, year, base_salary, food_allowance,
			transport_allowance, bonus, personal_commission, team_commission, other_income, loans, inss,
			other_deductions, total_subsidies, total_income, total_deductions, net_salary, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`,
		e.ID, e.EmployeeID, e.EmployeeName, e.Month, e.Year, e.BaseSalary, e.FoodAllowance,
		e.TransportAllowance, e.Bonus, e.PersonalCommission, e.TeamCommission, e.OtherIncome, e.Loans, e.INSS,
		e.OtherDeductions, e.TotalSubsidies, e.TotalIncome, e.TotalDeductions, e.NetSalary, e.UserID, e.CreatedAt,
	)
	if err != nil {
		return writeErr("insert payroll entry", err)
	}
	return nil
}

// GetByEmployeePeriod entrada del funcionario en el mes/año. nil si no existe.
func (r *PayrollRepo) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (*entity.PayrollEntry, error) {
	e, err := scanPayroll(r.q.QueryRow(ctx, `SELECT `+payrollColumns+` FROM payroll_entries p
		WHERE p.employee_id = $1 AND p.month = $2 AND p.year = $3`, employeeID, month, year))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payroll entry: %w", err)
	}
	return e, nil
}

// ListByPeriod entradas del mes/año por nombre del funcionario.
func (r *PayrollRepo) ListByPeriod(ctx context.Context, month, year int) ([]*entity.PayrollEntry, error) {
	return r.list(ctx, `SELECT `+payrollColumns+` FROM payroll_entries p
		WHERE p.month = $1 AND p.year = $2 ORDER BY p.employee_name`, month, year)
}

// ListWithoutExpense entradas sin gasto espejo, recorridas por id a partir de afterID.
func (r *PayrollRepo) ListWithoutExpense(ctx context.Context, afterID string, limit int) ([]*entity.PayrollEntry, error) {
	if afterID == "" {
		afterID = uuid.Nil.String()
	}
	return r.list(ctx, `SELECT `+payrollColumns+` FROM payroll_entries p
		WHERE p.id > $1::uuid
		  AND NOT EXISTS (SELECT 1 FROM expenses x WHERE x.payroll_entry_id = p.id)
		ORDER BY p.id LIMIT $2`, afterID, limit)
}

func (r *PayrollRepo) list(ctx context.Context, query string, args ...any) ([]*entity.PayrollEntry, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payroll entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.PayrollEntry
	for rows.Next() {
		e, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payroll entry: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// ExpenseRepo gastos.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create persiste un gasto. Un segundo gasto para la misma entrada de nómina → ErrDuplicate.
func (r *ExpenseRepo) Create(ctx context.Context, x *entity.Expense) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO expenses (id, category, amount, date, provider, description, status, user_id, payroll_entry_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		x.ID, x.Category, x.Amount, x.Date, x.Provider, x.Description, x.Status, x.UserID,
		nullString(x.PayrollEntryID), x.CreatedAt,
	)
	if err != nil {
		return writeErr("insert expense", err)
	}
	return nil
}

// ListByCategory últimos gastos de una categoría (todas si category es vacía).
func (r *ExpenseRepo) ListByCategory(ctx context.Context, category string, limit int) ([]*entity.Expense, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, category, amount, date, provider, description, status, user_id, payroll_entry_id::text, created_at
		FROM expenses WHERE $1 = '' OR category = $1
		ORDER BY date DESC, created_at DESC LIMIT $2`, category, limit)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		var x entity.Expense
		if err := rows.Scan(&x.ID, &x.Category, &x.Amount, &x.Date, &x.Provider, &x.Description, &x.Status,
			&x.UserID, &x.PayrollEntryID, &x.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, &x)
	}
	return list, rows.Err()
}
