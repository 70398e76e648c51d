package repository

import (
	"context"

	"github.com/wymdy/erp-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	List(ctx context.Context, search string) ([]*entity.Employee, error)
}

// PayrollRepository entradas de nómina.
type PayrollRepository interface {
	Create(ctx context.Context, entry *entity.PayrollEntry) error
	GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (*entity.PayrollEntry, error)
	ListByPeriod(ctx context.Context, month, year int) ([]*entity.PayrollEntry, error)
	// ListWithoutExpense entradas sin gasto espejo con id > afterID, ordenadas por id
	// (paginación por cursor para la reconciliación). afterID vacío = desde el principio.
	ListWithoutExpense(ctx context.Context, afterID string, limit int) ([]*entity.PayrollEntry, error)
}

// ExpenseRepository gastos.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	// ListByCategory más recientes primero; category vacía = todas.
	ListByCategory(ctx context.Context, category string, limit int) ([]*entity.Expense, error)
}
