package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wymdy/erp-api/internal/application/payroll"
	"github.com/wymdy/erp-api/internal/application/sales"
	"github.com/wymdy/erp-api/internal/domain/repository"
)

var (
	_ sales.SaleTxRunner      = (*TxRunner)(nil)
	_ payroll.PayrollTxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSale venta + cuotas + auditoría en una transacción.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	installmentRepo repository.InstallmentRepository,
	auditRepo repository.AuditRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewSaleRepository(tx), NewInstallmentRepository(tx), NewAuditRepository(tx))
	})
}

// RunPayroll nómina + gasto espejo + auditoría en una transacción.
func (r *TxRunner) RunPayroll(ctx context.Context, fn func(
	payrollRepo repository.PayrollRepository,
	expenseRepo repository.ExpenseRepository,
	auditRepo repository.AuditRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewPayrollRepository(tx), NewExpenseRepository(tx), NewAuditRepository(tx))
	})
}

// run inicia una transacción, ejecuta fn y hace Commit o Rollback.
func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
