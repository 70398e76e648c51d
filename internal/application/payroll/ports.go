// Package payroll orquesta la folha salarial: borrador, vista previa, envío con gasto espejo,
// reconciliación y hoja PDF.
package payroll

import (
	"context"

	"github.com/wymdy/erp-api/internal/domain/entity"
	"github.com/wymdy/erp-api/internal/domain/repository"
)

// PayrollTxRunner ejecuta fn en una transacción con repos de nómina, gastos y auditoría.
type PayrollTxRunner interface {
	RunPayroll(ctx context.Context, fn func(
		payrollRepo repository.PayrollRepository,
		expenseRepo repository.ExpenseRepository,
		auditRepo repository.AuditRepository,
	) error) error
}

// SalarySheet datos de la hoja salarial de un período.
type SalarySheet struct {
	CompanyName string
	Month       int
	Year        int
	Entries     []*entity.PayrollEntry
}

// SalarySheetGenerator renderiza la hoja salarial (PDF).
type SalarySheetGenerator interface {
	GenerateSalarySheet(sheet SalarySheet) ([]byte, error)
}
