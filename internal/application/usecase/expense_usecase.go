package usecase

import (
	"context"

	"github.com/wymdy/erp-api/internal/application/dto"
	"github.com/wymdy/erp-api/internal/domain/repository"
)

const (
	expenseListDefault = 100
	expenseListMax     = 500
)

// ExpenseUseCase listado de gastos para finanzas, incluidos los espejos de nómina.
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

// List gastos más recientes primero. category vacía = todas las categorías.
func (uc *ExpenseUseCase) List(ctx context.Context, category string, limit int) ([]dto.ExpenseResponse, error) {
	if limit <= 0 || limit > expenseListMax {
		limit = expenseListDefault
	}
	list, err := uc.repo.ListByCategory(ctx, category, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(list))
	for _, x := range list {
		out = append(out, dto.ExpenseResponse{
			ID:             x.ID,
			Category:       x.Category,
			Amount:         x.Amount,
			Date:           x.Date,
			Provider:       x.Provider,
			Description:    x.Description,
			Status:         x.Status,
			PayrollEntryID: x.PayrollEntryID,
		})
	}
	return out, nil
}
