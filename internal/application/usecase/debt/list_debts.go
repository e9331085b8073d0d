package debt

import (
	"context"
	"fmt"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/domain/entity"
)

// ListDebtsOutput represents the output of listing debts.
type ListDebtsOutput struct {
	Debts []*entity.Debt
}

// ListDebtsUseCase handles listing all debts.
type ListDebtsUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewListDebtsUseCase creates a new ListDebtsUseCase instance.
func NewListDebtsUseCase(debtRepo adapter.DebtRepository) *ListDebtsUseCase {
	return &ListDebtsUseCase{
		debtRepo: debtRepo,
	}
}

// Execute returns every debt.
func (uc *ListDebtsUseCase) Execute(ctx context.Context) (*ListDebtsOutput, error) {
	debts, err := uc.debtRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	return &ListDebtsOutput{Debts: debts}, nil
}
