package debt

import (
	"context"
	"errors"
	"fmt"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/domain/entity"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
)

// UpdateDebtInput represents the input for a full debt replace.
type UpdateDebtInput struct {
	Debt *entity.Debt
}

// UpdateDebtOutput represents the output of a debt update.
type UpdateDebtOutput struct {
	Debt *entity.Debt
}

// UpdateDebtUseCase replaces a stored debt by ID.
type UpdateDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewUpdateDebtUseCase creates a new UpdateDebtUseCase instance.
func NewUpdateDebtUseCase(debtRepo adapter.DebtRepository) *UpdateDebtUseCase {
	return &UpdateDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute performs the debt update.
func (uc *UpdateDebtUseCase) Execute(ctx context.Context, input UpdateDebtInput) (*UpdateDebtOutput, error) {
	if input.Debt.RemainingAmount.GreaterThan(input.Debt.TotalAmount) {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeRemainingExceedsTotal,
			"remaining amount cannot exceed the total amount",
			domainerror.ErrRemainingExceedsTotal,
		)
	}

	if err := uc.debtRepo.Update(ctx, input.Debt); err != nil {
		if errors.Is(err, domainerror.ErrDebtNotFound) {
			return nil, domainerror.NewDebtError(
				domainerror.ErrCodeDebtNotFound,
				"debt not found",
				domainerror.ErrDebtNotFound,
			)
		}
		return nil, fmt.Errorf("failed to update debt: %w", err)
	}

	return &UpdateDebtOutput{Debt: input.Debt}, nil
}
