package debt

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
)

// DeleteDebtInput represents the input for debt deletion.
type DeleteDebtInput struct {
	ID uuid.UUID
}

// DeleteDebtUseCase handles debt deletion logic.
type DeleteDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewDeleteDebtUseCase creates a new DeleteDebtUseCase instance.
func NewDeleteDebtUseCase(debtRepo adapter.DebtRepository) *DeleteDebtUseCase {
	return &DeleteDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute performs the debt deletion.
func (uc *DeleteDebtUseCase) Execute(ctx context.Context, input DeleteDebtInput) error {
	if err := uc.debtRepo.Delete(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrDebtNotFound) {
			return domainerror.NewDebtError(
				domainerror.ErrCodeDebtNotFound,
				"debt not found",
				domainerror.ErrDebtNotFound,
			)
		}
		return fmt.Errorf("failed to delete debt: %w", err)
	}
	return nil
}
