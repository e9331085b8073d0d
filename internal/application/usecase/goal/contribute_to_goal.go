package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/domain/entity"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
)

// ContributeToGoalInput represents the input for a goal contribution.
type ContributeToGoalInput struct {
	GoalID uuid.UUID
	Amount decimal.Decimal
}

// ContributeToGoalOutput carries both halves of the composite mutation: the
// updated goal and the audit transaction that was emitted with it.
type ContributeToGoalOutput struct {
	Goal        *entity.SavingsGoal
	Transaction *entity.Transaction
}

// ContributeToGoalUseCase raises a goal's current amount and emits a paired
// expense transaction as an audit trail. Both apply together through the
// ledger; over-saving past the target is allowed.
type ContributeToGoalUseCase struct {
	goalRepo adapter.GoalRepository
	ledger   adapter.LedgerRepository
}

// NewContributeToGoalUseCase creates a new ContributeToGoalUseCase instance.
func NewContributeToGoalUseCase(goalRepo adapter.GoalRepository, ledger adapter.LedgerRepository) *ContributeToGoalUseCase {
	return &ContributeToGoalUseCase{
		goalRepo: goalRepo,
		ledger:   ledger,
	}
}

// Execute performs the contribution.
func (uc *ContributeToGoalUseCase) Execute(ctx context.Context, input ContributeToGoalInput) (*ContributeToGoalOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidContribution,
			"contribution amount must be greater than zero",
			domainerror.ErrInvalidContribution,
		)
	}

	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"savings goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	updated := *goal
	updated.CurrentAmount = goal.CurrentAmount.Add(input.Amount)

	transaction := entity.NewTransaction(
		entity.TransactionTypeExpense,
		input.Amount,
		entity.CategoryInvestment,
		time.Now(),
		fmt.Sprintf("Ahorro: %s", goal.Name),
		nil,
	)

	if err := uc.ledger.ApplyGoalContribution(ctx, &updated, transaction); err != nil {
		return nil, fmt.Errorf("failed to apply contribution: %w", err)
	}

	return &ContributeToGoalOutput{
		Goal:        &updated,
		Transaction: transaction,
	}, nil
}
