package debt

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

// PayDebtInput represents the input for a debt payment.
type PayDebtInput struct {
	DebtID uuid.UUID
	Amount decimal.Decimal
}

// PayDebtOutput carries both halves of the composite mutation: the updated
// debt and the audit transaction that was emitted with it.
type PayDebtOutput struct {
	Debt        *entity.Debt
	Transaction *entity.Transaction
}

// PayDebtUseCase lowers a debt's remaining amount and emits a paired expense
// transaction. A payment larger than the remaining balance is rejected with
// no state change.
type PayDebtUseCase struct {
	debtRepo adapter.DebtRepository
	ledger   adapter.LedgerRepository
}

// NewPayDebtUseCase creates a new PayDebtUseCase instance.
func NewPayDebtUseCase(debtRepo adapter.DebtRepository, ledger adapter.LedgerRepository) *PayDebtUseCase {
	return &PayDebtUseCase{
		debtRepo: debtRepo,
		ledger:   ledger,
	}
}

// Execute performs the payment.
func (uc *PayDebtUseCase) Execute(ctx context.Context, input PayDebtInput) (*PayDebtOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeInvalidPayment,
			"payment amount must be greater than zero",
			domainerror.ErrInvalidPayment,
		)
	}

	debt, err := uc.debtRepo.FindByID(ctx, input.DebtID)
	if err != nil {
		if errors.Is(err, domainerror.ErrDebtNotFound) {
			return nil, domainerror.NewDebtError(
				domainerror.ErrCodeDebtNotFound,
				"debt not found",
				domainerror.ErrDebtNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find debt: %w", err)
	}

	if input.Amount.GreaterThan(debt.RemainingAmount) {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodePaymentExceedsRemaining,
			"payment cannot exceed the remaining debt",
			domainerror.ErrPaymentExceedsRemaining,
		)
	}

	updated := *debt
	updated.RemainingAmount = debt.RemainingAmount.Sub(input.Amount)

	transaction := entity.NewTransaction(
		entity.TransactionTypeExpense,
		input.Amount,
		entity.CategoryDebt,
		time.Now(),
		fmt.Sprintf("Pago deuda: %s", debt.Name),
		nil,
	)

	if err := uc.ledger.ApplyDebtPayment(ctx, &updated, transaction); err != nil {
		return nil, fmt.Errorf("failed to apply payment: %w", err)
	}

	return &PayDebtOutput{
		Debt:        &updated,
		Transaction: transaction,
	}, nil
}
