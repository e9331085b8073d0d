// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/domain/entity"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Type        entity.TransactionType
	Amount      decimal.Decimal
	Category    entity.Category
	Date        time.Time
	Description string
	AccountID   *uuid.UUID // Optional link to an account
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation. When the draft
// references an account, the account balance is adjusted by the signed
// amount; a reference to a non-existent account is skipped silently and the
// transaction is still created.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if !entity.IsValidTransactionType(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if !entity.IsValidCategory(input.Category) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidCategory,
			"category is not one of the known set",
			domainerror.ErrInvalidCategory,
		)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	transaction := entity.NewTransaction(
		input.Type,
		input.Amount,
		input.Category,
		date,
		input.Description,
		input.AccountID,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	if input.AccountID != nil {
		if err := uc.accountRepo.ApplyBalanceChange(ctx, *input.AccountID, transaction.SignedAmount()); err != nil {
			if errors.Is(err, domainerror.ErrAccountNotFound) {
				// The transaction stays; only the balance step is skipped.
				slog.Debug("Transaction references unknown account, balance unchanged",
					"transaction_id", transaction.ID,
					"account_id", *input.AccountID,
				)
			} else {
				return nil, fmt.Errorf("failed to update account balance: %w", err)
			}
		}
	}

	return &CreateTransactionOutput{
		Transaction: transaction,
	}, nil
}
