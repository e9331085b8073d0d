// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/domain/entity"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
)

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	Name    string
	Kind    entity.AccountKind
	Balance decimal.Decimal
	Color   string
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeMissingAccountName,
			"account name is required",
			domainerror.ErrMissingAccountName,
		)
	}

	if !entity.IsValidAccountKind(input.Kind) {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountKind,
			"kind must be 'cash', 'bank', 'savings', 'wallet' or 'other'",
			domainerror.ErrInvalidAccountKind,
		)
	}

	account := entity.NewAccount(input.Name, input.Kind, input.Balance, input.Color)

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{
		Account: account,
	}, nil
}
