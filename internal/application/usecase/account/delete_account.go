package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	ID uuid.UUID
}

// DeleteAccountUseCase handles account deletion logic. Deleting an account
// does not cascade to transactions that reference it; those keep a dangling
// account reference.
type DeleteAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(accountRepo adapter.AccountRepository) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account deletion.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {
	if err := uc.accountRepo.Delete(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return domainerror.NewAccountError(
				domainerror.ErrCodeAccountNotFound,
				"account not found",
				domainerror.ErrAccountNotFound,
			)
		}
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}
