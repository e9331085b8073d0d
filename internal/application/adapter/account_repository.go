package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-genius/backend/internal/domain/entity"
)

// AccountRepository defines the interface for account store operations.
type AccountRepository interface {
	// List returns every account in creation order.
	List(ctx context.Context) ([]*entity.Account, error)

	// FindByID retrieves an account by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// Create appends a new account to the collection.
	Create(ctx context.Context, account *entity.Account) error

	// Delete removes the account. Transactions referencing it keep their
	// now-dangling account reference.
	Delete(ctx context.Context, id uuid.UUID) error

	// ApplyBalanceChange adds the signed delta to the account balance.
	// Returns ErrAccountNotFound when no account matches.
	ApplyBalanceChange(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error
}
