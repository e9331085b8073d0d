package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finanzas-genius/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction store operations.
type TransactionRepository interface {
	// List returns every transaction in creation order.
	List(ctx context.Context) ([]*entity.Transaction, error)

	// Create appends a new transaction to the collection.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes the transaction only; account balances are untouched.
	Delete(ctx context.Context, id uuid.UUID) error
}
