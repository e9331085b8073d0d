package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/domain/entity"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	store *Store
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(store *Store) adapter.TransactionRepository {
	return &transactionRepository{
		store: store,
	}
}

// List returns every transaction in creation order.
func (r *transactionRepository) List(_ context.Context) ([]*entity.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	transactions := make([]*entity.Transaction, len(r.store.transactions))
	for i, t := range r.store.transactions {
		copied := *t
		transactions[i] = &copied
	}
	return transactions, nil
}

// Create appends a new transaction to the collection.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	copied := *transaction
	r.store.transactions = append(r.store.transactions, &copied)
	r.store.persistTransactions(ctx)
	return nil
}

// Delete removes the transaction only; account balances are untouched.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, t := range r.store.transactions {
		if t.ID == id {
			r.store.transactions = append(r.store.transactions[:i], r.store.transactions[i+1:]...)
			r.store.persistTransactions(ctx)
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}
