package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/domain/entity"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
)

// accountRepository implements the adapter.AccountRepository interface.
type accountRepository struct {
	store *Store
}

// NewAccountRepository creates a new account repository instance.
func NewAccountRepository(store *Store) adapter.AccountRepository {
	return &accountRepository{
		store: store,
	}
}

// List returns every account in creation order.
func (r *accountRepository) List(_ context.Context) ([]*entity.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	accounts := make([]*entity.Account, len(r.store.accounts))
	for i, a := range r.store.accounts {
		copied := *a
		accounts[i] = &copied
	}
	return accounts, nil
}

// FindByID retrieves an account by its ID.
func (r *accountRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, a := range r.store.accounts {
		if a.ID == id {
			copied := *a
			return &copied, nil
		}
	}
	return nil, domainerror.ErrAccountNotFound
}

// Create appends a new account to the collection.
func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	copied := *account
	r.store.accounts = append(r.store.accounts, &copied)
	r.store.persistAccounts(ctx)
	return nil
}

// Delete removes the account. Transactions referencing it keep their
// now-dangling account reference.
func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, a := range r.store.accounts {
		if a.ID == id {
			r.store.accounts = append(r.store.accounts[:i], r.store.accounts[i+1:]...)
			r.store.persistAccounts(ctx)
			return nil
		}
	}
	return domainerror.ErrAccountNotFound
}

// ApplyBalanceChange adds the signed delta to the account balance.
func (r *accountRepository) ApplyBalanceChange(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, a := range r.store.accounts {
		if a.ID == id {
			a.Balance = a.Balance.Add(delta)
			r.store.persistAccounts(ctx)
			return nil
		}
	}
	return domainerror.ErrAccountNotFound
}
