package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/domain/entity"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
)

// debtRepository implements the adapter.DebtRepository interface.
type debtRepository struct {
	store *Store
}

// NewDebtRepository creates a new debt repository instance.
func NewDebtRepository(store *Store) adapter.DebtRepository {
	return &debtRepository{
		store: store,
	}
}

// List returns every debt in creation order.
func (r *debtRepository) List(_ context.Context) ([]*entity.Debt, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	debts := make([]*entity.Debt, len(r.store.debts))
	for i, d := range r.store.debts {
		copied := *d
		debts[i] = &copied
	}
	return debts, nil
}

// FindByID retrieves a debt by its ID.
func (r *debtRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Debt, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, d := range r.store.debts {
		if d.ID == id {
			copied := *d
			return &copied, nil
		}
	}
	return nil, domainerror.ErrDebtNotFound
}

// Create appends a new debt to the collection.
func (r *debtRepository) Create(ctx context.Context, debt *entity.Debt) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	copied := *debt
	r.store.debts = append(r.store.debts, &copied)
	r.store.persistDebts(ctx)
	return nil
}

// Update replaces the stored debt with the same ID.
func (r *debtRepository) Update(ctx context.Context, debt *entity.Debt) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, d := range r.store.debts {
		if d.ID == debt.ID {
			copied := *debt
			// The creation timestamp is immutable.
			copied.CreatedAt = d.CreatedAt
			r.store.debts[i] = &copied
			r.store.persistDebts(ctx)
			return nil
		}
	}
	return domainerror.ErrDebtNotFound
}

// Delete removes the debt.
func (r *debtRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, d := range r.store.debts {
		if d.ID == id {
			r.store.debts = append(r.store.debts[:i], r.store.debts[i+1:]...)
			r.store.persistDebts(ctx)
			return nil
		}
	}
	return domainerror.ErrDebtNotFound
}
