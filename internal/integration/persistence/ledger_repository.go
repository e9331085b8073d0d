package persistence

import (
	"context"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/domain/entity"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
)

// ledgerRepository implements the adapter.LedgerRepository interface. Both
// halves of each composite mutation go in under one lock acquisition, so no
// reader observes the entity update without its audit transaction.
type ledgerRepository struct {
	store *Store
}

// NewLedgerRepository creates a new ledger repository instance.
func NewLedgerRepository(store *Store) adapter.LedgerRepository {
	return &ledgerRepository{
		store: store,
	}
}

// ApplyGoalContribution replaces the goal and appends the audit transaction.
func (r *ledgerRepository) ApplyGoalContribution(ctx context.Context, goal *entity.SavingsGoal, transaction *entity.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, g := range r.store.goals {
		if g.ID == goal.ID {
			copiedGoal := *goal
			r.store.goals[i] = &copiedGoal

			copiedTransaction := *transaction
			r.store.transactions = append(r.store.transactions, &copiedTransaction)

			r.store.persistGoals(ctx)
			r.store.persistTransactions(ctx)
			return nil
		}
	}
	return domainerror.ErrGoalNotFound
}

// ApplyDebtPayment replaces the debt and appends the audit transaction.
func (r *ledgerRepository) ApplyDebtPayment(ctx context.Context, debt *entity.Debt, transaction *entity.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, d := range r.store.debts {
		if d.ID == debt.ID {
			copiedDebt := *debt
			r.store.debts[i] = &copiedDebt

			copiedTransaction := *transaction
			r.store.transactions = append(r.store.transactions, &copiedTransaction)

			r.store.persistDebts(ctx)
			r.store.persistTransactions(ctx)
			return nil
		}
	}
	return domainerror.ErrDebtNotFound
}
