package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/domain/entity"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	store *Store
}

// NewGoalRepository creates a new savings-goal repository instance.
func NewGoalRepository(store *Store) adapter.GoalRepository {
	return &goalRepository{
		store: store,
	}
}

// List returns every savings goal in creation order.
func (r *goalRepository) List(_ context.Context) ([]*entity.SavingsGoal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	goals := make([]*entity.SavingsGoal, len(r.store.goals))
	for i, g := range r.store.goals {
		copied := *g
		goals[i] = &copied
	}
	return goals, nil
}

// FindByID retrieves a savings goal by its ID.
func (r *goalRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.SavingsGoal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, g := range r.store.goals {
		if g.ID == id {
			copied := *g
			return &copied, nil
		}
	}
	return nil, domainerror.ErrGoalNotFound
}

// Create appends a new savings goal to the collection.
func (r *goalRepository) Create(ctx context.Context, goal *entity.SavingsGoal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	copied := *goal
	r.store.goals = append(r.store.goals, &copied)
	r.store.persistGoals(ctx)
	return nil
}

// Update replaces the stored goal with the same ID.
func (r *goalRepository) Update(ctx context.Context, goal *entity.SavingsGoal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, g := range r.store.goals {
		if g.ID == goal.ID {
			copied := *goal
			// The creation timestamp is immutable.
			copied.CreatedAt = g.CreatedAt
			r.store.goals[i] = &copied
			r.store.persistGoals(ctx)
			return nil
		}
	}
	return domainerror.ErrGoalNotFound
}

// Delete removes the savings goal.
func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, g := range r.store.goals {
		if g.ID == id {
			r.store.goals = append(r.store.goals[:i], r.store.goals[i+1:]...)
			r.store.persistGoals(ctx)
			return nil
		}
	}
	return domainerror.ErrGoalNotFound
}
