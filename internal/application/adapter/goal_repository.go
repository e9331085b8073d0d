package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finanzas-genius/backend/internal/domain/entity"
)

// GoalRepository defines the interface for savings-goal store operations.
type GoalRepository interface {
	// List returns every savings goal in creation order.
	List(ctx context.Context) ([]*entity.SavingsGoal, error)

	// FindByID retrieves a savings goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SavingsGoal, error)

	// Create appends a new savings goal to the collection.
	Create(ctx context.Context, goal *entity.SavingsGoal) error

	// Update replaces the stored goal with the same ID.
	Update(ctx context.Context, goal *entity.SavingsGoal) error

	// Delete removes the savings goal.
	Delete(ctx context.Context, id uuid.UUID) error
}
