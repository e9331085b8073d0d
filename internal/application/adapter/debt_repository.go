package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finanzas-genius/backend/internal/domain/entity"
)

// DebtRepository defines the interface for debt store operations.
type DebtRepository interface {
	// List returns every debt in creation order.
	List(ctx context.Context) ([]*entity.Debt, error)

	// FindByID retrieves a debt by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error)

	// Create appends a new debt to the collection.
	Create(ctx context.Context, debt *entity.Debt) error

	// Update replaces the stored debt with the same ID.
	Update(ctx context.Context, debt *entity.Debt) error

	// Delete removes the debt.
	Delete(ctx context.Context, id uuid.UUID) error
}
