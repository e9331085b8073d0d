package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finanzas-genius/backend/internal/domain/entity"
)

// SubscriptionRepository defines the interface for subscription store operations.
type SubscriptionRepository interface {
	// List returns every subscription in creation order.
	List(ctx context.Context) ([]*entity.Subscription, error)

	// Create appends a new subscription to the collection.
	Create(ctx context.Context, subscription *entity.Subscription) error

	// Delete removes the subscription.
	Delete(ctx context.Context, id uuid.UUID) error
}
