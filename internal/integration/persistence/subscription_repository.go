package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/domain/entity"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
)

// subscriptionRepository implements the adapter.SubscriptionRepository interface.
type subscriptionRepository struct {
	store *Store
}

// NewSubscriptionRepository creates a new subscription repository instance.
func NewSubscriptionRepository(store *Store) adapter.SubscriptionRepository {
	return &subscriptionRepository{
		store: store,
	}
}

// List returns every subscription in creation order.
func (r *subscriptionRepository) List(_ context.Context) ([]*entity.Subscription, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	subscriptions := make([]*entity.Subscription, len(r.store.subscriptions))
	for i, s := range r.store.subscriptions {
		copied := *s
		subscriptions[i] = &copied
	}
	return subscriptions, nil
}

// Create appends a new subscription to the collection.
func (r *subscriptionRepository) Create(ctx context.Context, subscription *entity.Subscription) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	copied := *subscription
	r.store.subscriptions = append(r.store.subscriptions, &copied)
	r.store.persistSubscriptions(ctx)
	return nil
}

// Delete removes the subscription.
func (r *subscriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, s := range r.store.subscriptions {
		if s.ID == id {
			r.store.subscriptions = append(r.store.subscriptions[:i], r.store.subscriptions[i+1:]...)
			r.store.persistSubscriptions(ctx)
			return nil
		}
	}
	return domainerror.ErrSubscriptionNotFound
}
