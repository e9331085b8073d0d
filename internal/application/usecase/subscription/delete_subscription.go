package subscription

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
)

// DeleteSubscriptionInput represents the input for subscription deletion.
type DeleteSubscriptionInput struct {
	ID uuid.UUID
}

// DeleteSubscriptionUseCase handles subscription deletion logic.
type DeleteSubscriptionUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
}

// NewDeleteSubscriptionUseCase creates a new DeleteSubscriptionUseCase instance.
func NewDeleteSubscriptionUseCase(subscriptionRepo adapter.SubscriptionRepository) *DeleteSubscriptionUseCase {
	return &DeleteSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
	}
}

// Execute performs the subscription deletion.
func (uc *DeleteSubscriptionUseCase) Execute(ctx context.Context, input DeleteSubscriptionInput) error {
	if err := uc.subscriptionRepo.Delete(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrSubscriptionNotFound) {
			return domainerror.NewSubscriptionError(
				domainerror.ErrCodeSubscriptionNotFound,
				"subscription not found",
				domainerror.ErrSubscriptionNotFound,
			)
		}
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	return nil
}
