// Package subscription contains subscription-related use cases.
package subscription

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/domain/entity"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
)

// CreateSubscriptionInput represents the input for subscription creation.
type CreateSubscriptionInput struct {
	Name            string
	Amount          decimal.Decimal
	Currency        string
	Frequency       entity.Frequency
	Category        entity.Category
	NextPaymentDate time.Time
	Description     string
}

// CreateSubscriptionOutput represents the output of subscription creation.
type CreateSubscriptionOutput struct {
	Subscription *entity.Subscription
}

// CreateSubscriptionUseCase handles subscription creation logic.
type CreateSubscriptionUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
}

// NewCreateSubscriptionUseCase creates a new CreateSubscriptionUseCase instance.
func NewCreateSubscriptionUseCase(subscriptionRepo adapter.SubscriptionRepository) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
	}
}

// Execute performs the subscription creation.
func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, input CreateSubscriptionInput) (*CreateSubscriptionOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewSubscriptionError(
			domainerror.ErrCodeMissingSubscriptionName,
			"subscription name is required",
			domainerror.ErrMissingSubscriptionName,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewSubscriptionError(
			domainerror.ErrCodeInvalidSubscriptionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidSubscriptionAmount,
		)
	}

	if !entity.IsValidFrequency(input.Frequency) {
		return nil, domainerror.NewSubscriptionError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be 'weekly', 'monthly' or 'yearly'",
			domainerror.ErrInvalidFrequency,
		)
	}

	if !entity.IsValidCategory(input.Category) {
		return nil, domainerror.NewSubscriptionError(
			domainerror.ErrCodeInvalidSubscriptionCategory,
			"category is not one of the known set",
			domainerror.ErrInvalidCategory,
		)
	}

	subscription := entity.NewSubscription(
		input.Name,
		input.Amount,
		input.Currency,
		input.Frequency,
		input.Category,
		input.NextPaymentDate,
		input.Description,
	)

	if err := uc.subscriptionRepo.Create(ctx, subscription); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	return &CreateSubscriptionOutput{
		Subscription: subscription,
	}, nil
}
