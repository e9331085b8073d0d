package dto

import (
	"time"

	"github.com/finanzas-genius/backend/internal/domain/entity"
)

// CreateSubscriptionRequest represents the request body for subscription creation.
type CreateSubscriptionRequest struct {
	Name            string  `json:"name" binding:"required,min=1,max=100"`
	Amount          float64 `json:"amount" binding:"required,gt=0"`
	Currency        string  `json:"currency,omitempty"`
	Frequency       string  `json:"frequency" binding:"required,oneof=weekly monthly yearly"`
	Category        string  `json:"category" binding:"required"`
	NextPaymentDate string  `json:"nextPaymentDate" binding:"required"`
	Description     string  `json:"description,omitempty" binding:"omitempty,max=255"`
}

// SubscriptionResponse represents a single subscription in API responses.
type SubscriptionResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Amount          float64   `json:"amount"`
	Currency        string    `json:"currency"`
	Frequency       string    `json:"frequency"`
	Category        string    `json:"category"`
	NextPaymentDate string    `json:"nextPaymentDate"`
	Description     string    `json:"description"`
	MonthlyCost     float64   `json:"monthlyCost"`
	CreatedAt       time.Time `json:"createdAt"`
}

// SubscriptionListResponse represents the response for listing subscriptions.
type SubscriptionListResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
}

// ToSubscriptionResponse converts a domain Subscription entity to a SubscriptionResponse DTO.
func ToSubscriptionResponse(s *entity.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:              s.ID.String(),
		Name:            s.Name,
		Amount:          s.Amount.InexactFloat64(),
		Currency:        s.Currency,
		Frequency:       string(s.Frequency),
		Category:        string(s.Category),
		NextPaymentDate: FormatDate(s.NextPaymentDate),
		Description:     s.Description,
		MonthlyCost:     s.MonthlyCost().InexactFloat64(),
		CreatedAt:       s.CreatedAt,
	}
}

// ToSubscriptionListResponse converts a list of subscriptions to SubscriptionListResponse.
func ToSubscriptionListResponse(subscriptions []*entity.Subscription) SubscriptionListResponse {
	responses := make([]SubscriptionResponse, len(subscriptions))
	for i, s := range subscriptions {
		responses[i] = ToSubscriptionResponse(s)
	}
	return SubscriptionListResponse{
		Subscriptions: responses,
	}
}
