package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-genius/backend/internal/domain/entity"
)

// SubscriptionModel is one element of the subscriptions document.
type SubscriptionModel struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Amount          float64   `json:"amount"`
	Currency        string    `json:"currency,omitempty"`
	Frequency       string    `json:"frequency"`
	Category        string    `json:"category"`
	NextPaymentDate string    `json:"nextPaymentDate"`
	Description     string    `json:"description,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ToEntity converts a SubscriptionModel to a domain Subscription entity.
func (m *SubscriptionModel) ToEntity() *entity.Subscription {
	return &entity.Subscription{
		ID:              m.ID,
		Name:            m.Name,
		Amount:          decimal.NewFromFloat(m.Amount),
		Currency:        m.Currency,
		Frequency:       entity.Frequency(m.Frequency),
		Category:        entity.Category(m.Category),
		NextPaymentDate: parseDate(m.NextPaymentDate),
		Description:     m.Description,
		CreatedAt:       m.CreatedAt,
	}
}

// SubscriptionFromEntity creates a SubscriptionModel from a domain Subscription entity.
func SubscriptionFromEntity(subscription *entity.Subscription) *SubscriptionModel {
	return &SubscriptionModel{
		ID:              subscription.ID,
		Name:            subscription.Name,
		Amount:          subscription.Amount.InexactFloat64(),
		Currency:        subscription.Currency,
		Frequency:       string(subscription.Frequency),
		Category:        string(subscription.Category),
		NextPaymentDate: formatDate(subscription.NextPaymentDate),
		Description:     subscription.Description,
		CreatedAt:       subscription.CreatedAt,
	}
}
