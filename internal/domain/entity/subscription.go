package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Frequency represents how often a subscription is charged.
type Frequency string

const (
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// IsValidFrequency reports whether the given frequency is one of the fixed set.
func IsValidFrequency(frequency Frequency) bool {
	return frequency == FrequencyWeekly || frequency == FrequencyMonthly || frequency == FrequencyYearly
}

// Subscription represents a recurring fixed cost (streaming, rent, gym, ...).
type Subscription struct {
	ID              uuid.UUID
	Name            string
	Amount          decimal.Decimal
	Currency        string
	Frequency       Frequency
	Category        Category
	NextPaymentDate time.Time
	Description     string
	CreatedAt       time.Time
}

// MonthlyCost normalizes the subscription amount to a monthly figure:
// yearly amounts are divided by 12 and weekly amounts assume a fixed
// four-week month.
func (s *Subscription) MonthlyCost() decimal.Decimal {
	switch s.Frequency {
	case FrequencyYearly:
		return s.Amount.Div(decimal.NewFromInt(12))
	case FrequencyWeekly:
		return s.Amount.Mul(decimal.NewFromInt(4))
	default:
		return s.Amount
	}
}

// NewSubscription creates a new Subscription entity.
func NewSubscription(
	name string,
	amount decimal.Decimal,
	currency string,
	frequency Frequency,
	category Category,
	nextPaymentDate time.Time,
	description string,
) *Subscription {
	return &Subscription{
		ID:              uuid.New(),
		Name:            name,
		Amount:          amount,
		Currency:        currency,
		Frequency:       frequency,
		Category:        category,
		NextPaymentDate: nextPaymentDate,
		Description:     description,
		CreatedAt:       time.Now().UTC(),
	}
}
