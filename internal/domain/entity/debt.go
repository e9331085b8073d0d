package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Debt represents money owed. The remaining amount only decreases, through
// payment operations, and never exceeds the original total.
type Debt struct {
	ID              uuid.UUID
	Name            string
	TotalAmount     decimal.Decimal
	RemainingAmount decimal.Decimal
	DueDate         *time.Time
	InterestRate    *decimal.Decimal
	Color           string
	CreatedAt       time.Time
}

// NewDebt creates a new Debt entity. A zero remaining amount means the debt
// starts fully paid; callers default it to the total when unset.
func NewDebt(name string, totalAmount, remainingAmount decimal.Decimal, dueDate *time.Time, interestRate *decimal.Decimal, color string) *Debt {
	return &Debt{
		ID:              uuid.New(),
		Name:            name,
		TotalAmount:     totalAmount,
		RemainingAmount: remainingAmount,
		DueDate:         dueDate,
		InterestRate:    interestRate,
		Color:           color,
		CreatedAt:       time.Now().UTC(),
	}
}

// IsPaid reports whether nothing remains to be paid.
func (d *Debt) IsPaid() bool {
	return !d.RemainingAmount.IsPositive()
}
