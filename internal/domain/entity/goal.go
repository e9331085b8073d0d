package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsGoal represents a savings target. The current amount grows through
// contribution operations and may exceed the target; over-saving is not
// clamped.
type SavingsGoal struct {
	ID            uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      *time.Time
	Color         string
	CreatedAt     time.Time
}

// NewSavingsGoal creates a new SavingsGoal entity.
func NewSavingsGoal(name string, targetAmount, currentAmount decimal.Decimal, deadline *time.Time, color string) *SavingsGoal {
	return &SavingsGoal{
		ID:            uuid.New(),
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		Deadline:      deadline,
		Color:         color,
		CreatedAt:     time.Now().UTC(),
	}
}

// Progress returns the completion percentage against the target, capped at 100.
func (g *SavingsGoal) Progress() float64 {
	if g.TargetAmount.IsZero() {
		return 0
	}
	progress, _ := g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Float64()
	if progress > 100 {
		return 100
	}
	return progress
}
