package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-genius/backend/internal/domain/entity"
)

// GoalModel is one element of the goals document.
type GoalModel struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	TargetAmount  float64   `json:"targetAmount"`
	CurrentAmount float64   `json:"currentAmount"`
	Deadline      *string   `json:"deadline,omitempty"`
	Color         string    `json:"color,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToEntity converts a GoalModel to a domain SavingsGoal entity.
func (m *GoalModel) ToEntity() *entity.SavingsGoal {
	return &entity.SavingsGoal{
		ID:            m.ID,
		Name:          m.Name,
		TargetAmount:  decimal.NewFromFloat(m.TargetAmount),
		CurrentAmount: decimal.NewFromFloat(m.CurrentAmount),
		Deadline:      parseDatePtr(m.Deadline),
		Color:         m.Color,
		CreatedAt:     m.CreatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain SavingsGoal entity.
func GoalFromEntity(goal *entity.SavingsGoal) *GoalModel {
	return &GoalModel{
		ID:            goal.ID,
		Name:          goal.Name,
		TargetAmount:  goal.TargetAmount.InexactFloat64(),
		CurrentAmount: goal.CurrentAmount.InexactFloat64(),
		Deadline:      formatDatePtr(goal.Deadline),
		Color:         goal.Color,
		CreatedAt:     goal.CreatedAt,
	}
}
