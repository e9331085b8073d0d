package dto

import (
	"time"

	"github.com/finanzas-genius/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for savings-goal creation.
type CreateGoalRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=100"`
	TargetAmount  float64 `json:"targetAmount" binding:"required,gt=0"`
	CurrentAmount float64 `json:"currentAmount,omitempty" binding:"omitempty,gte=0"`
	Deadline      *string `json:"deadline,omitempty"`
	Color         string  `json:"color,omitempty"`
}

// UpdateGoalRequest represents the request body for a full goal replace.
type UpdateGoalRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=100"`
	TargetAmount  float64 `json:"targetAmount" binding:"required,gt=0"`
	CurrentAmount float64 `json:"currentAmount" binding:"gte=0"`
	Deadline      *string `json:"deadline,omitempty"`
	Color         string  `json:"color,omitempty"`
}

// ContributeToGoalRequest represents the request body for a goal contribution.
type ContributeToGoalRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// GoalResponse represents a single savings goal in API responses.
type GoalResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	TargetAmount  float64   `json:"targetAmount"`
	CurrentAmount float64   `json:"currentAmount"`
	Deadline      *string   `json:"deadline,omitempty"`
	Color         string    `json:"color"`
	Progress      float64   `json:"progress"`
	CreatedAt     time.Time `json:"createdAt"`
}

// GoalListResponse represents the response for listing savings goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ContributionResponse carries the updated goal together with the expense
// transaction the contribution produced.
type ContributionResponse struct {
	Goal        GoalResponse        `json:"goal"`
	Transaction TransactionResponse `json:"transaction"`
}

// ToGoalResponse converts a domain SavingsGoal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.SavingsGoal) GoalResponse {
	return GoalResponse{
		ID:            g.ID.String(),
		Name:          g.Name,
		TargetAmount:  g.TargetAmount.InexactFloat64(),
		CurrentAmount: g.CurrentAmount.InexactFloat64(),
		Deadline:      FormatDatePtr(g.Deadline),
		Color:         g.Color,
		Progress:      g.Progress(),
		CreatedAt:     g.CreatedAt,
	}
}

// ToGoalListResponse converts a list of savings goals to GoalListResponse.
func ToGoalListResponse(goals []*entity.SavingsGoal) GoalListResponse {
	responses := make([]GoalResponse, len(goals))
	for i, g := range goals {
		responses[i] = ToGoalResponse(g)
	}
	return GoalListResponse{
		Goals: responses,
	}
}
