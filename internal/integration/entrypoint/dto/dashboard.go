package dto

import (
	"github.com/finanzas-genius/backend/internal/application/usecase/dashboard"
)

// ReminderResponse is one upcoming payment in the dashboard summary.
type ReminderResponse struct {
	Source string  `json:"source"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

// SummaryResponse represents the dashboard summary for the current month.
type SummaryResponse struct {
	MonthlyIncome      float64            `json:"monthlyIncome"`
	VariableExpenses   float64            `json:"variableExpenses"`
	SubscriptionCost   float64            `json:"subscriptionCost"`
	TotalExpenses      float64            `json:"totalExpenses"`
	Balance            float64            `json:"balance"`
	MonthlyBudget      float64            `json:"monthlyBudget"`
	BudgetProgress     float64            `json:"budgetProgress"`
	RemainingBudget    float64            `json:"remainingBudget"`
	ExpensesByCategory map[string]float64 `json:"expensesByCategory"`
	Reminders          []ReminderResponse `json:"reminders"`
}

// ToSummaryResponse converts the dashboard aggregation to a SummaryResponse DTO.
func ToSummaryResponse(output *dashboard.GetSummaryOutput) SummaryResponse {
	byCategory := make(map[string]float64, len(output.ExpensesByCategory))
	for category, amount := range output.ExpensesByCategory {
		byCategory[string(category)] = amount.InexactFloat64()
	}

	reminders := make([]ReminderResponse, len(output.Reminders))
	for i, reminder := range output.Reminders {
		reminders[i] = ReminderResponse{
			Source: string(reminder.Source),
			Name:   reminder.Name,
			Amount: reminder.Amount.InexactFloat64(),
			Date:   FormatDate(reminder.Date),
		}
	}

	return SummaryResponse{
		MonthlyIncome:      output.MonthlyIncome.InexactFloat64(),
		VariableExpenses:   output.VariableExpenses.InexactFloat64(),
		SubscriptionCost:   output.SubscriptionCost.InexactFloat64(),
		TotalExpenses:      output.TotalExpenses.InexactFloat64(),
		Balance:            output.Balance.InexactFloat64(),
		MonthlyBudget:      output.MonthlyBudget.InexactFloat64(),
		BudgetProgress:     output.BudgetProgress,
		RemainingBudget:    output.RemainingBudget.InexactFloat64(),
		ExpensesByCategory: byCategory,
		Reminders:          reminders,
	}
}
