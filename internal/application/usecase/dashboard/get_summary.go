// Package dashboard computes the derived aggregations served by the summary
// endpoint. Nothing here mutates state; every figure is recomputed from the
// current snapshot on demand.
package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/domain/entity"
)

// maxReminders caps the upcoming-payments feed.
const maxReminders = 5

// ReminderSource identifies where a reminder entry comes from.
type ReminderSource string

const (
	ReminderSourceSubscription ReminderSource = "subscription"
	ReminderSourceDebt         ReminderSource = "debt"
)

// Reminder is one upcoming payment: a subscription's next charge or a debt's
// due date with its remaining amount.
type Reminder struct {
	Source ReminderSource
	Name   string
	Amount decimal.Decimal
	Date   time.Time
}

// GetSummaryOutput carries every dashboard figure for the current month.
type GetSummaryOutput struct {
	MonthlyIncome      decimal.Decimal
	VariableExpenses   decimal.Decimal
	SubscriptionCost   decimal.Decimal
	TotalExpenses      decimal.Decimal
	Balance            decimal.Decimal
	MonthlyBudget      decimal.Decimal
	BudgetProgress     float64
	RemainingBudget    decimal.Decimal
	ExpensesByCategory map[entity.Category]decimal.Decimal
	Reminders          []Reminder
}

// GetSummaryUseCase aggregates transactions, subscriptions, debts and the
// budget into the dashboard summary. The clock is injectable so the
// current-month window can be pinned in tests.
type GetSummaryUseCase struct {
	transactionRepo  adapter.TransactionRepository
	subscriptionRepo adapter.SubscriptionRepository
	debtRepo         adapter.DebtRepository
	settingsRepo     adapter.SettingsRepository
	now              func() time.Time
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	subscriptionRepo adapter.SubscriptionRepository,
	debtRepo adapter.DebtRepository,
	settingsRepo adapter.SettingsRepository,
	now func() time.Time,
) *GetSummaryUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetSummaryUseCase{
		transactionRepo:  transactionRepo,
		subscriptionRepo: subscriptionRepo,
		debtRepo:         debtRepo,
		settingsRepo:     settingsRepo,
		now:              now,
	}
}

// Execute computes the summary for the month containing the evaluation moment.
func (uc *GetSummaryUseCase) Execute(ctx context.Context) (*GetSummaryOutput, error) {
	transactions, err := uc.transactionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	subscriptions, err := uc.subscriptionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	debts, err := uc.debtRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	now := uc.now()

	income := decimal.Zero
	variableExpenses := decimal.Zero
	byCategory := make(map[entity.Category]decimal.Decimal)
	for _, t := range transactions {
		if !sameMonth(t.Date, now) {
			continue
		}
		switch t.Type {
		case entity.TransactionTypeIncome:
			income = income.Add(t.Amount)
		case entity.TransactionTypeExpense:
			variableExpenses = variableExpenses.Add(t.Amount)
			byCategory[t.Category] = byCategory[t.Category].Add(t.Amount)
		}
	}

	// Subscriptions always count toward the month regardless of payment date.
	subscriptionCost := decimal.Zero
	for _, s := range subscriptions {
		cost := s.MonthlyCost()
		subscriptionCost = subscriptionCost.Add(cost)
		byCategory[s.Category] = byCategory[s.Category].Add(cost)
	}

	for category, amount := range byCategory {
		byCategory[category] = amount.Round(2)
	}

	totalExpenses := variableExpenses.Add(subscriptionCost)

	budget := settings.MonthlyBudget
	budgetProgress := 0.0
	if budget.IsPositive() {
		budgetProgress, _ = totalExpenses.Div(budget).Mul(decimal.NewFromInt(100)).Float64()
	}
	remainingBudget := budget.Sub(totalExpenses)
	if remainingBudget.IsNegative() {
		remainingBudget = decimal.Zero
	}

	return &GetSummaryOutput{
		MonthlyIncome:      income,
		VariableExpenses:   variableExpenses,
		SubscriptionCost:   subscriptionCost,
		TotalExpenses:      totalExpenses,
		Balance:            income.Sub(totalExpenses),
		MonthlyBudget:      budget,
		BudgetProgress:     budgetProgress,
		RemainingBudget:    remainingBudget,
		ExpensesByCategory: byCategory,
		Reminders:          buildReminders(subscriptions, debts),
	}, nil
}

// buildReminders merges subscription charges with unpaid debts that have a
// due date, sorted ascending by date. The sort is stable so subscriptions
// come before debts on equal dates. The feed is truncated to maxReminders.
func buildReminders(subscriptions []*entity.Subscription, debts []*entity.Debt) []Reminder {
	reminders := make([]Reminder, 0, len(subscriptions)+len(debts))
	for _, s := range subscriptions {
		reminders = append(reminders, Reminder{
			Source: ReminderSourceSubscription,
			Name:   s.Name,
			Amount: s.Amount,
			Date:   s.NextPaymentDate,
		})
	}
	for _, d := range debts {
		if d.DueDate == nil || d.IsPaid() {
			continue
		}
		reminders = append(reminders, Reminder{
			Source: ReminderSourceDebt,
			Name:   d.Name,
			Amount: d.RemainingAmount,
			Date:   *d.DueDate,
		})
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].Date.Before(reminders[j].Date)
	})

	if len(reminders) > maxReminders {
		reminders = reminders[:maxReminders]
	}
	return reminders
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
