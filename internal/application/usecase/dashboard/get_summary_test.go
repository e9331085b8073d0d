package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-genius/backend/internal/domain/entity"
)

type fakeTransactionRepo struct {
	transactions []*entity.Transaction
}

func (f *fakeTransactionRepo) List(_ context.Context) ([]*entity.Transaction, error) {
	return f.transactions, nil
}

func (f *fakeTransactionRepo) Create(_ context.Context, t *entity.Transaction) error {
	f.transactions = append(f.transactions, t)
	return nil
}

func (f *fakeTransactionRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type fakeSubscriptionRepo struct {
	subscriptions []*entity.Subscription
}

func (f *fakeSubscriptionRepo) List(_ context.Context) ([]*entity.Subscription, error) {
	return f.subscriptions, nil
}

func (f *fakeSubscriptionRepo) Create(_ context.Context, s *entity.Subscription) error {
	f.subscriptions = append(f.subscriptions, s)
	return nil
}

func (f *fakeSubscriptionRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type fakeDebtRepo struct {
	debts []*entity.Debt
}

func (f *fakeDebtRepo) List(_ context.Context) ([]*entity.Debt, error) { return f.debts, nil }

func (f *fakeDebtRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Debt, error) {
	return nil, nil
}

func (f *fakeDebtRepo) Create(_ context.Context, d *entity.Debt) error {
	f.debts = append(f.debts, d)
	return nil
}

func (f *fakeDebtRepo) Update(_ context.Context, _ *entity.Debt) error { return nil }

func (f *fakeDebtRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type fakeSettingsRepo struct {
	settings *entity.Settings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*entity.Settings, error) {
	if f.settings == nil {
		return entity.DefaultSettings(), nil
	}
	return f.settings, nil
}

func (f *fakeSettingsRepo) Update(_ context.Context, s *entity.Settings) error {
	f.settings = s
	return nil
}

func (f *fakeSettingsRepo) ClearAll(_ context.Context) error {
	f.settings = nil
	return nil
}

var evaluationMoment = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return evaluationMoment }

func newSummaryUseCase(
	transactions []*entity.Transaction,
	subscriptions []*entity.Subscription,
	debts []*entity.Debt,
	settings *entity.Settings,
) *GetSummaryUseCase {
	return NewGetSummaryUseCase(
		&fakeTransactionRepo{transactions: transactions},
		&fakeSubscriptionRepo{subscriptions: subscriptions},
		&fakeDebtRepo{debts: debts},
		&fakeSettingsRepo{settings: settings},
		fixedNow,
	)
}

func TestMonthlyCostNormalization(t *testing.T) {
	tests := []struct {
		name      string
		frequency entity.Frequency
		amount    decimal.Decimal
		want      decimal.Decimal
	}{
		{"monthly unchanged", entity.FrequencyMonthly, decimal.NewFromInt(30), decimal.NewFromInt(30)},
		{"yearly divided by twelve", entity.FrequencyYearly, decimal.NewFromInt(120), decimal.NewFromInt(10)},
		{"weekly times four", entity.FrequencyWeekly, decimal.NewFromInt(5), decimal.NewFromInt(20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := entity.NewSubscription("s", tt.amount, "USD", tt.frequency, entity.CategorySoftware, evaluationMoment, "")
			if got := sub.MonthlyCost(); !got.Equal(tt.want) {
				t.Errorf("MonthlyCost() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSummaryTotals(t *testing.T) {
	transactions := []*entity.Transaction{
		entity.NewTransaction(entity.TransactionTypeIncome, decimal.NewFromInt(2000), entity.CategorySalary, evaluationMoment, "sueldo", nil),
		entity.NewTransaction(entity.TransactionTypeExpense, decimal.NewFromInt(300), entity.CategoryFood, evaluationMoment, "super", nil),
		// Previous month, excluded from the window.
		entity.NewTransaction(entity.TransactionTypeExpense, decimal.NewFromInt(999), entity.CategoryFood, evaluationMoment.AddDate(0, -1, 0), "", nil),
		// Same month last year, also excluded.
		entity.NewTransaction(entity.TransactionTypeIncome, decimal.NewFromInt(999), entity.CategorySalary, evaluationMoment.AddDate(-1, 0, 0), "", nil),
	}
	subscriptions := []*entity.Subscription{
		entity.NewSubscription("Streaming", decimal.NewFromInt(15), "USD", entity.FrequencyMonthly, entity.CategoryEntertainment, evaluationMoment, ""),
		entity.NewSubscription("Hosting", decimal.NewFromInt(120), "USD", entity.FrequencyYearly, entity.CategorySoftware, evaluationMoment, ""),
	}

	uc := newSummaryUseCase(transactions, subscriptions, nil, &entity.Settings{MonthlyBudget: decimal.NewFromInt(1000)})
	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !output.MonthlyIncome.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("income = %s, want 2000", output.MonthlyIncome)
	}
	if !output.VariableExpenses.Equal(decimal.NewFromInt(300)) {
		t.Errorf("variable expenses = %s, want 300", output.VariableExpenses)
	}
	if !output.SubscriptionCost.Equal(decimal.NewFromInt(25)) {
		t.Errorf("subscription cost = %s, want 25", output.SubscriptionCost)
	}
	if !output.TotalExpenses.Equal(decimal.NewFromInt(325)) {
		t.Errorf("total expenses = %s, want 325", output.TotalExpenses)
	}
	if !output.Balance.Equal(decimal.NewFromInt(1675)) {
		t.Errorf("balance = %s, want 1675", output.Balance)
	}
}

func TestSummaryBudgetProgress(t *testing.T) {
	transactions := []*entity.Transaction{
		entity.NewTransaction(entity.TransactionTypeExpense, decimal.NewFromInt(1200), entity.CategoryShopping, evaluationMoment, "", nil),
	}

	uc := newSummaryUseCase(transactions, nil, nil, &entity.Settings{MonthlyBudget: decimal.NewFromInt(1000)})
	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.BudgetProgress != 120 {
		t.Errorf("budget progress = %v, want 120", output.BudgetProgress)
	}
	if !output.RemainingBudget.IsZero() {
		t.Errorf("remaining budget = %s, want 0 when overspent", output.RemainingBudget)
	}
}

func TestSummaryZeroBudget(t *testing.T) {
	transactions := []*entity.Transaction{
		entity.NewTransaction(entity.TransactionTypeExpense, decimal.NewFromInt(50), entity.CategoryFood, evaluationMoment, "", nil),
	}

	uc := newSummaryUseCase(transactions, nil, nil, &entity.Settings{MonthlyBudget: decimal.Zero})
	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.BudgetProgress != 0 {
		t.Errorf("budget progress = %v, want 0 with no budget", output.BudgetProgress)
	}
	if !output.RemainingBudget.IsZero() {
		t.Errorf("remaining budget = %s, want 0", output.RemainingBudget)
	}
}

func TestSummaryCategoryRollup(t *testing.T) {
	transactions := []*entity.Transaction{
		entity.NewTransaction(entity.TransactionTypeExpense, decimal.NewFromFloat(30.555), entity.CategoryFood, evaluationMoment, "", nil),
		entity.NewTransaction(entity.TransactionTypeExpense, decimal.NewFromInt(10), entity.CategoryFood, evaluationMoment, "", nil),
	}
	subscriptions := []*entity.Subscription{
		// Yearly 100/12 merges into the same category as the transactions.
		entity.NewSubscription("Meal kit", decimal.NewFromInt(100), "USD", entity.FrequencyYearly, entity.CategoryFood, evaluationMoment, ""),
		entity.NewSubscription("Gym", decimal.NewFromInt(25), "USD", entity.FrequencyMonthly, entity.CategoryFitness, evaluationMoment, ""),
	}

	uc := newSummaryUseCase(transactions, subscriptions, nil, nil)
	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	// 30.555 + 10 + 100/12 = 48.888..., rounded to 2 decimals.
	if got := output.ExpensesByCategory[entity.CategoryFood]; !got.Equal(decimal.NewFromFloat(48.89)) {
		t.Errorf("food rollup = %s, want 48.89", got)
	}
	if got := output.ExpensesByCategory[entity.CategoryFitness]; !got.Equal(decimal.NewFromInt(25)) {
		t.Errorf("fitness rollup = %s, want 25", got)
	}
	if _, ok := output.ExpensesByCategory[entity.CategorySalary]; ok {
		t.Errorf("income category leaked into the expense rollup")
	}
}

func TestSummaryReminders(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
	}
	datePtr := func(t time.Time) *time.Time { return &t }

	subscriptions := []*entity.Subscription{
		entity.NewSubscription("Streaming", decimal.NewFromInt(15), "USD", entity.FrequencyMonthly, entity.CategoryEntertainment, day(20), ""),
		entity.NewSubscription("Gym", decimal.NewFromInt(25), "USD", entity.FrequencyMonthly, entity.CategoryFitness, day(5), ""),
	}
	debts := []*entity.Debt{
		// Same date as Streaming; the subscription must come first.
		entity.NewDebt("Car loan", decimal.NewFromInt(500), decimal.NewFromInt(200), datePtr(day(20)), nil, "red"),
		// Paid off, excluded.
		entity.NewDebt("Old loan", decimal.NewFromInt(300), decimal.Zero, datePtr(day(1)), nil, "gray"),
		// No due date, excluded.
		entity.NewDebt("Open tab", decimal.NewFromInt(80), decimal.NewFromInt(80), nil, nil, "blue"),
	}

	uc := newSummaryUseCase(nil, subscriptions, debts, nil)
	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := []struct {
		source ReminderSource
		name   string
		amount decimal.Decimal
	}{
		{ReminderSourceSubscription, "Gym", decimal.NewFromInt(25)},
		{ReminderSourceSubscription, "Streaming", decimal.NewFromInt(15)},
		{ReminderSourceDebt, "Car loan", decimal.NewFromInt(200)},
	}
	if len(output.Reminders) != len(want) {
		t.Fatalf("reminders = %d, want %d", len(output.Reminders), len(want))
	}
	for i, w := range want {
		got := output.Reminders[i]
		if got.Source != w.source || got.Name != w.name || !got.Amount.Equal(w.amount) {
			t.Errorf("reminder[%d] = %s %q %s, want %s %q %s",
				i, got.Source, got.Name, got.Amount, w.source, w.name, w.amount)
		}
	}
}

func TestSummaryRemindersTruncatedToFive(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, time.April, d, 0, 0, 0, 0, time.UTC)
	}

	var subscriptions []*entity.Subscription
	for d := 1; d <= 7; d++ {
		subscriptions = append(subscriptions, entity.NewSubscription(
			"sub", decimal.NewFromInt(int64(d)), "USD", entity.FrequencyMonthly, entity.CategorySoftware, day(d), "",
		))
	}

	uc := newSummaryUseCase(nil, subscriptions, nil, nil)
	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(output.Reminders) != 5 {
		t.Fatalf("reminders = %d, want 5", len(output.Reminders))
	}
	if !output.Reminders[4].Amount.Equal(decimal.NewFromInt(5)) {
		t.Errorf("last reminder amount = %s, want the fifth-earliest", output.Reminders[4].Amount)
	}
}
