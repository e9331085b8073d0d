package goal

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-genius/backend/internal/domain/entity"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
)

type fakeGoalRepo struct {
	goals map[uuid.UUID]*entity.SavingsGoal
}

func (f *fakeGoalRepo) List(_ context.Context) ([]*entity.SavingsGoal, error) {
	goals := make([]*entity.SavingsGoal, 0, len(f.goals))
	for _, g := range f.goals {
		goals = append(goals, g)
	}
	return goals, nil
}

func (f *fakeGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.SavingsGoal, error) {
	goal, ok := f.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	return goal, nil
}

func (f *fakeGoalRepo) Create(_ context.Context, g *entity.SavingsGoal) error {
	f.goals[g.ID] = g
	return nil
}

func (f *fakeGoalRepo) Update(_ context.Context, g *entity.SavingsGoal) error {
	if _, ok := f.goals[g.ID]; !ok {
		return domainerror.ErrGoalNotFound
	}
	f.goals[g.ID] = g
	return nil
}

func (f *fakeGoalRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.goals[id]; !ok {
		return domainerror.ErrGoalNotFound
	}
	delete(f.goals, id)
	return nil
}

type fakeLedger struct {
	goalRepo     *fakeGoalRepo
	transactions []*entity.Transaction
}

func (f *fakeLedger) ApplyGoalContribution(_ context.Context, g *entity.SavingsGoal, t *entity.Transaction) error {
	if _, ok := f.goalRepo.goals[g.ID]; !ok {
		return domainerror.ErrGoalNotFound
	}
	f.goalRepo.goals[g.ID] = g
	f.transactions = append(f.transactions, t)
	return nil
}

func (f *fakeLedger) ApplyDebtPayment(_ context.Context, _ *entity.Debt, _ *entity.Transaction) error {
	return nil
}

func TestContributeToGoal(t *testing.T) {
	goal := entity.NewSavingsGoal("Vacation", decimal.NewFromInt(500), decimal.Zero, nil, "blue")
	goalRepo := &fakeGoalRepo{goals: map[uuid.UUID]*entity.SavingsGoal{goal.ID: goal}}
	ledger := &fakeLedger{goalRepo: goalRepo}

	uc := NewContributeToGoalUseCase(goalRepo, ledger)
	output, err := uc.Execute(context.Background(), ContributeToGoalInput{
		GoalID: goal.ID,
		Amount: decimal.NewFromInt(50),
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !output.Goal.CurrentAmount.Equal(decimal.NewFromInt(50)) {
		t.Errorf("current amount = %s, want 50", output.Goal.CurrentAmount)
	}
	if len(ledger.transactions) != 1 {
		t.Fatalf("emitted transactions = %d, want 1", len(ledger.transactions))
	}

	emitted := ledger.transactions[0]
	if emitted.Type != entity.TransactionTypeExpense {
		t.Errorf("emitted type = %s, want expense", emitted.Type)
	}
	if emitted.Category != entity.CategoryInvestment {
		t.Errorf("emitted category = %s, want investment", emitted.Category)
	}
	if !emitted.Amount.Equal(decimal.NewFromInt(50)) {
		t.Errorf("emitted amount = %s, want 50", emitted.Amount)
	}
}

func TestContributeToGoalAllowsOverSaving(t *testing.T) {
	goal := entity.NewSavingsGoal("Vacation", decimal.NewFromInt(100), decimal.NewFromInt(90), nil, "blue")
	goalRepo := &fakeGoalRepo{goals: map[uuid.UUID]*entity.SavingsGoal{goal.ID: goal}}
	ledger := &fakeLedger{goalRepo: goalRepo}

	uc := NewContributeToGoalUseCase(goalRepo, ledger)
	output, err := uc.Execute(context.Background(), ContributeToGoalInput{
		GoalID: goal.ID,
		Amount: decimal.NewFromInt(50),
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !output.Goal.CurrentAmount.Equal(decimal.NewFromInt(140)) {
		t.Errorf("current amount = %s, want uncapped 140", output.Goal.CurrentAmount)
	}
}

func TestContributeToGoalRejectsNonPositiveAmount(t *testing.T) {
	goal := entity.NewSavingsGoal("Vacation", decimal.NewFromInt(500), decimal.Zero, nil, "blue")
	goalRepo := &fakeGoalRepo{goals: map[uuid.UUID]*entity.SavingsGoal{goal.ID: goal}}
	ledger := &fakeLedger{goalRepo: goalRepo}

	uc := NewContributeToGoalUseCase(goalRepo, ledger)

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10)} {
		if _, err := uc.Execute(context.Background(), ContributeToGoalInput{GoalID: goal.ID, Amount: amount}); err == nil {
			t.Errorf("Execute(%s) error = nil, want rejection", amount)
		}
	}

	if !goal.CurrentAmount.IsZero() {
		t.Errorf("goal mutated by rejected contribution")
	}
	if len(ledger.transactions) != 0 {
		t.Errorf("transaction emitted by rejected contribution")
	}
}
