package debt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-genius/backend/internal/domain/entity"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
)

type fakeDebtRepo struct {
	debts map[uuid.UUID]*entity.Debt
}

func (f *fakeDebtRepo) List(_ context.Context) ([]*entity.Debt, error) {
	debts := make([]*entity.Debt, 0, len(f.debts))
	for _, d := range f.debts {
		debts = append(debts, d)
	}
	return debts, nil
}

func (f *fakeDebtRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Debt, error) {
	debt, ok := f.debts[id]
	if !ok {
		return nil, domainerror.ErrDebtNotFound
	}
	return debt, nil
}

func (f *fakeDebtRepo) Create(_ context.Context, d *entity.Debt) error {
	f.debts[d.ID] = d
	return nil
}

func (f *fakeDebtRepo) Update(_ context.Context, d *entity.Debt) error {
	if _, ok := f.debts[d.ID]; !ok {
		return domainerror.ErrDebtNotFound
	}
	f.debts[d.ID] = d
	return nil
}

func (f *fakeDebtRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.debts[id]; !ok {
		return domainerror.ErrDebtNotFound
	}
	delete(f.debts, id)
	return nil
}

type fakeLedger struct {
	debtRepo     *fakeDebtRepo
	transactions []*entity.Transaction
}

func (f *fakeLedger) ApplyGoalContribution(_ context.Context, _ *entity.SavingsGoal, _ *entity.Transaction) error {
	return nil
}

func (f *fakeLedger) ApplyDebtPayment(_ context.Context, d *entity.Debt, t *entity.Transaction) error {
	if _, ok := f.debtRepo.debts[d.ID]; !ok {
		return domainerror.ErrDebtNotFound
	}
	f.debtRepo.debts[d.ID] = d
	f.transactions = append(f.transactions, t)
	return nil
}

func TestPayDebt(t *testing.T) {
	debt := entity.NewDebt("Car loan", decimal.NewFromInt(100), decimal.NewFromInt(100), nil, nil, "red")
	debtRepo := &fakeDebtRepo{debts: map[uuid.UUID]*entity.Debt{debt.ID: debt}}
	ledger := &fakeLedger{debtRepo: debtRepo}

	uc := NewPayDebtUseCase(debtRepo, ledger)
	output, err := uc.Execute(context.Background(), PayDebtInput{
		DebtID: debt.ID,
		Amount: decimal.NewFromInt(40),
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !output.Debt.RemainingAmount.Equal(decimal.NewFromInt(60)) {
		t.Errorf("remaining = %s, want 60", output.Debt.RemainingAmount)
	}
	if len(ledger.transactions) != 1 {
		t.Fatalf("emitted transactions = %d, want 1", len(ledger.transactions))
	}

	emitted := ledger.transactions[0]
	if emitted.Type != entity.TransactionTypeExpense {
		t.Errorf("emitted type = %s, want expense", emitted.Type)
	}
	if emitted.Category != entity.CategoryDebt {
		t.Errorf("emitted category = %s, want debt", emitted.Category)
	}
	if !emitted.Amount.Equal(decimal.NewFromInt(40)) {
		t.Errorf("emitted amount = %s, want 40", emitted.Amount)
	}
}

func TestPayDebtRejectsOverpayment(t *testing.T) {
	debt := entity.NewDebt("Car loan", decimal.NewFromInt(100), decimal.NewFromInt(100), nil, nil, "red")
	debtRepo := &fakeDebtRepo{debts: map[uuid.UUID]*entity.Debt{debt.ID: debt}}
	ledger := &fakeLedger{debtRepo: debtRepo}

	uc := NewPayDebtUseCase(debtRepo, ledger)
	_, err := uc.Execute(context.Background(), PayDebtInput{
		DebtID: debt.ID,
		Amount: decimal.NewFromInt(150),
	})
	if err == nil {
		t.Fatal("Execute() error = nil, want rejection")
	}
	if !errors.Is(err, domainerror.ErrPaymentExceedsRemaining) {
		t.Errorf("error = %v, want ErrPaymentExceedsRemaining", err)
	}

	if !debtRepo.debts[debt.ID].RemainingAmount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("remaining changed to %s, want untouched 100", debtRepo.debts[debt.ID].RemainingAmount)
	}
	if len(ledger.transactions) != 0 {
		t.Errorf("transaction emitted by rejected payment")
	}
}

func TestPayDebtRejectsNonPositiveAmount(t *testing.T) {
	debt := entity.NewDebt("Car loan", decimal.NewFromInt(100), decimal.NewFromInt(100), nil, nil, "red")
	debtRepo := &fakeDebtRepo{debts: map[uuid.UUID]*entity.Debt{debt.ID: debt}}
	ledger := &fakeLedger{debtRepo: debtRepo}

	uc := NewPayDebtUseCase(debtRepo, ledger)

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-20)} {
		_, err := uc.Execute(context.Background(), PayDebtInput{DebtID: debt.ID, Amount: amount})
		if err == nil {
			t.Errorf("Execute(%s) error = nil, want rejection", amount)
		}
		if !errors.Is(err, domainerror.ErrInvalidPayment) {
			t.Errorf("error = %v, want ErrInvalidPayment", err)
		}
	}

	if len(ledger.transactions) != 0 {
		t.Errorf("transaction emitted by rejected payment")
	}
}

func TestPayDebtUnknownDebt(t *testing.T) {
	debtRepo := &fakeDebtRepo{debts: map[uuid.UUID]*entity.Debt{}}
	ledger := &fakeLedger{debtRepo: debtRepo}

	uc := NewPayDebtUseCase(debtRepo, ledger)
	_, err := uc.Execute(context.Background(), PayDebtInput{DebtID: uuid.New(), Amount: decimal.NewFromInt(10)})
	if !errors.Is(err, domainerror.ErrDebtNotFound) {
		t.Errorf("error = %v, want ErrDebtNotFound", err)
	}
}
