package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-genius/backend/internal/domain/entity"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
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

func (f *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, t := range f.transactions {
		if t.ID == id {
			f.transactions = append(f.transactions[:i], f.transactions[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}

type fakeAccountRepo struct {
	accounts map[uuid.UUID]*entity.Account
}

func (f *fakeAccountRepo) List(_ context.Context) ([]*entity.Account, error) {
	accounts := make([]*entity.Account, 0, len(f.accounts))
	for _, a := range f.accounts {
		accounts = append(accounts, a)
	}
	return accounts, nil
}

func (f *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	account, ok := f.accounts[id]
	if !ok {
		return nil, domainerror.ErrAccountNotFound
	}
	return account, nil
}

func (f *fakeAccountRepo) Create(_ context.Context, a *entity.Account) error {
	f.accounts[a.ID] = a
	return nil
}

func (f *fakeAccountRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.accounts[id]; !ok {
		return domainerror.ErrAccountNotFound
	}
	delete(f.accounts, id)
	return nil
}

func (f *fakeAccountRepo) ApplyBalanceChange(_ context.Context, id uuid.UUID, delta decimal.Decimal) error {
	account, ok := f.accounts[id]
	if !ok {
		return domainerror.ErrAccountNotFound
	}
	account.Balance = account.Balance.Add(delta)
	return nil
}

func newFakeAccountRepo(accounts ...*entity.Account) *fakeAccountRepo {
	repo := &fakeAccountRepo{accounts: make(map[uuid.UUID]*entity.Account)}
	for _, a := range accounts {
		repo.accounts[a.ID] = a
	}
	return repo
}

func TestCreateTransactionAdjustsAccountBalance(t *testing.T) {
	tests := []struct {
		name            string
		transactionType entity.TransactionType
		amount          string
		startBalance    string
		wantBalance     string
	}{
		{
			name:            "income adds to balance",
			transactionType: entity.TransactionTypeIncome,
			amount:          "250",
			startBalance:    "1000",
			wantBalance:     "1250",
		},
		{
			name:            "expense subtracts from balance",
			transactionType: entity.TransactionTypeExpense,
			amount:          "40.50",
			startBalance:    "100",
			wantBalance:     "59.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := entity.NewAccount("Checking", entity.AccountKindBank, decimal.RequireFromString(tt.startBalance), "blue")
			accountRepo := newFakeAccountRepo(account)
			txRepo := &fakeTransactionRepo{}

			uc := NewCreateTransactionUseCase(txRepo, accountRepo)
			_, err := uc.Execute(context.Background(), CreateTransactionInput{
				Type:        tt.transactionType,
				Amount:      decimal.RequireFromString(tt.amount),
				Category:    entity.CategoryFood,
				Date:        time.Now(),
				Description: "test",
				AccountID:   &account.ID,
			})
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}

			if !account.Balance.Equal(decimal.RequireFromString(tt.wantBalance)) {
				t.Errorf("balance = %s, want %s", account.Balance, tt.wantBalance)
			}
			if len(txRepo.transactions) != 1 {
				t.Errorf("transactions stored = %d, want 1", len(txRepo.transactions))
			}
		})
	}
}

func TestCreateTransactionUnknownAccountIsSilent(t *testing.T) {
	account := entity.NewAccount("Cash", entity.AccountKindCash, decimal.NewFromInt(500), "green")
	accountRepo := newFakeAccountRepo(account)
	txRepo := &fakeTransactionRepo{}

	unknownID := uuid.New()
	uc := NewCreateTransactionUseCase(txRepo, accountRepo)
	output, err := uc.Execute(context.Background(), CreateTransactionInput{
		Type:      entity.TransactionTypeExpense,
		Amount:    decimal.NewFromInt(30),
		Category:  entity.CategoryTransport,
		Date:      time.Now(),
		AccountID: &unknownID,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v, want silent skip", err)
	}

	if len(txRepo.transactions) != 1 {
		t.Fatalf("transaction was not created")
	}
	if !account.Balance.Equal(decimal.NewFromInt(500)) {
		t.Errorf("balance changed to %s, want untouched 500", account.Balance)
	}
	if output.Transaction.AccountID == nil || *output.Transaction.AccountID != unknownID {
		t.Errorf("transaction should keep the dangling account reference")
	}
}

func TestCreateTransactionValidation(t *testing.T) {
	tests := []struct {
		name  string
		input CreateTransactionInput
	}{
		{
			name: "invalid type",
			input: CreateTransactionInput{
				Type:     entity.TransactionType("transfer"),
				Amount:   decimal.NewFromInt(10),
				Category: entity.CategoryFood,
			},
		},
		{
			name: "zero amount",
			input: CreateTransactionInput{
				Type:     entity.TransactionTypeExpense,
				Amount:   decimal.Zero,
				Category: entity.CategoryFood,
			},
		},
		{
			name: "negative amount",
			input: CreateTransactionInput{
				Type:     entity.TransactionTypeExpense,
				Amount:   decimal.NewFromInt(-5),
				Category: entity.CategoryFood,
			},
		},
		{
			name: "unknown category",
			input: CreateTransactionInput{
				Type:     entity.TransactionTypeExpense,
				Amount:   decimal.NewFromInt(10),
				Category: entity.Category("groceries-deluxe"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txRepo := &fakeTransactionRepo{}
			uc := NewCreateTransactionUseCase(txRepo, newFakeAccountRepo())
			if _, err := uc.Execute(context.Background(), tt.input); err == nil {
				t.Fatal("Execute() error = nil, want validation error")
			}
			if len(txRepo.transactions) != 0 {
				t.Errorf("transaction stored despite validation failure")
			}
		})
	}
}

// Deleting a transaction must never reverse the balance effect it had when
// it was created.
func TestDeleteTransactionKeepsAccountBalance(t *testing.T) {
	account := entity.NewAccount("Checking", entity.AccountKindBank, decimal.NewFromInt(100), "blue")
	accountRepo := newFakeAccountRepo(account)
	txRepo := &fakeTransactionRepo{}

	createUC := NewCreateTransactionUseCase(txRepo, accountRepo)
	output, err := createUC.Execute(context.Background(), CreateTransactionInput{
		Type:      entity.TransactionTypeExpense,
		Amount:    decimal.NewFromInt(25),
		Category:  entity.CategoryFood,
		Date:      time.Now(),
		AccountID: &account.ID,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !account.Balance.Equal(decimal.NewFromInt(75)) {
		t.Fatalf("balance after create = %s, want 75", account.Balance)
	}

	deleteUC := NewDeleteTransactionUseCase(txRepo)
	if err := deleteUC.Execute(context.Background(), DeleteTransactionInput{ID: output.Transaction.ID}); err != nil {
		t.Fatalf("delete error = %v", err)
	}

	if len(txRepo.transactions) != 0 {
		t.Errorf("transaction not removed")
	}
	if !account.Balance.Equal(decimal.NewFromInt(75)) {
		t.Errorf("balance after delete = %s, want unchanged 75", account.Balance)
	}
}
