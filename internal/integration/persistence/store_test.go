package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/domain/entity"
)

// memoryKV is an in-memory adapter.KVStore for tests.
type memoryKV struct {
	documents map[string][]byte
	failSaves bool
}

func newMemoryKV() *memoryKV {
	return &memoryKV{documents: make(map[string][]byte)}
}

func (m *memoryKV) Load(_ context.Context, key string) ([]byte, error) {
	value, ok := m.documents[key]
	if !ok {
		return nil, nil
	}
	return value, nil
}

func (m *memoryKV) Save(_ context.Context, key string, value []byte) error {
	if m.failSaves {
		return errors.New("backend down")
	}
	m.documents[key] = value
	return nil
}

func (m *memoryKV) DeleteAll(_ context.Context) error {
	m.documents = make(map[string][]byte)
	return nil
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryKV()
	store := NewStore(ctx, kv)

	account := entity.NewAccount("Banco", entity.AccountKindBank, decimal.NewFromInt(500), "blue")
	if err := NewAccountRepository(store).Create(ctx, account); err != nil {
		t.Fatalf("Create(account) error = %v", err)
	}

	dueDate := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	rate := decimal.NewFromFloat(4.5)
	debt := entity.NewDebt("Préstamo", decimal.NewFromInt(1000), decimal.NewFromInt(800), &dueDate, &rate, "red")
	if err := NewDebtRepository(store).Create(ctx, debt); err != nil {
		t.Fatalf("Create(debt) error = %v", err)
	}

	transaction := entity.NewTransaction(
		entity.TransactionTypeExpense,
		decimal.NewFromFloat(12.5),
		entity.CategoryFood,
		time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		"almuerzo",
		&account.ID,
	)
	if err := NewTransactionRepository(store).Create(ctx, transaction); err != nil {
		t.Fatalf("Create(transaction) error = %v", err)
	}

	settings := entity.DefaultSettings()
	settings.MonthlyBudget = decimal.NewFromInt(2000)
	settings.ReminderEmail = "ana@example.com"
	if err := NewSettingsRepository(store).Update(ctx, settings); err != nil {
		t.Fatalf("Update(settings) error = %v", err)
	}

	// A fresh store over the same backend must see everything.
	reloaded := NewStore(ctx, kv)

	accounts, err := NewAccountRepository(reloaded).List(ctx)
	if err != nil {
		t.Fatalf("List(accounts) error = %v", err)
	}
	if len(accounts) != 1 || accounts[0].ID != account.ID || !accounts[0].Balance.Equal(decimal.NewFromInt(500)) {
		t.Errorf("reloaded accounts = %+v", accounts)
	}

	debts, err := NewDebtRepository(reloaded).List(ctx)
	if err != nil {
		t.Fatalf("List(debts) error = %v", err)
	}
	if len(debts) != 1 {
		t.Fatalf("reloaded debts = %d, want 1", len(debts))
	}
	if debts[0].DueDate == nil || !debts[0].DueDate.Equal(dueDate) {
		t.Errorf("reloaded due date = %v, want %v", debts[0].DueDate, dueDate)
	}
	if debts[0].InterestRate == nil || !debts[0].InterestRate.Equal(rate) {
		t.Errorf("reloaded interest rate = %v, want %s", debts[0].InterestRate, rate)
	}

	transactions, err := NewTransactionRepository(reloaded).List(ctx)
	if err != nil {
		t.Fatalf("List(transactions) error = %v", err)
	}
	if len(transactions) != 1 {
		t.Fatalf("reloaded transactions = %d, want 1", len(transactions))
	}
	if transactions[0].AccountID == nil || *transactions[0].AccountID != account.ID {
		t.Errorf("reloaded account reference = %v", transactions[0].AccountID)
	}
	if !transactions[0].Date.Equal(time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("reloaded date = %v", transactions[0].Date)
	}

	got, err := NewSettingsRepository(reloaded).Get(ctx)
	if err != nil {
		t.Fatalf("Get(settings) error = %v", err)
	}
	if !got.MonthlyBudget.Equal(decimal.NewFromInt(2000)) || got.ReminderEmail != "ana@example.com" {
		t.Errorf("reloaded settings = %+v", got)
	}
}

func TestStoreStartsEmptyOnCorruptDocument(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryKV()
	kv.documents[adapter.KeyAccounts] = []byte("{not json")
	kv.documents[adapter.KeySettings] = []byte("also broken")

	store := NewStore(ctx, kv)

	accounts, err := NewAccountRepository(store).List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(accounts) != 0 {
		t.Errorf("accounts = %d, want empty on corrupt document", len(accounts))
	}

	settings, err := NewSettingsRepository(store).Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if settings.UserName != "Usuario" {
		t.Errorf("settings = %+v, want defaults", settings)
	}
}

func TestStoreMutationsSurviveSaveFailures(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryKV()
	kv.failSaves = true
	store := NewStore(ctx, kv)

	account := entity.NewAccount("Efectivo", entity.AccountKindCash, decimal.Zero, "green")
	repo := NewAccountRepository(store)
	if err := repo.Create(ctx, account); err != nil {
		t.Fatalf("Create() error = %v, want swallowed save failure", err)
	}

	accounts, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(accounts) != 1 {
		t.Errorf("accounts = %d, memory must stay authoritative", len(accounts))
	}
}

func TestLedgerAppliesBothHalves(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryKV()
	store := NewStore(ctx, kv)

	goal := entity.NewSavingsGoal("Vacaciones", decimal.NewFromInt(1000), decimal.NewFromInt(100), nil, "teal")
	if err := NewGoalRepository(store).Create(ctx, goal); err != nil {
		t.Fatalf("Create(goal) error = %v", err)
	}

	updated := *goal
	updated.CurrentAmount = decimal.NewFromInt(150)
	audit := entity.NewTransaction(
		entity.TransactionTypeExpense,
		decimal.NewFromInt(50),
		entity.CategoryInvestment,
		time.Now(),
		"Ahorro: Vacaciones",
		nil,
	)
	if err := NewLedgerRepository(store).ApplyGoalContribution(ctx, &updated, audit); err != nil {
		t.Fatalf("ApplyGoalContribution() error = %v", err)
	}

	reloaded := NewStore(ctx, kv)
	goals, _ := NewGoalRepository(reloaded).List(ctx)
	if len(goals) != 1 || !goals[0].CurrentAmount.Equal(decimal.NewFromInt(150)) {
		t.Errorf("reloaded goal = %+v", goals)
	}
	transactions, _ := NewTransactionRepository(reloaded).List(ctx)
	if len(transactions) != 1 {
		t.Errorf("reloaded transactions = %d, want the audit record", len(transactions))
	}
}

func TestClearAllWipesEveryCollection(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryKV()
	store := NewStore(ctx, kv)

	_ = NewAccountRepository(store).Create(ctx, entity.NewAccount("a", entity.AccountKindCash, decimal.Zero, ""))
	_ = NewDebtRepository(store).Create(ctx, entity.NewDebt("d", decimal.NewFromInt(10), decimal.NewFromInt(10), nil, nil, ""))
	settings := entity.DefaultSettings()
	settings.UserName = "Ana"
	_ = NewSettingsRepository(store).Update(ctx, settings)

	if err := NewSettingsRepository(store).ClearAll(ctx); err != nil {
		t.Fatalf("ClearAll() error = %v", err)
	}

	if len(kv.documents) != 0 {
		t.Errorf("backend documents = %d, want 0 after clear", len(kv.documents))
	}
	accounts, _ := NewAccountRepository(store).List(ctx)
	if len(accounts) != 0 {
		t.Errorf("accounts survived the clear")
	}
	got, _ := NewSettingsRepository(store).Get(ctx)
	if got.UserName != "Usuario" {
		t.Errorf("settings = %+v, want defaults after clear", got)
	}
}

func TestEmailQueueDeduplicatesReminders(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, newMemoryKV())
	repo := NewEmailQueueRepository(store)

	job := entity.NewEmailJob("debt:123:2025-06-01", "ana@example.com", "Ana", "Pagos próximos", nil)
	if err := repo.Create(ctx, job); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	exists, err := repo.ExistsForReminder(ctx, "debt:123:2025-06-01")
	if err != nil {
		t.Fatalf("ExistsForReminder() error = %v", err)
	}
	if !exists {
		t.Errorf("queued reminder not found by key")
	}

	exists, _ = repo.ExistsForReminder(ctx, "debt:123:2025-07-01")
	if exists {
		t.Errorf("unrelated reminder key reported as queued")
	}

	pending, err := repo.GetPendingJobs(ctx, 10)
	if err != nil {
		t.Fatalf("GetPendingJobs() error = %v", err)
	}
	if len(pending) != 1 {
		t.Errorf("pending jobs = %d, want 1", len(pending))
	}
}
