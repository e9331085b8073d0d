package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/application/usecase/subscription"
	"github.com/finanzas-genius/backend/internal/application/usecase/transaction"
	"github.com/finanzas-genius/backend/internal/domain/entity"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
)

type fakeAssistant struct {
	available bool
	parsed    *adapter.ParsedCommand
	parseErr  error
}

func (f *fakeAssistant) IsAvailable() bool { return f.available }

func (f *fakeAssistant) ParseCommand(_ context.Context, _ adapter.CommandInput) (*adapter.ParsedCommand, error) {
	return f.parsed, f.parseErr
}

func (f *fakeAssistant) Analyze(_ context.Context, _ []*entity.Subscription, _ []*entity.Transaction) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeAssistant) SuggestCategory(_ context.Context, _, _ string) (entity.Category, error) {
	return entity.CategoryOther, nil
}

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

type fakeAccountRepo struct{}

func (f *fakeAccountRepo) List(_ context.Context) ([]*entity.Account, error) { return nil, nil }

func (f *fakeAccountRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Account, error) {
	return nil, domainerror.ErrAccountNotFound
}

func (f *fakeAccountRepo) Create(_ context.Context, _ *entity.Account) error { return nil }

func (f *fakeAccountRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (f *fakeAccountRepo) ApplyBalanceChange(_ context.Context, _ uuid.UUID, _ decimal.Decimal) error {
	return domainerror.ErrAccountNotFound
}

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

func newProcessCommandFixture(assistant *fakeAssistant) (*ProcessCommandUseCase, *fakeTransactionRepo, *fakeSubscriptionRepo) {
	transactionRepo := &fakeTransactionRepo{}
	subscriptionRepo := &fakeSubscriptionRepo{}
	uc := NewProcessCommandUseCase(
		assistant,
		transaction.NewCreateTransactionUseCase(transactionRepo, &fakeAccountRepo{}),
		subscription.NewCreateSubscriptionUseCase(subscriptionRepo),
	)
	return uc, transactionRepo, subscriptionRepo
}

func TestProcessCommandCreatesTransaction(t *testing.T) {
	assistant := &fakeAssistant{
		available: true,
		parsed: &adapter.ParsedCommand{
			Intent: adapter.IntentTransaction,
			Transaction: &adapter.TransactionDraft{
				Type:        "expense",
				Amount:      decimal.NewFromInt(15),
				Category:    "food",
				Date:        time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
				Description: "almuerzo",
			},
		},
	}
	uc, transactionRepo, _ := newProcessCommandFixture(assistant)

	output, err := uc.Execute(context.Background(), ProcessCommandInput{Text: "gasté 15 en comida"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.Intent != adapter.IntentTransaction {
		t.Errorf("intent = %s, want TRANSACTION", output.Intent)
	}
	if len(transactionRepo.transactions) != 1 {
		t.Fatalf("stored transactions = %d, want 1", len(transactionRepo.transactions))
	}
	stored := transactionRepo.transactions[0]
	if stored.Type != entity.TransactionTypeExpense || stored.Category != entity.CategoryFood {
		t.Errorf("stored transaction = %s/%s, want expense/food", stored.Type, stored.Category)
	}
}

func TestProcessCommandCreatesSubscription(t *testing.T) {
	assistant := &fakeAssistant{
		available: true,
		parsed: &adapter.ParsedCommand{
			Intent: adapter.IntentSubscription,
			Subscription: &adapter.SubscriptionDraft{
				Name:            "Netflix",
				Amount:          decimal.NewFromInt(12),
				Frequency:       "monthly",
				Category:        "entertainment",
				NextPaymentDate: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
			},
		},
	}
	uc, _, subscriptionRepo := newProcessCommandFixture(assistant)

	output, err := uc.Execute(context.Background(), ProcessCommandInput{Text: "suscripción a netflix de 12 al mes"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.Intent != adapter.IntentSubscription {
		t.Errorf("intent = %s, want SUBSCRIPTION", output.Intent)
	}
	if len(subscriptionRepo.subscriptions) != 1 {
		t.Fatalf("stored subscriptions = %d, want 1", len(subscriptionRepo.subscriptions))
	}
	if subscriptionRepo.subscriptions[0].Frequency != entity.FrequencyMonthly {
		t.Errorf("stored frequency = %s, want monthly", subscriptionRepo.subscriptions[0].Frequency)
	}
}

func TestProcessCommandDegradesUnknownEnums(t *testing.T) {
	tests := []struct {
		name   string
		parsed *adapter.ParsedCommand
	}{
		{
			"unknown transaction category",
			&adapter.ParsedCommand{
				Intent: adapter.IntentTransaction,
				Transaction: &adapter.TransactionDraft{
					Type: "expense", Amount: decimal.NewFromInt(10), Category: "cripto",
				},
			},
		},
		{
			"unknown transaction type",
			&adapter.ParsedCommand{
				Intent: adapter.IntentTransaction,
				Transaction: &adapter.TransactionDraft{
					Type: "transfer", Amount: decimal.NewFromInt(10), Category: "food",
				},
			},
		},
		{
			"unknown subscription frequency",
			&adapter.ParsedCommand{
				Intent: adapter.IntentSubscription,
				Subscription: &adapter.SubscriptionDraft{
					Name: "Gym", Amount: decimal.NewFromInt(10), Frequency: "daily", Category: "fitness",
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, transactionRepo, subscriptionRepo := newProcessCommandFixture(&fakeAssistant{available: true, parsed: tt.parsed})

			output, err := uc.Execute(context.Background(), ProcessCommandInput{Text: "algo"})
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if output.Intent != adapter.IntentUnknown {
				t.Errorf("intent = %s, want UNKNOWN", output.Intent)
			}
			if output.Message == "" {
				t.Errorf("UNKNOWN result carries no message")
			}
			if len(transactionRepo.transactions) != 0 || len(subscriptionRepo.subscriptions) != 0 {
				t.Errorf("degraded draft entered the store")
			}
		})
	}
}

func TestProcessCommandUnknownIntentKeepsAssistantMessage(t *testing.T) {
	uc, _, _ := newProcessCommandFixture(&fakeAssistant{
		available: true,
		parsed:    &adapter.ParsedCommand{Intent: adapter.IntentUnknown, Error: "no entendí el monto"},
	})

	output, err := uc.Execute(context.Background(), ProcessCommandInput{Text: "mmm"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if output.Message != "no entendí el monto" {
		t.Errorf("message = %q, want the assistant's explanation", output.Message)
	}
}

func TestProcessCommandRejectsEmptyInput(t *testing.T) {
	uc, _, _ := newProcessCommandFixture(&fakeAssistant{available: true})

	_, err := uc.Execute(context.Background(), ProcessCommandInput{Text: "   "})
	if !errors.Is(err, domainerror.ErrEmptyCommand) {
		t.Errorf("error = %v, want ErrEmptyCommand", err)
	}
}

func TestProcessCommandUnavailableAssistant(t *testing.T) {
	uc, _, _ := newProcessCommandFixture(&fakeAssistant{available: false})

	_, err := uc.Execute(context.Background(), ProcessCommandInput{Text: "gasté 15"})
	if !errors.Is(err, domainerror.ErrAssistantUnavailable) {
		t.Errorf("error = %v, want ErrAssistantUnavailable", err)
	}
}

func TestSuggestCategoryFallsBackToOther(t *testing.T) {
	uc := NewSuggestCategoryUseCase(&fakeAssistant{available: true})

	output, err := uc.Execute(context.Background(), SuggestCategoryInput{Name: "algo raro"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if output.Category != entity.CategoryOther {
		t.Errorf("category = %s, want other", output.Category)
	}
}
