package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/domain/entity"
)

// ExportDataOutput is the full snapshot of user data handed to the caller for
// download. The export date marks when the snapshot was taken.
type ExportDataOutput struct {
	Settings      *entity.Settings
	Accounts      []*entity.Account
	Transactions  []*entity.Transaction
	Subscriptions []*entity.Subscription
	Goals         []*entity.SavingsGoal
	Debts         []*entity.Debt
	ExportDate    time.Time
}

// ExportDataUseCase gathers every collection into a single export snapshot.
type ExportDataUseCase struct {
	settingsRepo     adapter.SettingsRepository
	accountRepo      adapter.AccountRepository
	transactionRepo  adapter.TransactionRepository
	subscriptionRepo adapter.SubscriptionRepository
	goalRepo         adapter.GoalRepository
	debtRepo         adapter.DebtRepository
}

// NewExportDataUseCase creates a new ExportDataUseCase instance.
func NewExportDataUseCase(
	settingsRepo adapter.SettingsRepository,
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
	subscriptionRepo adapter.SubscriptionRepository,
	goalRepo adapter.GoalRepository,
	debtRepo adapter.DebtRepository,
) *ExportDataUseCase {
	return &ExportDataUseCase{
		settingsRepo:     settingsRepo,
		accountRepo:      accountRepo,
		transactionRepo:  transactionRepo,
		subscriptionRepo: subscriptionRepo,
		goalRepo:         goalRepo,
		debtRepo:         debtRepo,
	}
}

// Execute builds the export snapshot.
func (uc *ExportDataUseCase) Execute(ctx context.Context) (*ExportDataOutput, error) {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings for export: %w", err)
	}

	accounts, err := uc.accountRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts for export: %w", err)
	}

	transactions, err := uc.transactionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for export: %w", err)
	}

	subscriptions, err := uc.subscriptionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscriptions for export: %w", err)
	}

	goals, err := uc.goalRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals for export: %w", err)
	}

	debts, err := uc.debtRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load debts for export: %w", err)
	}

	return &ExportDataOutput{
		Settings:      settings,
		Accounts:      accounts,
		Transactions:  transactions,
		Subscriptions: subscriptions,
		Goals:         goals,
		Debts:         debts,
		ExportDate:    time.Now().UTC(),
	}, nil
}
