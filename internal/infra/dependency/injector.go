// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finanzas-genius/backend/config"
	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/application/usecase/account"
	"github.com/finanzas-genius/backend/internal/application/usecase/assistant"
	"github.com/finanzas-genius/backend/internal/application/usecase/dashboard"
	"github.com/finanzas-genius/backend/internal/application/usecase/debt"
	"github.com/finanzas-genius/backend/internal/application/usecase/goal"
	"github.com/finanzas-genius/backend/internal/application/usecase/settings"
	"github.com/finanzas-genius/backend/internal/application/usecase/subscription"
	"github.com/finanzas-genius/backend/internal/application/usecase/transaction"
	"github.com/finanzas-genius/backend/internal/infra/db"
	"github.com/finanzas-genius/backend/internal/infra/server/router"
	"github.com/finanzas-genius/backend/internal/integration/adapters"
	"github.com/finanzas-genius/backend/internal/integration/email"
	"github.com/finanzas-genius/backend/internal/integration/email/templates"
	"github.com/finanzas-genius/backend/internal/integration/entrypoint/controller"
	"github.com/finanzas-genius/backend/internal/integration/entrypoint/middleware"
	"github.com/finanzas-genius/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	Router *router.Router

	// EmailWorker is nil when the reminder worker is disabled.
	EmailWorker *email.Worker

	closeStorage func() error
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(ctx context.Context, cfg *config.Config) (*Injector, error) {
	injector := &Injector{Config: cfg}

	kv, healthCheck, err := injector.buildKVStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store := persistence.NewStore(ctx, kv)

	// Create repositories
	accountRepo := persistence.NewAccountRepository(store)
	transactionRepo := persistence.NewTransactionRepository(store)
	subscriptionRepo := persistence.NewSubscriptionRepository(store)
	goalRepo := persistence.NewGoalRepository(store)
	debtRepo := persistence.NewDebtRepository(store)
	ledgerRepo := persistence.NewLedgerRepository(store)
	settingsRepo := persistence.NewSettingsRepository(store)
	emailQueueRepo := persistence.NewEmailQueueRepository(store)

	// Create adapters/services
	assistantService := adapters.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)

	// Create account use cases
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)
	deleteAccountUseCase := account.NewDeleteAccountUseCase(accountRepo)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, accountRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create subscription use cases
	listSubscriptionsUseCase := subscription.NewListSubscriptionsUseCase(subscriptionRepo)
	createSubscriptionUseCase := subscription.NewCreateSubscriptionUseCase(subscriptionRepo)
	deleteSubscriptionUseCase := subscription.NewDeleteSubscriptionUseCase(subscriptionRepo)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)
	contributeToGoalUseCase := goal.NewContributeToGoalUseCase(goalRepo, ledgerRepo)

	// Create debt use cases
	listDebtsUseCase := debt.NewListDebtsUseCase(debtRepo)
	createDebtUseCase := debt.NewCreateDebtUseCase(debtRepo)
	updateDebtUseCase := debt.NewUpdateDebtUseCase(debtRepo)
	deleteDebtUseCase := debt.NewDeleteDebtUseCase(debtRepo)
	payDebtUseCase := debt.NewPayDebtUseCase(debtRepo, ledgerRepo)

	// Create settings use cases
	getSettingsUseCase := settings.NewGetSettingsUseCase(settingsRepo)
	updateSettingsUseCase := settings.NewUpdateSettingsUseCase(settingsRepo)
	clearDataUseCase := settings.NewClearDataUseCase(settingsRepo)
	exportDataUseCase := settings.NewExportDataUseCase(
		settingsRepo,
		accountRepo,
		transactionRepo,
		subscriptionRepo,
		goalRepo,
		debtRepo,
	)

	// Create dashboard use case
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(
		transactionRepo,
		subscriptionRepo,
		debtRepo,
		settingsRepo,
		nil,
	)

	// Create assistant use cases
	processCommandUseCase := assistant.NewProcessCommandUseCase(
		assistantService,
		createTransactionUseCase,
		createSubscriptionUseCase,
	)
	analyzeFinancesUseCase := assistant.NewAnalyzeFinancesUseCase(
		assistantService,
		subscriptionRepo,
		transactionRepo,
	)
	suggestCategoryUseCase := assistant.NewSuggestCategoryUseCase(assistantService)

	// Create controllers
	healthController := controller.NewHealthController(healthCheck)
	accountController := controller.NewAccountController(
		listAccountsUseCase,
		createAccountUseCase,
		deleteAccountUseCase,
	)
	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		deleteTransactionUseCase,
	)
	subscriptionController := controller.NewSubscriptionController(
		listSubscriptionsUseCase,
		createSubscriptionUseCase,
		deleteSubscriptionUseCase,
	)
	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
		contributeToGoalUseCase,
	)
	debtController := controller.NewDebtController(
		listDebtsUseCase,
		createDebtUseCase,
		updateDebtUseCase,
		deleteDebtUseCase,
		payDebtUseCase,
	)
	settingsController := controller.NewSettingsController(
		getSettingsUseCase,
		updateSettingsUseCase,
		clearDataUseCase,
		exportDataUseCase,
	)
	dashboardController := controller.NewDashboardController(getSummaryUseCase)
	assistantController := controller.NewAssistantController(
		processCommandUseCase,
		analyzeFinancesUseCase,
		suggestCategoryUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var assistantRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		assistantRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		assistantRateLimiter = middleware.NewRateLimiter()
	}

	// Create the reminder worker when email sending is configured
	if cfg.Email.WorkerEnabled && cfg.Email.ResendAPIKey != "" {
		renderer, err := templates.NewRenderer()
		if err != nil {
			return nil, fmt.Errorf("failed to load email templates: %w", err)
		}
		sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		reminderService := email.NewService(
			emailQueueRepo,
			subscriptionRepo,
			debtRepo,
			settingsRepo,
			cfg.Email.ReminderLeadDays,
		)
		injector.EmailWorker = email.NewWorker(reminderService, emailQueueRepo, sender, renderer, email.WorkerConfig{
			PollInterval: cfg.Email.PollInterval,
			ScanInterval: cfg.Email.ScanInterval,
			BatchSize:    cfg.Email.BatchSize,
		})
	}

	// Create router
	injector.Router = router.NewRouter(
		healthController,
		accountController,
		transactionController,
		subscriptionController,
		goalController,
		debtController,
		settingsController,
		dashboardController,
		assistantController,
		assistantRateLimiter,
	)

	return injector, nil
}

// buildKVStore opens the configured storage backend and returns the document
// store together with its health check.
func (i *Injector) buildKVStore(ctx context.Context, cfg *config.Config) (adapter.KVStore, func() bool, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendSQLite:
		database, err := db.NewSQLiteConnection(&cfg.Storage)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		kv, err := persistence.NewDocumentStore(database.DB())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize document store: %w", err)
		}
		i.closeStorage = database.Close
		return kv, database.HealthCheck, nil

	case config.StorageBackendPostgres:
		database, err := db.NewPostgresConnection(&cfg.Storage)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
		kv, err := persistence.NewDocumentStore(database.DB())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize document store: %w", err)
		}
		i.closeStorage = database.Close
		return kv, database.HealthCheck, nil

	case config.StorageBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Storage.RedisAddr,
			Password: cfg.Storage.RedisPassword,
			DB:       cfg.Storage.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		i.closeStorage = client.Close
		healthCheck := func() bool {
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return client.Ping(pingCtx).Err() == nil
		}
		return persistence.NewRedisStore(client), healthCheck, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// Close releases the storage backend.
func (i *Injector) Close() error {
	if i.closeStorage == nil {
		return nil
	}
	return i.closeStorage()
}
