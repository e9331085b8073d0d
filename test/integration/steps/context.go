// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/application/usecase/account"
	"github.com/finanzas-genius/backend/internal/application/usecase/assistant"
	"github.com/finanzas-genius/backend/internal/application/usecase/dashboard"
	"github.com/finanzas-genius/backend/internal/application/usecase/debt"
	"github.com/finanzas-genius/backend/internal/application/usecase/goal"
	"github.com/finanzas-genius/backend/internal/application/usecase/settings"
	"github.com/finanzas-genius/backend/internal/application/usecase/subscription"
	"github.com/finanzas-genius/backend/internal/application/usecase/transaction"
	"github.com/finanzas-genius/backend/internal/infra/server/router"
	"github.com/finanzas-genius/backend/internal/integration/entrypoint/controller"
	"github.com/finanzas-genius/backend/internal/integration/entrypoint/middleware"
	"github.com/finanzas-genius/backend/internal/integration/persistence"
	"github.com/finanzas-genius/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Stored values for endpoint/body placeholders
	vars map[string]string

	// Test doubles
	assistant *mock.Assistant
	clock     *mock.Clock
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			requestHeaders: make(map[string]string),
			vars:           make(map[string]string),
			assistant:      mock.NewAssistant(),
			clock:          mock.NewClock(),
		}

		kv, err := buildKVStore(ctx, sc)
		if err != nil {
			return ctx, err
		}

		tc.engine = buildEngine(ctx, kv, tc.assistant, tc.clock)
		tc.server = httptest.NewServer(tc.engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerAppSteps(ctx)
}

// buildKVStore selects the document backend for the scenario. Scenarios
// tagged @redis run against miniredis, everything else against in-memory
// SQLite, so both backends stay covered.
func buildKVStore(ctx context.Context, sc *godog.Scenario) (adapter.KVStore, error) {
	for _, tag := range sc.Tags {
		if tag.Name == "@redis" {
			client := mock.NewRedis()
			if err := mock.ClearRedis(client); err != nil {
				return nil, err
			}
			return persistence.NewRedisStore(client), nil
		}
	}

	kv, err := persistence.NewDocumentStore(mock.NewDb())
	if err != nil {
		return nil, err
	}
	if err := kv.DeleteAll(ctx); err != nil {
		return nil, err
	}
	return kv, nil
}

// buildEngine wires the full application against the given backend, with the
// assistant and the dashboard clock replaced by test doubles.
func buildEngine(ctx context.Context, kv adapter.KVStore, assistantService adapter.AssistantService, clock *mock.Clock) *gin.Engine {
	store := persistence.NewStore(ctx, kv)

	accountRepo := persistence.NewAccountRepository(store)
	transactionRepo := persistence.NewTransactionRepository(store)
	subscriptionRepo := persistence.NewSubscriptionRepository(store)
	goalRepo := persistence.NewGoalRepository(store)
	debtRepo := persistence.NewDebtRepository(store)
	ledgerRepo := persistence.NewLedgerRepository(store)
	settingsRepo := persistence.NewSettingsRepository(store)

	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, accountRepo)
	createSubscriptionUseCase := subscription.NewCreateSubscriptionUseCase(subscriptionRepo)

	accountController := controller.NewAccountController(
		account.NewListAccountsUseCase(accountRepo),
		account.NewCreateAccountUseCase(accountRepo),
		account.NewDeleteAccountUseCase(accountRepo),
	)
	transactionController := controller.NewTransactionController(
		transaction.NewListTransactionsUseCase(transactionRepo),
		createTransactionUseCase,
		transaction.NewDeleteTransactionUseCase(transactionRepo),
	)
	subscriptionController := controller.NewSubscriptionController(
		subscription.NewListSubscriptionsUseCase(subscriptionRepo),
		createSubscriptionUseCase,
		subscription.NewDeleteSubscriptionUseCase(subscriptionRepo),
	)
	goalController := controller.NewGoalController(
		goal.NewListGoalsUseCase(goalRepo),
		goal.NewCreateGoalUseCase(goalRepo),
		goal.NewUpdateGoalUseCase(goalRepo),
		goal.NewDeleteGoalUseCase(goalRepo),
		goal.NewContributeToGoalUseCase(goalRepo, ledgerRepo),
	)
	debtController := controller.NewDebtController(
		debt.NewListDebtsUseCase(debtRepo),
		debt.NewCreateDebtUseCase(debtRepo),
		debt.NewUpdateDebtUseCase(debtRepo),
		debt.NewDeleteDebtUseCase(debtRepo),
		debt.NewPayDebtUseCase(debtRepo, ledgerRepo),
	)
	settingsController := controller.NewSettingsController(
		settings.NewGetSettingsUseCase(settingsRepo),
		settings.NewUpdateSettingsUseCase(settingsRepo),
		settings.NewClearDataUseCase(settingsRepo),
		settings.NewExportDataUseCase(
			settingsRepo,
			accountRepo,
			transactionRepo,
			subscriptionRepo,
			goalRepo,
			debtRepo,
		),
	)
	dashboardController := controller.NewDashboardController(
		dashboard.NewGetSummaryUseCase(transactionRepo, subscriptionRepo, debtRepo, settingsRepo, clock.Now),
	)
	assistantController := controller.NewAssistantController(
		assistant.NewProcessCommandUseCase(assistantService, createTransactionUseCase, createSubscriptionUseCase),
		assistant.NewAnalyzeFinancesUseCase(assistantService, subscriptionRepo, transactionRepo),
		assistant.NewSuggestCategoryUseCase(assistantService),
	)
	healthController := controller.NewHealthController(func() bool { return true })

	// High limits so scenarios never trip the assistant rate limiter
	rateLimiter := middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)

	r := router.NewRouter(
		healthController,
		accountController,
		transactionController,
		subscriptionController,
		goalController,
		debtController,
		settingsController,
		dashboardController,
		assistantController,
		rateLimiter,
	)
	return r.Setup("test")
}
