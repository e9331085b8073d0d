package assistant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
)

// analysisFallback is returned whenever the assistant cannot produce an
// analysis. Mirrors the product copy shown in the UI.
const analysisFallback = "No pude generar el análisis en este momento. Intenta de nuevo más tarde."

// recentTransactionLimit bounds how much history is sent to the assistant.
const recentTransactionLimit = 20

// AnalyzeFinancesOutput carries the assistant's prose commentary.
type AnalyzeFinancesOutput struct {
	Analysis string
}

// AnalyzeFinancesUseCase asks the assistant for commentary over the current
// subscriptions and recent transactions. Failures never surface as errors;
// the caller always gets prose, falling back to a fixed message.
type AnalyzeFinancesUseCase struct {
	assistant        adapter.AssistantService
	subscriptionRepo adapter.SubscriptionRepository
	transactionRepo  adapter.TransactionRepository
}

// NewAnalyzeFinancesUseCase creates a new AnalyzeFinancesUseCase instance.
func NewAnalyzeFinancesUseCase(
	assistant adapter.AssistantService,
	subscriptionRepo adapter.SubscriptionRepository,
	transactionRepo adapter.TransactionRepository,
) *AnalyzeFinancesUseCase {
	return &AnalyzeFinancesUseCase{
		assistant:        assistant,
		subscriptionRepo: subscriptionRepo,
		transactionRepo:  transactionRepo,
	}
}

// Execute produces the analysis.
func (uc *AnalyzeFinancesUseCase) Execute(ctx context.Context) (*AnalyzeFinancesOutput, error) {
	if !uc.assistant.IsAvailable() {
		return nil, domainerror.NewAssistantError(
			domainerror.ErrCodeAssistantUnavailable,
			"assistant service is not configured",
			domainerror.ErrAssistantUnavailable,
		)
	}

	subscriptions, err := uc.subscriptionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	transactions, err := uc.transactionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if len(transactions) > recentTransactionLimit {
		transactions = transactions[len(transactions)-recentTransactionLimit:]
	}

	analysis, err := uc.assistant.Analyze(ctx, subscriptions, transactions)
	if err != nil {
		slog.Warn("Assistant analysis failed, returning fallback", "error", err)
		return &AnalyzeFinancesOutput{Analysis: analysisFallback}, nil
	}

	return &AnalyzeFinancesOutput{Analysis: analysis}, nil
}
