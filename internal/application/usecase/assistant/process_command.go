// Package assistant contains the use cases around the AI assistant. The
// assistant only produces drafts and prose; every mutation it triggers flows
// through the same use cases as manual input.
package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/application/usecase/subscription"
	"github.com/finanzas-genius/backend/internal/application/usecase/transaction"
	"github.com/finanzas-genius/backend/internal/domain/entity"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
)

// ProcessCommandInput represents a natural-language command, as text or
// base64-encoded WAV audio.
type ProcessCommandInput struct {
	Text        string
	AudioBase64 string
}

// ProcessCommandOutput reports what the command produced. Exactly one of
// Transaction or Subscription is set when the intent was understood; Message
// explains an UNKNOWN outcome.
type ProcessCommandOutput struct {
	Intent       adapter.CommandIntent
	Transaction  *entity.Transaction
	Subscription *entity.Subscription
	Message      string
}

// ProcessCommandUseCase parses a user command with the assistant and applies
// the extracted draft through the regular creation use cases. Drafts carrying
// values outside the fixed enumerations degrade to UNKNOWN instead of
// entering the store.
type ProcessCommandUseCase struct {
	assistant          adapter.AssistantService
	createTransaction  *transaction.CreateTransactionUseCase
	createSubscription *subscription.CreateSubscriptionUseCase
}

// NewProcessCommandUseCase creates a new ProcessCommandUseCase instance.
func NewProcessCommandUseCase(
	assistant adapter.AssistantService,
	createTransaction *transaction.CreateTransactionUseCase,
	createSubscription *subscription.CreateSubscriptionUseCase,
) *ProcessCommandUseCase {
	return &ProcessCommandUseCase{
		assistant:          assistant,
		createTransaction:  createTransaction,
		createSubscription: createSubscription,
	}
}

// Execute parses and applies the command.
func (uc *ProcessCommandUseCase) Execute(ctx context.Context, input ProcessCommandInput) (*ProcessCommandOutput, error) {
	if strings.TrimSpace(input.Text) == "" && input.AudioBase64 == "" {
		return nil, domainerror.NewAssistantError(
			domainerror.ErrCodeEmptyCommand,
			"provide a text or audio command",
			domainerror.ErrEmptyCommand,
		)
	}

	if !uc.assistant.IsAvailable() {
		return nil, domainerror.NewAssistantError(
			domainerror.ErrCodeAssistantUnavailable,
			"assistant service is not configured",
			domainerror.ErrAssistantUnavailable,
		)
	}

	parsed, err := uc.assistant.ParseCommand(ctx, adapter.CommandInput{
		Text:        input.Text,
		AudioBase64: input.AudioBase64,
	})
	if err != nil {
		return nil, domainerror.NewAssistantError(
			domainerror.ErrCodeAssistantFailure,
			"failed to parse command",
			err,
		)
	}

	switch parsed.Intent {
	case adapter.IntentTransaction:
		if parsed.Transaction == nil {
			return unknownOutput("no pude entender el comando"), nil
		}
		return uc.applyTransactionDraft(ctx, parsed.Transaction)

	case adapter.IntentSubscription:
		if parsed.Subscription == nil {
			return unknownOutput("no pude entender el comando"), nil
		}
		return uc.applySubscriptionDraft(ctx, parsed.Subscription)

	default:
		message := parsed.Error
		if message == "" {
			message = "no pude entender el comando"
		}
		return unknownOutput(message), nil
	}
}

func (uc *ProcessCommandUseCase) applyTransactionDraft(ctx context.Context, draft *adapter.TransactionDraft) (*ProcessCommandOutput, error) {
	transactionType := entity.TransactionType(draft.Type)
	category := entity.Category(draft.Category)
	if !entity.IsValidTransactionType(transactionType) || !entity.IsValidCategory(category) {
		slog.Debug("Assistant transaction draft outside known enums",
			"type", draft.Type,
			"category", draft.Category,
		)
		return unknownOutput("no pude entender el comando"), nil
	}

	output, err := uc.createTransaction.Execute(ctx, transaction.CreateTransactionInput{
		Type:        transactionType,
		Amount:      draft.Amount,
		Category:    category,
		Date:        draft.Date,
		Description: draft.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to apply transaction draft: %w", err)
	}

	return &ProcessCommandOutput{
		Intent:      adapter.IntentTransaction,
		Transaction: output.Transaction,
	}, nil
}

func (uc *ProcessCommandUseCase) applySubscriptionDraft(ctx context.Context, draft *adapter.SubscriptionDraft) (*ProcessCommandOutput, error) {
	frequency := entity.Frequency(draft.Frequency)
	category := entity.Category(draft.Category)
	if !entity.IsValidFrequency(frequency) || !entity.IsValidCategory(category) {
		slog.Debug("Assistant subscription draft outside known enums",
			"frequency", draft.Frequency,
			"category", draft.Category,
		)
		return unknownOutput("no pude entender el comando"), nil
	}

	output, err := uc.createSubscription.Execute(ctx, subscription.CreateSubscriptionInput{
		Name:            draft.Name,
		Amount:          draft.Amount,
		Frequency:       frequency,
		Category:        category,
		NextPaymentDate: draft.NextPaymentDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to apply subscription draft: %w", err)
	}

	return &ProcessCommandOutput{
		Intent:       adapter.IntentSubscription,
		Subscription: output.Subscription,
	}, nil
}

func unknownOutput(message string) *ProcessCommandOutput {
	return &ProcessCommandOutput{
		Intent:  adapter.IntentUnknown,
		Message: message,
	}
}
