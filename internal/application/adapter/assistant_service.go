package adapter

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finanzas-genius/backend/internal/domain/entity"
)

// CommandIntent tags what the assistant extracted from a user command.
type CommandIntent string

const (
	IntentTransaction  CommandIntent = "TRANSACTION"
	IntentSubscription CommandIntent = "SUBSCRIPTION"
	IntentUnknown      CommandIntent = "UNKNOWN"
)

// CommandInput is a free-text or audio user command ("I spent $15 on food").
// Exactly one of Text or AudioBase64 should be set; audio is base64-encoded
// WAV data.
type CommandInput struct {
	Text        string
	AudioBase64 string
}

// TransactionDraft mirrors the create-transaction input, as extracted by the
// assistant. Category is kept as a raw string until validated against the
// fixed enumeration.
type TransactionDraft struct {
	Type        string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Description string
}

// SubscriptionDraft mirrors the create-subscription input, as extracted by
// the assistant.
type SubscriptionDraft struct {
	Name            string
	Amount          decimal.Decimal
	Frequency       string
	Category        string
	NextPaymentDate time.Time
}

// ParsedCommand is the tagged result of parsing a user command.
type ParsedCommand struct {
	Intent       CommandIntent
	Transaction  *TransactionDraft
	Subscription *SubscriptionDraft
	Error        string
}

// AssistantService defines the interface to the external AI service.
// Implementations never mutate entity state; their output is routed through
// the same mutation operations as manual input.
type AssistantService interface {
	// IsAvailable reports whether the service is configured.
	IsAvailable() bool

	// ParseCommand extracts a structured intent from a text or audio command.
	ParseCommand(ctx context.Context, input CommandInput) (*ParsedCommand, error)

	// Analyze produces free-form financial commentary over the given
	// subscriptions and recent transactions.
	Analyze(ctx context.Context, subscriptions []*entity.Subscription, transactions []*entity.Transaction) (string, error)

	// SuggestCategory proposes a category from the fixed set for the given
	// name and description.
	SuggestCategory(ctx context.Context, name, description string) (entity.Category, error)
}
