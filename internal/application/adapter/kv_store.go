// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// Storage keys for the persisted collections. Each key holds one
// JSON-serialized document, written whole on every mutation.
const (
	KeyAccounts      = "accounts"
	KeyTransactions  = "transactions"
	KeySubscriptions = "subscriptions"
	KeyGoals         = "goals"
	KeyDebts         = "debts"
	KeySettings      = "settings"
	KeyEmailQueue    = "email_queue"
)

// KVStore defines the key-value persistence contract. Implementations store
// raw JSON documents under independent keys; there is no cross-key
// transactionality.
type KVStore interface {
	// Load returns the document stored under key, or (nil, nil) when the key
	// is absent. Implementations return an error only for infrastructure
	// failures; callers treat those the same as an absent key.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save overwrites the document stored under key.
	Save(ctx context.Context, key string, value []byte) error

	// DeleteAll removes every stored document. Used by the destructive
	// clear-all-data operation.
	DeleteAll(ctx context.Context) error
}
