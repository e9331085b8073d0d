// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountKind represents the kind of money account.
type AccountKind string

const (
	AccountKindCash    AccountKind = "cash"
	AccountKindBank    AccountKind = "bank"
	AccountKindSavings AccountKind = "savings"
	AccountKindWallet  AccountKind = "wallet"
	AccountKindOther   AccountKind = "other"
)

// IsValidAccountKind reports whether the given kind is one of the fixed set.
func IsValidAccountKind(kind AccountKind) bool {
	switch kind {
	case AccountKindCash, AccountKindBank, AccountKindSavings, AccountKindWallet, AccountKindOther:
		return true
	}
	return false
}

// Account represents a cash or bank account in the FinanzasGenius system.
// The balance is adjusted incrementally when a linked transaction is created
// and is never recomputed from the transaction history.
type Account struct {
	ID        uuid.UUID
	Name      string
	Kind      AccountKind
	Balance   decimal.Decimal
	Color     string
	CreatedAt time.Time
}

// NewAccount creates a new Account entity with an opening balance.
func NewAccount(name string, kind AccountKind, balance decimal.Decimal, color string) *Account {
	return &Account{
		ID:        uuid.New(),
		Name:      name,
		Kind:      kind,
		Balance:   balance,
		Color:     color,
		CreatedAt: time.Now().UTC(),
	}
}
