// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (income or expense).
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// IsValidTransactionType reports whether the given type is income or expense.
func IsValidTransactionType(t TransactionType) bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a single financial movement. Transactions are
// immutable once created; the only mutation allowed is deletion, and deleting
// a transaction does not reverse any account balance effect it had.
type Transaction struct {
	ID          uuid.UUID
	Type        TransactionType
	Amount      decimal.Decimal // Always positive; the type carries the sign
	Category    Category
	Date        time.Time
	Description string
	AccountID   *uuid.UUID // Optional link to an account
	CreatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	transactionType TransactionType,
	amount decimal.Decimal,
	category Category,
	date time.Time,
	description string,
	accountID *uuid.UUID,
) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		Type:        transactionType,
		Amount:      amount,
		Category:    category,
		Date:        date,
		Description: description,
		AccountID:   accountID,
		CreatedAt:   time.Now().UTC(),
	}
}

// SignedAmount returns the amount with the sign implied by the type:
// positive for income, negative for expense.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}
