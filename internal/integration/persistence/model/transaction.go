package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-genius/backend/internal/domain/entity"
)

// TransactionModel is one element of the transactions document.
type TransactionModel struct {
	ID          uuid.UUID  `json:"id"`
	Type        string     `json:"type"`
	Amount      float64    `json:"amount"`
	Category    string     `json:"category"`
	Date        string     `json:"date"`
	Description string     `json:"description,omitempty"`
	AccountID   *uuid.UUID `json:"accountId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		Type:        entity.TransactionType(m.Type),
		Amount:      decimal.NewFromFloat(m.Amount),
		Category:    entity.Category(m.Category),
		Date:        parseDate(m.Date),
		Description: m.Description,
		AccountID:   m.AccountID,
		CreatedAt:   m.CreatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          transaction.ID,
		Type:        string(transaction.Type),
		Amount:      transaction.Amount.InexactFloat64(),
		Category:    string(transaction.Category),
		Date:        formatDate(transaction.Date),
		Description: transaction.Description,
		AccountID:   transaction.AccountID,
		CreatedAt:   transaction.CreatedAt,
	}
}
