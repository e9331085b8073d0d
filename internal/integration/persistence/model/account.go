package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-genius/backend/internal/domain/entity"
)

// AccountModel is one element of the accounts document.
type AccountModel struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"type"`
	Balance   float64   `json:"balance"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToEntity converts an AccountModel to a domain Account entity.
func (m *AccountModel) ToEntity() *entity.Account {
	return &entity.Account{
		ID:        m.ID,
		Name:      m.Name,
		Kind:      entity.AccountKind(m.Kind),
		Balance:   decimal.NewFromFloat(m.Balance),
		Color:     m.Color,
		CreatedAt: m.CreatedAt,
	}
}

// AccountFromEntity creates an AccountModel from a domain Account entity.
func AccountFromEntity(account *entity.Account) *AccountModel {
	return &AccountModel{
		ID:        account.ID,
		Name:      account.Name,
		Kind:      string(account.Kind),
		Balance:   account.Balance.InexactFloat64(),
		Color:     account.Color,
		CreatedAt: account.CreatedAt,
	}
}
