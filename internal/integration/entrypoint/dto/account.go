package dto

import (
	"time"

	"github.com/finanzas-genius/backend/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Name    string  `json:"name" binding:"required,min=1,max=100"`
	Type    string  `json:"type" binding:"required,oneof=cash bank savings wallet other"`
	Balance float64 `json:"balance"`
	Color   string  `json:"color,omitempty"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Balance   float64   `json:"balance"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain Account entity to an AccountResponse DTO.
func ToAccountResponse(a *entity.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID.String(),
		Name:      a.Name,
		Type:      string(a.Kind),
		Balance:   a.Balance.InexactFloat64(),
		Color:     a.Color,
		CreatedAt: a.CreatedAt,
	}
}

// ToAccountListResponse converts a list of accounts to AccountListResponse.
func ToAccountListResponse(accounts []*entity.Account) AccountListResponse {
	responses := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		responses[i] = ToAccountResponse(a)
	}
	return AccountListResponse{
		Accounts: responses,
	}
}
