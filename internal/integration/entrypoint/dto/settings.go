package dto

import (
	"time"

	"github.com/finanzas-genius/backend/internal/application/usecase/settings"
	"github.com/finanzas-genius/backend/internal/domain/entity"
)

// UpdateSettingsRequest represents the request body for a settings replace.
type UpdateSettingsRequest struct {
	MonthlyBudget  float64 `json:"monthlyBudget" binding:"gte=0"`
	UserName       string  `json:"userName,omitempty" binding:"omitempty,max=100"`
	CurrencySymbol string  `json:"currencySymbol,omitempty" binding:"omitempty,max=5"`
	CurrencyCode   string  `json:"currencyCode,omitempty" binding:"omitempty,max=5"`
	Theme          string  `json:"theme" binding:"required,oneof=light dark"`
	ReminderEmail  string  `json:"reminderEmail,omitempty" binding:"omitempty,email"`
}

// SettingsResponse represents the settings singleton in API responses.
type SettingsResponse struct {
	MonthlyBudget  float64 `json:"monthlyBudget"`
	UserName       string  `json:"userName"`
	CurrencySymbol string  `json:"currencySymbol"`
	CurrencyCode   string  `json:"currencyCode"`
	Theme          string  `json:"theme"`
	ReminderEmail  string  `json:"reminderEmail,omitempty"`
}

// ExportResponse is the full-data export snapshot.
type ExportResponse struct {
	Settings      SettingsResponse       `json:"settings"`
	Accounts      []AccountResponse      `json:"accounts"`
	Transactions  []TransactionResponse  `json:"transactions"`
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
	Goals         []GoalResponse         `json:"goals"`
	Debts         []DebtResponse         `json:"debts"`
	ExportDate    time.Time              `json:"exportDate"`
}

// ToSettingsResponse converts a domain Settings entity to a SettingsResponse DTO.
func ToSettingsResponse(s *entity.Settings) SettingsResponse {
	return SettingsResponse{
		MonthlyBudget:  s.MonthlyBudget.InexactFloat64(),
		UserName:       s.UserName,
		CurrencySymbol: s.CurrencySymbol,
		CurrencyCode:   s.CurrencyCode,
		Theme:          string(s.Theme),
		ReminderEmail:  s.ReminderEmail,
	}
}

// ToExportResponse converts an export snapshot to an ExportResponse DTO.
func ToExportResponse(output *settings.ExportDataOutput) ExportResponse {
	return ExportResponse{
		Settings:      ToSettingsResponse(output.Settings),
		Accounts:      ToAccountListResponse(output.Accounts).Accounts,
		Transactions:  ToTransactionListResponse(output.Transactions).Transactions,
		Subscriptions: ToSubscriptionListResponse(output.Subscriptions).Subscriptions,
		Goals:         ToGoalListResponse(output.Goals).Goals,
		Debts:         ToDebtListResponse(output.Debts).Debts,
		ExportDate:    output.ExportDate,
	}
}
