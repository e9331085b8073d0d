package model

import (
	"github.com/shopspring/decimal"

	"github.com/finanzas-genius/backend/internal/domain/entity"
)

// SettingsModel is the settings document.
type SettingsModel struct {
	MonthlyBudget  float64 `json:"monthlyBudget"`
	UserName       string  `json:"userName"`
	CurrencySymbol string  `json:"currencySymbol"`
	CurrencyCode   string  `json:"currencyCode"`
	Theme          string  `json:"theme"`
	ReminderEmail  string  `json:"reminderEmail,omitempty"`
}

// ToEntity converts a SettingsModel to a domain Settings entity.
func (m *SettingsModel) ToEntity() *entity.Settings {
	return &entity.Settings{
		MonthlyBudget:  decimal.NewFromFloat(m.MonthlyBudget),
		UserName:       m.UserName,
		CurrencySymbol: m.CurrencySymbol,
		CurrencyCode:   m.CurrencyCode,
		Theme:          entity.Theme(m.Theme),
		ReminderEmail:  m.ReminderEmail,
	}
}

// SettingsFromEntity creates a SettingsModel from a domain Settings entity.
func SettingsFromEntity(settings *entity.Settings) *SettingsModel {
	return &SettingsModel{
		MonthlyBudget:  settings.MonthlyBudget.InexactFloat64(),
		UserName:       settings.UserName,
		CurrencySymbol: settings.CurrencySymbol,
		CurrencyCode:   settings.CurrencyCode,
		Theme:          string(settings.Theme),
		ReminderEmail:  settings.ReminderEmail,
	}
}
