package entity

import "github.com/shopspring/decimal"

// Theme represents the UI color theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Settings is the application-wide singleton configuration owned by the user.
// There is always exactly one instance; clearing all data resets it to the
// defaults.
type Settings struct {
	MonthlyBudget  decimal.Decimal
	UserName       string
	CurrencySymbol string
	CurrencyCode   string
	Theme          Theme
	ReminderEmail  string // Optional recipient for payment-reminder digests
}

// DefaultSettings returns the settings used before the user configures
// anything, and after a full data clear.
func DefaultSettings() *Settings {
	return &Settings{
		MonthlyBudget:  decimal.Zero,
		UserName:       "Usuario",
		CurrencySymbol: "$",
		CurrencyCode:   "USD",
		Theme:          ThemeLight,
	}
}
