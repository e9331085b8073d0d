package settings

import (
	"context"
	"fmt"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/domain/entity"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
)

// UpdateSettingsInput represents the input for a settings replace.
type UpdateSettingsInput struct {
	Settings *entity.Settings
}

// UpdateSettingsOutput represents the output of a settings update.
type UpdateSettingsOutput struct {
	Settings *entity.Settings
}

// UpdateSettingsUseCase replaces the settings singleton.
type UpdateSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(settingsRepo adapter.SettingsRepository) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute validates and persists the new settings.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	if input.Settings.MonthlyBudget.IsNegative() {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeInvalidBudget,
			"monthly budget cannot be negative",
			domainerror.ErrInvalidBudget,
		)
	}

	if input.Settings.Theme != entity.ThemeLight && input.Settings.Theme != entity.ThemeDark {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeInvalidTheme,
			fmt.Sprintf("invalid theme: %s", input.Settings.Theme),
			domainerror.ErrInvalidTheme,
		)
	}

	if err := uc.settingsRepo.Update(ctx, input.Settings); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	return &UpdateSettingsOutput{Settings: input.Settings}, nil
}
