package settings

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finanzas-genius/backend/internal/application/adapter"
)

// ClearDataUseCase wipes every collection and resets settings to defaults.
// Destructive and irreversible.
type ClearDataUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewClearDataUseCase creates a new ClearDataUseCase instance.
func NewClearDataUseCase(settingsRepo adapter.SettingsRepository) *ClearDataUseCase {
	return &ClearDataUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute performs the full data clear.
func (uc *ClearDataUseCase) Execute(ctx context.Context) error {
	if err := uc.settingsRepo.ClearAll(ctx); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}
	slog.Info("all application data cleared")
	return nil
}
