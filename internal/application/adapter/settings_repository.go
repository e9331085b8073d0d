package adapter

import (
	"context"

	"github.com/finanzas-genius/backend/internal/domain/entity"
)

// SettingsRepository defines the interface for the settings singleton.
type SettingsRepository interface {
	// Get returns the current settings. Defaults are returned when nothing
	// has been persisted yet.
	Get(ctx context.Context) (*entity.Settings, error)

	// Update replaces the settings singleton.
	Update(ctx context.Context, settings *entity.Settings) error

	// ClearAll empties every collection and resets settings to defaults.
	// Destructive and irreversible.
	ClearAll(ctx context.Context) error
}
