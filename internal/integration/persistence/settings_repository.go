package persistence

import (
	"context"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/domain/entity"
)

// settingsRepository implements the adapter.SettingsRepository interface.
type settingsRepository struct {
	store *Store
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(store *Store) adapter.SettingsRepository {
	return &settingsRepository{
		store: store,
	}
}

// Get returns the current settings, or the defaults when nothing was saved.
func (r *settingsRepository) Get(_ context.Context) (*entity.Settings, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	copied := *r.store.currentSettings()
	return &copied, nil
}

// Update replaces the settings singleton.
func (r *settingsRepository) Update(ctx context.Context, settings *entity.Settings) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	copied := *settings
	r.store.settings = &copied
	r.store.persistSettings(ctx)
	return nil
}

// ClearAll empties every collection and resets settings to defaults.
func (r *settingsRepository) ClearAll(ctx context.Context) error {
	r.store.clearAll(ctx)
	return nil
}
