package storage

import (
	"context"

	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/models"
)

// SettingsStore defines the interface for managing autosync settings.
type SettingsStore interface {
	// GetSettings retrieves a user's autosync settings.
	GetSettings(ctx context.Context, userID string) (*models.AutosyncSettings, error)

	// PutSettings creates or replaces a user's autosync settings.
	PutSettings(ctx context.Context, settings *models.AutosyncSettings) (*models.AutosyncSettings, error)
}
