package storage

import (
	"context"

	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/models"
)

// ConnectionStore defines the interface for managing linked-account records.
type ConnectionStore interface {
	// GetConnection retrieves a user's connection for a provider.
	GetConnection(ctx context.Context, userID string, provider models.Provider) (*models.Connection, error)

	// CreateConnection records a newly linked account.
	CreateConnection(ctx context.Context, conn *models.Connection) (*models.Connection, error)

	// DeleteConnection removes a user's connection for a provider.
	DeleteConnection(ctx context.Context, userID string, provider models.Provider) error

	// ListConnections retrieves all of a user's connections.
	ListConnections(ctx context.Context, userID string) ([]models.Connection, error)
}
