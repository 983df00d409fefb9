package notify

import (
	"context"
	"log/slog"
)

// Event carries what happened in a completed automatic sync.
type Event struct {
	UserID        string `json:"user_id"`
	From          string `json:"from"`
	To            string `json:"to"`
	UploadedCount int    `json:"uploaded_count"`
	NetAmount     string `json:"net_amount"`
}

// Notifier defines the interface for telling a user their sync finished.
type Notifier interface {
	SyncCompleted(ctx context.Context, event Event) error
}

// LogNotifier records completions to the structured log. It stands in until
// an email/push channel is wired up.
type LogNotifier struct {
	Logger *slog.Logger
}

// Make sure we conform to the interface
var _ Notifier = (*LogNotifier)(nil)

func (n *LogNotifier) SyncCompleted(ctx context.Context, event Event) error {
	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "autosync completed",
		"user_id", event.UserID,
		"from", event.From,
		"to", event.To,
		"uploaded_count", event.UploadedCount,
		"net_amount", event.NetAmount,
	)
	return nil
}

// NoOpNotifier is a notifier that does nothing.
type NoOpNotifier struct{}

// SyncCompleted does nothing.
func (n *NoOpNotifier) SyncCompleted(ctx context.Context, event Event) error {
	return nil
}
