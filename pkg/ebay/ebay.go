package ebay

import (
	"context"
	"time"

	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/models"
)

// TransactionSource defines the interface for a component that supplies raw
// eBay Finances transactions for a date range (inclusive bounds).
type TransactionSource interface {
	// ListTransactions retrieves all transactions between from and to.
	ListTransactions(ctx context.Context, from, to time.Time) ([]models.Transaction, error)
}
