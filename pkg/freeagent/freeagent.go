package freeagent

import (
	"context"

	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/models"
)

// StatementSink defines the interface for a component that accepts ledger
// entries as a bank statement upload.
type StatementSink interface {
	// UploadStatement uploads the entries to the given bank account and
	// returns the number of statement lines accepted.
	UploadStatement(ctx context.Context, bankAccountID string, entries []models.LedgerEntry) (int, error)
}
