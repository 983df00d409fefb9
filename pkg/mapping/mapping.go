package mapping

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/api"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/models"
)

// ToApiLedgerEntry converts a domain LedgerEntry to an API LedgerEntry.
func ToApiLedgerEntry(entry *models.LedgerEntry) *api.LedgerEntry {
	return &api.LedgerEntry{
		DatedOn:        toApiDate(entry.DatedOn),
		Amount:         entry.Amount.StringFixed(2),
		Description:    entry.Description,
		Reference:      entry.Reference,
		Category:       string(entry.Category),
		IsDebit:        entry.IsDebit,
		OriginalAmount: entry.OriginalAmount.String(),
	}
}

// ToApiProcessedBatch converts a domain ProcessedBatch to an API ProcessedBatch.
func ToApiProcessedBatch(batch *models.ProcessedBatch) *api.ProcessedBatch {
	entries := make([]*api.LedgerEntry, len(batch.Entries))
	for i := range batch.Entries {
		entries[i] = ToApiLedgerEntry(&batch.Entries[i])
	}

	return &api.ProcessedBatch{
		Entries:     entries,
		CreditCount: batch.CreditCount,
		DebitCount:  batch.DebitCount,
		TotalAmount: batch.TotalAmount.StringFixed(2),
		NetAmount:   batch.NetAmount.StringFixed(2),
	}
}

// ToApiAutosyncSettings converts domain settings to the API model.
func ToApiAutosyncSettings(settings *models.AutosyncSettings) *api.AutosyncSettings {
	return &api.AutosyncSettings{
		Enabled:            settings.Enabled,
		LagDays:            settings.LagDays,
		SyncTime:           settings.SyncTime,
		NotifyOnCompletion: settings.NotifyOnCompletion,
		BankAccount:        settings.BankAccountID,
	}
}

// ToDomainAutosyncSettings converts API settings to the domain model for the
// given user. Timestamps are filled in by the storage layer.
func ToDomainAutosyncSettings(userID string, settings *api.AutosyncSettings) *models.AutosyncSettings {
	return &models.AutosyncSettings{
		UserID:             userID,
		Enabled:            settings.Enabled,
		LagDays:            settings.LagDays,
		SyncTime:           settings.SyncTime,
		NotifyOnCompletion: settings.NotifyOnCompletion,
		BankAccountID:      settings.BankAccount,
	}
}

// ToApiConnection converts a domain Connection to the API model.
func ToApiConnection(conn *models.Connection) *api.Connection {
	return &api.Connection{
		Id:                conn.ID,
		Provider:          string(conn.Provider),
		ExternalAccountId: conn.ExternalAccountID,
		ConnectedAt:       conn.ConnectedAt.Format(time.RFC3339),
	}
}

// ToDomainNewConnection converts an API NewConnection to a domain Connection.
// Note: ID and timestamps are assigned by the storage layer.
func ToDomainNewConnection(userID string, newConn *api.NewConnection) *models.Connection {
	return &models.Connection{
		UserID:            userID,
		Provider:          models.Provider(newConn.Provider),
		ExternalAccountID: newConn.ExternalAccountId,
	}
}

func toApiDate(datedOn string) openapi_types.Date {
	t, err := time.Parse("2006-01-02", datedOn)
	if err != nil {
		return openapi_types.Date{}
	}
	return openapi_types.Date{Time: t}
}
