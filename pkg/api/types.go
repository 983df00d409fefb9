// Package api defines the wire types served and accepted by the HTTP layer.
package api

import (
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// LedgerEntry is one processed statement line as served to the SPA.
// Amounts are decimal strings to avoid float rounding on the wire.
type LedgerEntry struct {
	DatedOn        openapi_types.Date `json:"dated_on"`
	Amount         string             `json:"amount"`
	Description    string             `json:"description"`
	Reference      string             `json:"reference,omitempty"`
	Category       string             `json:"category"`
	IsDebit        bool               `json:"is_debit"`
	OriginalAmount string             `json:"original_amount"`
}

// ProcessedBatch is the preview/sync payload: processed entries plus the
// aggregate stats shown above the preview table.
type ProcessedBatch struct {
	Entries     []*LedgerEntry `json:"entries"`
	CreditCount int            `json:"credit_count"`
	DebitCount  int            `json:"debit_count"`
	TotalAmount string         `json:"total_amount"`
	NetAmount   string         `json:"net_amount"`
}

// SyncRequest asks for a date range of eBay transactions to be uploaded to a
// FreeAgent bank account as a statement.
type SyncRequest struct {
	From        openapi_types.Date `json:"from"`
	To          openapi_types.Date `json:"to"`
	BankAccount string             `json:"bank_account"`
}

// SyncResult acknowledges an upload.
type SyncResult struct {
	UploadedCount int    `json:"uploaded_count"`
	CreditCount   int    `json:"credit_count"`
	DebitCount    int    `json:"debit_count"`
	TotalAmount   string `json:"total_amount"`
	NetAmount     string `json:"net_amount"`
}

// AutosyncSettings is a user's automatic-sync configuration.
type AutosyncSettings struct {
	Enabled            bool   `json:"enabled"`
	LagDays            int    `json:"lag_days"`
	SyncTime           string `json:"sync_time,omitempty"`
	NotifyOnCompletion bool   `json:"notify_on_completion"`
	BankAccount        string `json:"bank_account,omitempty"`
}

// Connection describes a linked external account.
type Connection struct {
	Id                string `json:"id"`
	Provider          string `json:"provider"`
	ExternalAccountId string `json:"external_account_id,omitempty"`
	ConnectedAt       string `json:"connected_at"`
}

// NewConnection is the request body for recording a linked account.
type NewConnection struct {
	Provider          string `json:"provider"`
	ExternalAccountId string `json:"external_account_id,omitempty"`
}
