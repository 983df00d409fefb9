package models

import "time"

// Provider names a linked external account.
type Provider string

const (
	ProviderEbay      Provider = "EBAY"
	ProviderFreeAgent Provider = "FREEAGENT"
)

// AutosyncSettings holds a user's automatic-sync preferences. The scheduler
// reads these when deciding what window to sync and whether to notify.
// It includes dynamodbav tags for marshalling.
type AutosyncSettings struct {
	UserID             string    `json:"user_id" dynamodbav:"user_id"`
	Enabled            bool      `json:"enabled" dynamodbav:"enabled"`
	LagDays            int       `json:"lag_days" dynamodbav:"lag_days"`
	SyncTime           string    `json:"sync_time" dynamodbav:"sync_time"`
	NotifyOnCompletion bool      `json:"notify_on_completion" dynamodbav:"notify_on_completion"`
	BankAccountID      string    `json:"bank_account_id" dynamodbav:"bank_account_id"`
	UpdatedAt          time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// Connection records that a user has linked an external account. OAuth
// credentials live elsewhere; this is only the link bookkeeping.
type Connection struct {
	ID                string    `json:"id" dynamodbav:"id"`
	UserID            string    `json:"user_id" dynamodbav:"user_id"`
	Provider          Provider  `json:"provider" dynamodbav:"provider"`
	ExternalAccountID string    `json:"external_account_id" dynamodbav:"external_account_id"`
	ConnectedAt       time.Time `json:"connected_at" dynamodbav:"connected_at"`
}
