package models

import (
	"github.com/shopspring/decimal"
)

// TransactionType is the closed set of eBay Finances transaction types.
type TransactionType string

const (
	TypeSale          TransactionType = "SALE"
	TypeRefund        TransactionType = "REFUND"
	TypeWithdrawal    TransactionType = "WITHDRAWAL"
	TypeNonSaleCharge TransactionType = "NON_SALE_CHARGE"
	TypeDispute       TransactionType = "DISPUTE"
	TypeTransfer      TransactionType = "TRANSFER"
	TypeAdjustment    TransactionType = "ADJUSTMENT"
	TypeCredit        TransactionType = "CREDIT"
	TypeDebit         TransactionType = "DEBIT"
)

// BookingEntry is eBay's own debit/credit tag on a transaction.
// It is authoritative when present.
type BookingEntry string

const (
	BookingDebit  BookingEntry = "DEBIT"
	BookingCredit BookingEntry = "CREDIT"
)

// TransactionStatus describes where a transaction sits in eBay's payout flow.
type TransactionStatus string

const (
	StatusFundsProcessing         TransactionStatus = "FUNDS_PROCESSING"
	StatusFundsOnHold             TransactionStatus = "FUNDS_ON_HOLD"
	StatusFundsAvailableForPayout TransactionStatus = "FUNDS_AVAILABLE_FOR_PAYOUT"
	StatusPayoutInitiated         TransactionStatus = "PAYOUT_INITIATED"
	StatusCompleted               TransactionStatus = "COMPLETED"
)

// ReferenceType identifies what kind of external entity a reference points at.
type ReferenceType string

const (
	RefOrderID       ReferenceType = "ORDER_ID"
	RefItemID        ReferenceType = "ITEM_ID"
	RefPayoutID      ReferenceType = "PAYOUT_ID"
	RefTransactionID ReferenceType = "TRANSACTION_ID"
	RefInvoiceID     ReferenceType = "INVOICE_ID"
	RefDisputeID     ReferenceType = "DISPUTE_ID"
)

// Reference is a typed external identifier attached to a transaction.
type Reference struct {
	ReferenceType ReferenceType `json:"referenceType"`
	ReferenceID   string        `json:"referenceId"`
}

// Amount is the monetary value of a transaction as eBay reports it.
// Value is a decimal string; the sign may be negative for outflows.
type Amount struct {
	Value        string `json:"value"`
	CurrencyCode string `json:"currencyCode"`
}

// Transaction is a raw eBay Finances transaction. The JSON tags match the
// Sell Finances API wire format, so responses decode straight into it.
type Transaction struct {
	TransactionID        string            `json:"transactionId"`
	TransactionDate      string            `json:"transactionDate"`
	TransactionType      TransactionType   `json:"transactionType"`
	TransactionMemo      string            `json:"transactionMemo,omitempty"`
	Amount               Amount            `json:"amount"`
	BookingEntry         BookingEntry      `json:"bookingEntry,omitempty"`
	References           []Reference       `json:"references,omitempty"`
	SalesRecordReference string            `json:"salesRecordReference,omitempty"`
	TransactionStatus    TransactionStatus `json:"transactionStatus,omitempty"`
}

// Category is the accounting category a ledger entry is filed under.
type Category string

const (
	CategorySales            Category = "Sales"
	CategoryRefunds          Category = "Refunds"
	CategoryBusinessExpenses Category = "Business Expenses"
	CategoryBankTransfers    Category = "Bank Transfers"
	CategoryDisputes         Category = "Disputes"
	CategoryAdjustments      Category = "Adjustments"
	CategoryTransfers        Category = "Transfers"
	CategoryOther            Category = "Other"
)

// LedgerEntry is one normalized accounting line derived from a transaction,
// ready for CSV export or a bank-statement upload. Amount is signed: negative
// for debits, positive for credits, never zero.
type LedgerEntry struct {
	DatedOn        string          // YYYY-MM-DD, time of day discarded
	Amount         decimal.Decimal
	Description    string // at most 255 characters
	Reference      string // at most 50 characters, empty when absent
	Category       Category
	IsDebit        bool
	OriginalAmount decimal.Decimal // the signed value as eBay reported it
}

// ProcessedBatch is the result of mapping a list of raw transactions.
// Entries keeps the input order with zero-amount entries removed.
type ProcessedBatch struct {
	Entries     []LedgerEntry
	CreditCount int
	DebitCount  int
	TotalAmount decimal.Decimal // sum of absolute entry amounts
	NetAmount   decimal.Decimal // sum of signed entry amounts
}
