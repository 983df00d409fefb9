package sync

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/api"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/ebay"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/freeagent"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/ledger"
)

// SyncHandler holds the dependencies for the FreeAgent upload endpoint.
type SyncHandler struct {
	Source ebay.TransactionSource
	Sink   freeagent.StatementSink
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(source ebay.TransactionSource, sink freeagent.StatementSink) *SyncHandler {
	return &SyncHandler{Source: source, Sink: sink}
}

// SyncTransactions fetches a date range of eBay transactions, maps them to
// ledger entries, and uploads them to FreeAgent as a bank statement.
func (h *SyncHandler) SyncTransactions(w http.ResponseWriter, r *http.Request) {
	var req api.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.BankAccount == "" {
		http.Error(w, "bank_account is required", http.StatusBadRequest)
		return
	}
	if req.From.IsZero() || req.To.IsZero() {
		http.Error(w, "both 'from' and 'to' dates are required", http.StatusBadRequest)
		return
	}
	from, to, err := api.ParseDateRange(req.From.Format("2006-01-02"), req.To.Format("2006-01-02"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	txs, err := h.Source.ListTransactions(r.Context(), from, to)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve transactions: %v", err), http.StatusBadGateway)
		return
	}

	batch := ledger.Build(txs)

	count, err := h.Sink.UploadStatement(r.Context(), req.BankAccount, batch.Entries)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to upload statement: %v", err), http.StatusBadGateway)
		return
	}

	result := api.SyncResult{
		UploadedCount: count,
		CreditCount:   batch.CreditCount,
		DebitCount:    batch.DebitCount,
		TotalAmount:   batch.TotalAmount.StringFixed(2),
		NetAmount:     batch.NetAmount.StringFixed(2),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
