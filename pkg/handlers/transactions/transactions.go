package transactions

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/api"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/ebay"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/ledger"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/mapping"
)

// TransactionsHandler holds the dependencies for the preview endpoint.
type TransactionsHandler struct {
	Source ebay.TransactionSource
}

// NewTransactionsHandler creates a new TransactionsHandler.
func NewTransactionsHandler(source ebay.TransactionSource) *TransactionsHandler {
	return &TransactionsHandler{Source: source}
}

// ListTransactions fetches a date range of eBay transactions and returns the
// processed batch for the preview table. Descriptions use the cheap display
// variant; the sync and export endpoints render the full ones.
func (h *TransactionsHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	from, to, err := api.ParseDateRange(query.Get("from"), query.Get("to"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	txs, err := h.Source.ListTransactions(r.Context(), from, to)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve transactions: %v", err), http.StatusBadGateway)
		return
	}

	batch := ledger.BuildWith(txs, ledger.DisplayDescription)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiProcessedBatch(&batch)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
