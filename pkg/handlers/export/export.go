package export

import (
	"fmt"
	"net/http"
	"time"

	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/api"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/ebay"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/ledger"
)

// ExportHandler holds the dependencies for the CSV download endpoint.
type ExportHandler struct {
	Source ebay.TransactionSource

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(source ebay.TransactionSource) *ExportHandler {
	return &ExportHandler{Source: source, Now: time.Now}
}

// ExportCSV fetches a date range of eBay transactions and streams the
// processed entries as a statement CSV download.
func (h *ExportHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
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

	batch := ledger.Build(txs)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ledger.Filename(h.Now())))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(ledger.ToCSV(batch)))
}
