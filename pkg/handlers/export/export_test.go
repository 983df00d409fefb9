package export

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	ebay_mocks "github.com/snappyfishuk/ebay-freeagent-sync/pkg/ebay/mocks"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestExportCSV_Success(t *testing.T) {
	mockSource := new(ebay_mocks.TransactionSource)
	handler := NewExportHandler(mockSource)
	handler.Now = func() time.Time { return time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC) }

	txs := []models.Transaction{{
		TransactionID:   "TXN001",
		TransactionType: models.TypeNonSaleCharge,
		TransactionDate: "2024-01-15T10:30:00Z",
		TransactionMemo: `Fee, "Final"`,
		Amount:          models.Amount{Value: "-2.49"},
	}}

	mockSource.On("ListTransactions", mock.Anything, mock.Anything, mock.Anything).Return(txs, nil)

	req := httptest.NewRequest(http.MethodGet, "/export/csv?from=2024-01-01&to=2024-01-31", nil)
	rr := httptest.NewRecorder()

	handler.ExportCSV(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="ebay-transactions-2024-03-07.csv"`, rr.Header().Get("Content-Disposition"))
	assert.Equal(t,
		"Date,Amount,Description,Category,Reference\n15/01/2024,-2.49,Fee; Final,Business Expenses,TXN001\n",
		rr.Body.String())
	mockSource.AssertExpectations(t)
}

func TestExportCSV_BadRange(t *testing.T) {
	mockSource := new(ebay_mocks.TransactionSource)
	handler := NewExportHandler(mockSource)

	req := httptest.NewRequest(http.MethodGet, "/export/csv?from=2024-01-01", nil)
	rr := httptest.NewRecorder()

	handler.ExportCSV(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockSource.AssertNotCalled(t, "ListTransactions")
}
