package ledger

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCSV_Header(t *testing.T) {
	out := ToCSV(models.ProcessedBatch{})

	assert.Equal(t, "Date,Amount,Description,Category,Reference\n", out)
}

func TestToCSV_Row(t *testing.T) {
	batch := models.ProcessedBatch{
		Entries: []models.LedgerEntry{{
			DatedOn:     "2024-01-15",
			Amount:      decimal.RequireFromString("-2.49"),
			Description: `Fee, "Final"`,
			Category:    models.CategoryBusinessExpenses,
			Reference:   "TXN001",
			IsDebit:     true,
		}},
	}

	out := ToCSV(batch)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "15/01/2024,-2.49,Fee; Final,Business Expenses,TXN001", lines[1])
}

func TestToCSV_EmptyReference(t *testing.T) {
	batch := models.ProcessedBatch{
		Entries: []models.LedgerEntry{{
			DatedOn:     "2024-02-01",
			Amount:      decimal.RequireFromString("9.5"),
			Description: "eBay Sale",
			Category:    models.CategorySales,
		}},
	}

	out := ToCSV(batch)

	assert.Contains(t, out, "01/02/2024,9.50,eBay Sale,Sales,\n")
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 3, 7, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, "ebay-transactions-2024-03-07.csv", Filename(now))
}
