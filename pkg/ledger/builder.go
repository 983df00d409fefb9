package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/models"
)

// maxReferenceLen is the FreeAgent statement reference limit.
const maxReferenceLen = 50

// DescribeFunc renders a statement description for a transaction.
type DescribeFunc func(models.Transaction) string

// Build maps raw eBay transactions into ledger entries with full statement
// descriptions, ready for upload or CSV export.
func Build(transactions []models.Transaction) models.ProcessedBatch {
	return BuildWith(transactions, RichDescription)
}

// BuildWith is Build with a caller-chosen description renderer (the preview
// table uses DisplayDescription). Entries keep the input order; entries whose
// amount works out to zero are dropped. Malformed input never fails: an
// unparseable amount counts as zero and unknown types land in Other.
func BuildWith(transactions []models.Transaction, describe DescribeFunc) models.ProcessedBatch {
	batch := models.ProcessedBatch{
		Entries: make([]models.LedgerEntry, 0, len(transactions)),
	}

	for _, tx := range transactions {
		parsed := parseAmount(tx.Amount.Value)
		isDebit, category := Classify(tx, parsed)

		signed := parsed.Abs()
		if isDebit {
			signed = signed.Neg()
		}
		if signed.IsZero() {
			continue
		}

		batch.Entries = append(batch.Entries, models.LedgerEntry{
			DatedOn:        dateOnly(tx.TransactionDate),
			Amount:         signed,
			Description:    describe(tx),
			Reference:      truncate(tx.TransactionID, maxReferenceLen),
			Category:       category,
			IsDebit:        isDebit,
			OriginalAmount: parsed,
		})

		if isDebit {
			batch.DebitCount++
		} else {
			batch.CreditCount++
		}
		batch.TotalAmount = batch.TotalAmount.Add(signed.Abs())
		batch.NetAmount = batch.NetAmount.Add(signed)
	}

	return batch
}

func parseAmount(value string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// dateOnly keeps the calendar-date portion of an ISO-8601 timestamp.
func dateOnly(timestamp string) string {
	if len(timestamp) > 10 {
		return timestamp[:10]
	}
	return timestamp
}
