package ledger

import (
	"strings"
	"time"

	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/models"
)

// ToCSV serializes a batch in the statement CSV format the downstream
// importer expects: no field quoting at all. Double quotes are stripped from
// descriptions and commas replaced with semicolons to keep the columns
// aligned, which is lossy but must be preserved for compatibility.
func ToCSV(batch models.ProcessedBatch) string {
	var b strings.Builder
	b.WriteString("Date,Amount,Description,Category,Reference\n")

	for _, entry := range batch.Entries {
		row := []string{
			csvDate(entry.DatedOn),
			entry.Amount.StringFixed(2),
			csvDescription(entry.Description),
			string(entry.Category),
			entry.Reference,
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}

	return b.String()
}

// Filename is the download name for an export generated at the given time.
func Filename(now time.Time) string {
	return "ebay-transactions-" + now.Format("2006-01-02") + ".csv"
}

// csvDate reformats a stored YYYY-MM-DD date as DD/MM/YYYY.
func csvDate(datedOn string) string {
	t, err := time.Parse("2006-01-02", datedOn)
	if err != nil {
		return datedOn
	}
	return t.Format("02/01/2006")
}

func csvDescription(s string) string {
	s = strings.ReplaceAll(s, `"`, "")
	s = strings.ReplaceAll(s, ",", ";")
	return strings.TrimSpace(s)
}
