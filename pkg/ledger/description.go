package ledger

import (
	"fmt"

	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/models"
)

const (
	// maxDescriptionLen is the FreeAgent statement description limit.
	maxDescriptionLen = 255

	// noMemoSentinel is what eBay sends when a transaction has no memo.
	noMemoSentinel = "No description"

	// noSalesRecordSentinel is what eBay sends when there is no sales record.
	noSalesRecordSentinel = "0"
)

var typeLabels = map[models.TransactionType]string{
	models.TypeSale:          "Sale",
	models.TypeRefund:        "Refund",
	models.TypeWithdrawal:    "Payout/Withdrawal",
	models.TypeNonSaleCharge: "Fee/Charge",
	models.TypeDispute:       "Dispute",
	models.TypeTransfer:      "Transfer",
	models.TypeAdjustment:    "Adjustment",
	models.TypeCredit:        "Credit",
	models.TypeDebit:         "Debit",
}

// referencePriority orders reference types by how meaningful they are to a
// human reading a bank statement. Types not listed sort last.
var referencePriority = map[models.ReferenceType]int{
	models.RefOrderID:       0,
	models.RefItemID:        1,
	models.RefPayoutID:      2,
	models.RefTransactionID: 3,
	models.RefInvoiceID:     4,
}

var referenceLabels = map[models.ReferenceType]string{
	models.RefOrderID:       "Order",
	models.RefItemID:        "Item",
	models.RefPayoutID:      "Payout",
	models.RefTransactionID: "Transaction",
	models.RefInvoiceID:     "Invoice",
	models.RefDisputeID:     "Dispute",
}

var statusLabels = map[models.TransactionStatus]string{
	models.StatusFundsProcessing:         "Processing",
	models.StatusFundsOnHold:             "On Hold",
	models.StatusFundsAvailableForPayout: "Ready for Payout",
	models.StatusPayoutInitiated:         "Payout Initiated",
	models.StatusCompleted:               "Completed",
}

// statusAnnotations is the set of statuses that get appended to the
// description. Note COMPLETED has a label above but is deliberately not in
// this set; completed transactions read cleaner without an annotation.
var statusAnnotations = map[models.TransactionStatus]bool{
	models.StatusFundsProcessing:         true,
	models.StatusFundsOnHold:             true,
	models.StatusFundsAvailableForPayout: true,
	models.StatusPayoutInitiated:         true,
}

// RichDescription builds the full statement description for a transaction:
// the memo (or a humanized type label), the most meaningful reference, and a
// payout-status annotation where applicable. The result is truncated to 255
// characters.
func RichDescription(tx models.Transaction) string {
	desc := baseDescription(tx)

	if ref, ok := bestReference(tx.References); ok {
		desc += " - " + formatReference(ref)
	} else if sr := tx.SalesRecordReference; sr != "" && sr != noSalesRecordSentinel {
		desc += " - Ref: " + sr
	}

	if statusAnnotations[tx.TransactionStatus] {
		desc += " (" + statusLabels[tx.TransactionStatus] + ")"
	}

	return truncate(desc, maxDescriptionLen)
}

// DisplayDescription is the cheaper variant used for on-screen previews. It
// skips the reference-priority selection and status annotation.
func DisplayDescription(tx models.Transaction) string {
	if memo := tx.TransactionMemo; memo != "" && memo != noMemoSentinel {
		return truncate(memo, maxDescriptionLen)
	}

	ref := tx.SalesRecordReference
	if ref == "" || ref == noSalesRecordSentinel {
		ref = tx.TransactionID
	}
	if ref == "" {
		return truncate("eBay "+typeLabel(tx.TransactionType), maxDescriptionLen)
	}
	return truncate(typeLabel(tx.TransactionType)+" - "+ref, maxDescriptionLen)
}

func baseDescription(tx models.Transaction) string {
	if memo := tx.TransactionMemo; memo != "" && memo != noMemoSentinel {
		return memo
	}
	return "eBay " + typeLabel(tx.TransactionType)
}

// typeLabel humanizes a transaction type; unknown types pass through unchanged.
func typeLabel(t models.TransactionType) string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return string(t)
}

// bestReference picks the highest-priority reference. Selection is stable:
// among references of equal priority the earliest in the list wins.
func bestReference(refs []models.Reference) (models.Reference, bool) {
	if len(refs) == 0 {
		return models.Reference{}, false
	}

	best := refs[0]
	for _, ref := range refs[1:] {
		if priorityOf(ref.ReferenceType) < priorityOf(best.ReferenceType) {
			best = ref
		}
	}
	return best, true
}

func priorityOf(t models.ReferenceType) int {
	if p, ok := referencePriority[t]; ok {
		return p
	}
	return len(referencePriority)
}

func formatReference(ref models.Reference) string {
	if label, ok := referenceLabels[ref.ReferenceType]; ok {
		return fmt.Sprintf("%s #%s", label, ref.ReferenceID)
	}
	return fmt.Sprintf("%s: %s", ref.ReferenceType, ref.ReferenceID)
}

// truncate hard-cuts s to at most n characters, no ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
