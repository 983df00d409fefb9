package ledger

import (
	"github.com/shopspring/decimal"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/models"
)

// debitTypes are the transaction types that are always money out, even when
// eBay reports the amount with a positive sign.
var debitTypes = map[models.TransactionType]bool{
	models.TypeWithdrawal:    true,
	models.TypeNonSaleCharge: true,
	models.TypeRefund:        true,
}

var categories = map[models.TransactionType]models.Category{
	models.TypeSale:          models.CategorySales,
	models.TypeRefund:        models.CategoryRefunds,
	models.TypeNonSaleCharge: models.CategoryBusinessExpenses,
	models.TypeWithdrawal:    models.CategoryBankTransfers,
	models.TypeDispute:       models.CategoryDisputes,
	models.TypeAdjustment:    models.CategoryAdjustments,
	models.TypeTransfer:      models.CategoryTransfers,
}

// Classify decides whether a transaction is a debit or a credit and which
// accounting category it belongs to. The booking entry wins when present,
// then the known debit types, then the sign of the amount. Unknown types
// fall back to the Other category.
func Classify(tx models.Transaction, amount decimal.Decimal) (isDebit bool, category models.Category) {
	switch {
	case tx.BookingEntry == models.BookingDebit:
		isDebit = true
	case debitTypes[tx.TransactionType]:
		isDebit = true
	case amount.IsNegative():
		isDebit = true
	}

	category, ok := categories[tx.TransactionType]
	if !ok {
		category = models.CategoryOther
	}
	return isDebit, category
}
