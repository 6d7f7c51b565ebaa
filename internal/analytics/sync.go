package analytics

import (
	"time"

	apperrors "artha/internal/errors"
	"artha/internal/models"
)

// SyncSnapshot recomputes snapshot fields from transaction history over the
// given lookback period, using the default debt keyword vocabulary. existing
// may be nil, in which case conservative defaults are synthesized for fields
// that cannot be derived from transactions.
func SyncSnapshot(txs []models.Transaction, existing *SnapshotFields, period TimePeriod) (SnapshotFields, error) {
	return SyncSnapshotWith(txs, existing, period, DefaultDebtKeywords, time.Now())
}

// SyncSnapshotWith is SyncSnapshot with an explicit keyword set and reference
// time. It is deterministic for a fixed now: syncing twice over unchanged
// transactions yields identical fields.
func SyncSnapshotWith(txs []models.Transaction, existing *SnapshotFields, period TimePeriod, debtKeywords KeywordSet, now time.Time) (SnapshotFields, error) {
	if !period.Valid() {
		return SnapshotFields{}, apperrors.ErrInvalidTimePeriod
	}

	periodMonths, bounded := period.Months()

	var startDate time.Time
	if bounded {
		startDate = now.AddDate(0, -periodMonths, 0)
	}

	var income, expenses, debtPayments int64
	var earliest time.Time
	for _, tx := range txs {
		if tx.Date.IsZero() {
			continue
		}
		if bounded && tx.Date.Before(startDate) {
			continue
		}
		switch tx.Type {
		case models.TransactionTypeIncome:
			income += tx.Amount
		case models.TransactionTypeExpense:
			expenses += tx.Amount
			if debtKeywords.Matches(tx.Category) {
				debtPayments += tx.Amount
			}
		}
		if earliest.IsZero() || tx.Date.Before(earliest) {
			earliest = tx.Date
		}
	}

	// For all-time the normalization span runs from the earliest transaction
	// to now; it never drops below one month.
	monthsDiff := periodMonths
	if !bounded {
		monthsDiff = monthsBetween(earliest, now)
	}
	if monthsDiff < 1 {
		monthsDiff = 1
	}

	netBalance := income - expenses
	if netBalance < 0 {
		netBalance = 0
	}

	fields := SnapshotFields{
		// Net surplus over the period stands in for available cash. A rough
		// simplification, but the sync path has no balance source of its own.
		CashEquivalents: netBalance,
		MonthlyExpenses: expenses / int64(monthsDiff),
		TotalIncome:     income,
		DebtPayment:     debtPayments,
	}

	if existing != nil {
		// Savings and the remaining balance-sheet figures are not derivable
		// from the ledger; carry them over unchanged.
		fields.Savings = existing.Savings
		fields.ShortTermDebt = existing.ShortTermDebt
		fields.TotalDebt = existing.TotalDebt
		fields.TotalAssets = existing.TotalAssets
		fields.InvestmentAssets = existing.InvestmentAssets
	} else {
		// Placeholder heuristics for a first snapshot, not a financial
		// estimate: a year of detected debt payments and twice the period
		// surplus.
		fields.ShortTermDebt = 0
		fields.TotalDebt = debtPayments * 12
		fields.TotalAssets = netBalance * 2
		fields.InvestmentAssets = 0
	}

	return fields, nil
}

// monthsBetween counts whole calendar months from a to b.
func monthsBetween(a, b time.Time) int {
	if a.IsZero() || b.Before(a) {
		return 0
	}
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
