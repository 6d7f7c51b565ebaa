package analytics

import (
	"testing"
	"time"

	"artha/internal/models"
	"artha/internal/testutil"
)

func TestSyncSnapshot(t *testing.T) {
	t.Run("invalid_period", func(t *testing.T) {
		_, err := SyncSnapshotWith(nil, nil, "3months", DefaultDebtKeywords, testNow)
		testutil.AssertAppError(t, err, "INVALID_TIME_PERIOD")
	})

	t.Run("first_sync_defaults", func(t *testing.T) {
		txs := []models.Transaction{
			tx(models.TransactionTypeIncome, 6_000_000, "Gaji", testNow.AddDate(0, -1, 0)),
			tx(models.TransactionTypeExpense, 1_200_000, "Makanan", testNow.AddDate(0, -1, 0)),
			tx(models.TransactionTypeExpense, 600_000, "Cicilan Motor", testNow.AddDate(0, -2, 0)),
		}

		fields, err := SyncSnapshotWith(txs, nil, Period6Months, DefaultDebtKeywords, testNow)
		testutil.AssertNoError(t, err)

		if fields.TotalIncome != 6_000_000 {
			t.Errorf("expected total income 6000000, got %d", fields.TotalIncome)
		}
		// Net surplus 4.2M stands in for cash.
		if fields.CashEquivalents != 4_200_000 {
			t.Errorf("expected cash equivalents 4200000, got %d", fields.CashEquivalents)
		}
		// 1.8M over a 6-month period.
		if fields.MonthlyExpenses != 300_000 {
			t.Errorf("expected monthly expenses 300000, got %d", fields.MonthlyExpenses)
		}
		if fields.DebtPayment != 600_000 {
			t.Errorf("expected debt payment 600000, got %d", fields.DebtPayment)
		}
		if fields.TotalDebt != 7_200_000 {
			t.Errorf("expected total debt 7200000, got %d", fields.TotalDebt)
		}
		if fields.TotalAssets != 8_400_000 {
			t.Errorf("expected total assets 8400000, got %d", fields.TotalAssets)
		}
		if fields.ShortTermDebt != 0 || fields.InvestmentAssets != 0 || fields.Savings != 0 {
			t.Errorf("expected zero defaults, got %+v", fields)
		}
	})

	t.Run("existing_fields_carried_over", func(t *testing.T) {
		txs := []models.Transaction{
			tx(models.TransactionTypeIncome, 6_000_000, "Gaji", testNow.AddDate(0, -1, 0)),
			tx(models.TransactionTypeExpense, 600_000, "Cicilan Motor", testNow.AddDate(0, -2, 0)),
		}
		existing := &SnapshotFields{
			Savings:          2_000_000,
			ShortTermDebt:    1_500_000,
			TotalDebt:        10_000_000,
			TotalAssets:      50_000_000,
			InvestmentAssets: 25_000_000,
		}

		fields, err := SyncSnapshotWith(txs, existing, Period6Months, DefaultDebtKeywords, testNow)
		testutil.AssertNoError(t, err)

		if fields.Savings != 2_000_000 {
			t.Errorf("expected savings carried over, got %d", fields.Savings)
		}
		if fields.ShortTermDebt != 1_500_000 {
			t.Errorf("expected short-term debt carried over, got %d", fields.ShortTermDebt)
		}
		if fields.TotalDebt != 10_000_000 {
			t.Errorf("expected total debt carried over, got %d", fields.TotalDebt)
		}
		if fields.TotalAssets != 50_000_000 {
			t.Errorf("expected total assets carried over, got %d", fields.TotalAssets)
		}
		if fields.InvestmentAssets != 25_000_000 {
			t.Errorf("expected investment assets carried over, got %d", fields.InvestmentAssets)
		}
		if fields.TotalIncome != 6_000_000 || fields.DebtPayment != 600_000 {
			t.Errorf("expected derived fields recomputed, got %+v", fields)
		}
	})

	t.Run("period_bounds_transactions", func(t *testing.T) {
		txs := []models.Transaction{
			tx(models.TransactionTypeIncome, 1_000_000, "Gaji", testNow.AddDate(0, 0, -10)),
			tx(models.TransactionTypeIncome, 9_000_000, "Bonus", testNow.AddDate(0, -14, 0)),
		}

		fields, err := SyncSnapshotWith(txs, nil, Period1Year, DefaultDebtKeywords, testNow)
		testutil.AssertNoError(t, err)
		if fields.TotalIncome != 1_000_000 {
			t.Errorf("expected only in-period income, got %d", fields.TotalIncome)
		}

		fields, err = SyncSnapshotWith(txs, nil, PeriodAll, DefaultDebtKeywords, testNow)
		testutil.AssertNoError(t, err)
		if fields.TotalIncome != 10_000_000 {
			t.Errorf("expected all-time income 10000000, got %d", fields.TotalIncome)
		}
	})

	t.Run("all_time_normalizes_over_history_span", func(t *testing.T) {
		txs := []models.Transaction{
			tx(models.TransactionTypeExpense, 2_400_000, "Makanan", testNow.AddDate(-2, 0, 0)),
		}

		fields, err := SyncSnapshotWith(txs, nil, PeriodAll, DefaultDebtKeywords, testNow)
		testutil.AssertNoError(t, err)

		// 24 months between the earliest transaction and now.
		if fields.MonthlyExpenses != 100_000 {
			t.Errorf("expected monthly expenses 100000, got %d", fields.MonthlyExpenses)
		}
	})

	t.Run("negative_surplus_clamped", func(t *testing.T) {
		txs := []models.Transaction{
			tx(models.TransactionTypeIncome, 1_000_000, "Gaji", testNow),
			tx(models.TransactionTypeExpense, 3_000_000, "Makanan", testNow),
		}

		fields, err := SyncSnapshotWith(txs, nil, Period1Month, DefaultDebtKeywords, testNow)
		testutil.AssertNoError(t, err)

		if fields.CashEquivalents != 0 {
			t.Errorf("expected cash equivalents clamped to 0, got %d", fields.CashEquivalents)
		}
		if fields.TotalAssets != 0 {
			t.Errorf("expected default total assets 0, got %d", fields.TotalAssets)
		}
	})

	t.Run("idempotent_for_fixed_now", func(t *testing.T) {
		txs := []models.Transaction{
			tx(models.TransactionTypeIncome, 5_000_000, "Gaji", testNow.AddDate(0, -1, 0)),
			tx(models.TransactionTypeExpense, 2_000_000, "Makanan", testNow.AddDate(0, -1, 0)),
			tx(models.TransactionTypeExpense, 500_000, "Kredit Rumah", testNow.AddDate(0, -3, 0)),
		}

		first, err := SyncSnapshotWith(txs, nil, Period6Months, DefaultDebtKeywords, testNow)
		testutil.AssertNoError(t, err)

		second, err := SyncSnapshotWith(txs, &first, Period6Months, DefaultDebtKeywords, testNow)
		testutil.AssertNoError(t, err)

		if first != second {
			t.Errorf("expected identical fields across syncs:\nfirst:  %+v\nsecond: %+v", first, second)
		}
	})

	t.Run("zero_dates_skipped", func(t *testing.T) {
		txs := []models.Transaction{
			tx(models.TransactionTypeIncome, 1_000_000, "Gaji", time.Time{}),
		}

		fields, err := SyncSnapshotWith(txs, nil, PeriodAll, DefaultDebtKeywords, testNow)
		testutil.AssertNoError(t, err)

		if fields.TotalIncome != 0 {
			t.Errorf("expected zero-dated transactions skipped, got income %d", fields.TotalIncome)
		}
	})
}

func TestMonthsBetween(t *testing.T) {
	a := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	if got := monthsBetween(a, b); got != 15 {
		t.Errorf("expected 15 months, got %d", got)
	}
	if got := monthsBetween(b, a); got != 0 {
		t.Errorf("expected 0 for reversed range, got %d", got)
	}
	if got := monthsBetween(time.Time{}, b); got != 0 {
		t.Errorf("expected 0 for zero start, got %d", got)
	}
}
