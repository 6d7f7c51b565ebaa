package analytics

import (
	"sort"
	"time"

	apperrors "artha/internal/errors"
	"artha/internal/models"
)

// topCategoryCount caps TopExpenseCategories.
const topCategoryCount = 5

// ComputeAnalytics derives the full analytics result over the trailing
// `months` calendar months ending at the current month, using the default
// debt keyword vocabulary.
func ComputeAnalytics(txs []models.Transaction, months int) (*Analytics, error) {
	return ComputeAnalyticsWith(txs, months, DefaultDebtKeywords, time.Now())
}

// ComputeAnalyticsWith is ComputeAnalytics with an explicit keyword set and
// reference time. The window is [startOfMonth(now-(months-1)), endOfMonth(now)];
// transactions outside it, or with a zero date, are excluded.
func ComputeAnalyticsWith(txs []models.Transaction, months int, debtKeywords KeywordSet, now time.Time) (*Analytics, error) {
	if months <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "months must be greater than zero")
	}

	currentMonth := startOfMonth(now)
	windowStart := currentMonth.AddDate(0, -(months - 1), 0)
	windowEnd := currentMonth.AddDate(0, 1, 0) // exclusive

	recent := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if inRange(tx.Date, windowStart, windowEnd) {
			recent = append(recent, tx)
		}
	}

	var totalIncome, totalExpense int64
	for _, tx := range recent {
		switch tx.Type {
		case models.TransactionTypeIncome:
			totalIncome += tx.Amount
		case models.TransactionTypeExpense:
			totalExpense += tx.Amount
		}
	}
	netBalance := totalIncome - totalExpense

	result := &Analytics{
		TotalIncome:       totalIncome,
		TotalExpense:      totalExpense,
		NetBalance:        netBalance,
		MonthlyCashFlow:   monthlyCashFlow(recent, months, currentMonth),
		CategoryBreakdown: categoryBreakdown(recent, totalExpense),
	}

	result.TopExpenseCategories = result.CategoryBreakdown
	if len(result.TopExpenseCategories) > topCategoryCount {
		result.TopExpenseCategories = result.TopExpenseCategories[:topCategoryCount]
	}

	// Savings rate is intentionally scoped to the present calendar month, not
	// the trailing window: it reflects this month's habit, not an average.
	monthIncome, monthExpense := sumMonth(recent, currentMonth)
	result.MonthlySavings = monthIncome - monthExpense
	result.SavingsRatio = safeDiv(float64(result.MonthlySavings), float64(monthIncome)) * 100

	result.FinancialMetrics = windowMetrics(recent, months, netBalance, totalIncome, totalExpense, debtKeywords)

	return result, nil
}

// monthlyCashFlow builds one zero-filled bucket per calendar month, oldest
// first.
func monthlyCashFlow(txs []models.Transaction, months int, currentMonth time.Time) []MonthlyBucket {
	buckets := make([]MonthlyBucket, 0, months)
	for i := months - 1; i >= 0; i-- {
		monthStart := currentMonth.AddDate(0, -i, 0)
		income, expense := sumMonth(txs, monthStart)
		buckets = append(buckets, MonthlyBucket{
			Year:    monthStart.Year(),
			Month:   monthStart.Month(),
			Income:  income,
			Expense: expense,
			Net:     income - expense,
		})
	}
	return buckets
}

// sumMonth sums income and expense for the calendar month starting at
// monthStart.
func sumMonth(txs []models.Transaction, monthStart time.Time) (income, expense int64) {
	monthEnd := monthStart.AddDate(0, 1, 0)
	for _, tx := range txs {
		if !inRange(tx.Date, monthStart, monthEnd) {
			continue
		}
		switch tx.Type {
		case models.TransactionTypeIncome:
			income += tx.Amount
		case models.TransactionTypeExpense:
			expense += tx.Amount
		}
	}
	return income, expense
}

// categoryBreakdown groups expense transactions by category, sorted by amount
// descending. Percentages are shares of totalExpense, or 0 when there was no
// spending at all.
func categoryBreakdown(txs []models.Transaction, totalExpense int64) []CategoryAggregate {
	sums := make(map[string]int64)
	for _, tx := range txs {
		if tx.Type == models.TransactionTypeExpense {
			sums[tx.Category] += tx.Amount
		}
	}

	breakdown := make([]CategoryAggregate, 0, len(sums))
	for category, amount := range sums {
		breakdown = append(breakdown, CategoryAggregate{
			Category:   category,
			Amount:     amount,
			Percentage: safeDiv(float64(amount), float64(totalExpense)) * 100,
		})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Amount != breakdown[j].Amount {
			return breakdown[i].Amount > breakdown[j].Amount
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}

// windowMetrics derives the ratio battery from windowed monthly averages.
func windowMetrics(txs []models.Transaction, months int, netBalance, totalIncome, totalExpense int64, debtKeywords KeywordSet) WindowMetrics {
	avgMonthlyIncome := float64(totalIncome) / float64(months)
	avgMonthlyExpense := float64(totalExpense) / float64(months)

	liquidity := safeDiv(float64(netBalance), avgMonthlyExpense)
	expenseRatio := safeDiv(avgMonthlyExpense, avgMonthlyIncome) * 100

	metrics := WindowMetrics{
		Liquidity: Metric{
			Value:       liquidity,
			IsHealthy:   liquidity >= liquidityHealthyMin,
			Formula:     "net balance / average monthly expense",
			Description: "Months of expenses coverable by the window's net balance",
		},
		ExpenseRatio: Metric{
			Value:       expenseRatio,
			IsHealthy:   expenseRatio < expenseRatioHealthyMax,
			Formula:     "average monthly expense / average monthly income x 100",
			Description: "Share of income consumed by spending",
		},
	}

	var debtTotal int64
	for _, tx := range txs {
		if tx.Type == models.TransactionTypeExpense && debtKeywords.Matches(tx.Category) {
			debtTotal += tx.Amount
		}
	}
	estimatedMonthlyDebt := float64(debtTotal) / float64(months)

	// No debt-flavored transactions means the metric is omitted, not zeroed.
	if estimatedMonthlyDebt > 0 {
		dti := safeDiv(estimatedMonthlyDebt, avgMonthlyIncome) * 100
		metrics.DebtToIncome = &Metric{
			Value:       dti,
			IsHealthy:   dti < debtToIncomeHealthyMax,
			Formula:     "estimated monthly debt payment / average monthly income x 100",
			Description: "Share of income going to debt-related spending, estimated from category keywords",
		}
	}

	return metrics
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// inRange reports whether t falls in [start, end). Zero dates never match.
func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}
