// Package analytics contains the pure derivation engine: windowed cash-flow
// aggregation, category breakdowns, financial-health ratios with threshold
// classification, and snapshot reconciliation from transaction history.
// Everything here is side-effect free and computes over an in-memory slice;
// persistence lives in the services layer.
package analytics

import "time"

// MonthlyBucket is one calendar month of aggregated cash flow. Buckets are
// emitted for every month in the window, zero-filled when empty. Month labels
// and currency formatting are a display concern; the engine emits year and
// month index only.
type MonthlyBucket struct {
	Year    int        `json:"year"`
	Month   time.Month `json:"month"`
	Income  int64      `json:"income"`
	Expense int64      `json:"expense"`
	Net     int64      `json:"net"`
}

// CategoryAggregate is the total spent in one expense category over the
// window, with its share of total expense.
type CategoryAggregate struct {
	Category   string  `json:"category"`
	Amount     int64   `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// Metric is a ratio value paired with its health verdict and display strings.
type Metric struct {
	Value       float64 `json:"value"`
	IsHealthy   bool    `json:"is_healthy"`
	Formula     string  `json:"formula"`
	Description string  `json:"description"`
}

// WindowMetrics are the ratios derived from windowed transaction averages.
// DebtToIncome is nil when no transaction category matches the debt keyword
// vocabulary; the metric is omitted entirely rather than reported as zero.
type WindowMetrics struct {
	Liquidity    Metric  `json:"liquidity"`
	ExpenseRatio Metric  `json:"expense_ratio"`
	DebtToIncome *Metric `json:"debt_to_income,omitempty"`
}

// Analytics is the full derivation over a trailing window of calendar months.
type Analytics struct {
	TotalIncome          int64               `json:"total_income"`
	TotalExpense         int64               `json:"total_expense"`
	NetBalance           int64               `json:"net_balance"`
	MonthlySavings       int64               `json:"monthly_savings"`
	SavingsRatio         float64             `json:"savings_ratio"`
	MonthlyCashFlow      []MonthlyBucket     `json:"monthly_cash_flow"`
	CategoryBreakdown    []CategoryAggregate `json:"category_breakdown"`
	TopExpenseCategories []CategoryAggregate `json:"top_expense_categories"`
	FinancialMetrics     WindowMetrics       `json:"financial_metrics"`
}

// SnapshotFields are the nine balance-sheet figures of a financial snapshot,
// decoupled from the persistence model so the engine stays storage-free.
type SnapshotFields struct {
	CashEquivalents  int64 `json:"cash_equivalents"`
	MonthlyExpenses  int64 `json:"monthly_expenses"`
	ShortTermDebt    int64 `json:"short_term_debt"`
	Savings          int64 `json:"savings"`
	TotalIncome      int64 `json:"total_income"`
	TotalDebt        int64 `json:"total_debt"`
	TotalAssets      int64 `json:"total_assets"`
	DebtPayment      int64 `json:"debt_payment"`
	InvestmentAssets int64 `json:"investment_assets"`
}

// HealthReport is the seven-metric balance-sheet health assessment.
type HealthReport struct {
	Liquidity        Metric `json:"liquidity"`
	CurrentRatio     Metric `json:"current_ratio"`
	SavingsRatio     Metric `json:"savings_ratio"`
	DebtRatio        Metric `json:"debt_ratio"`
	DebtServiceRatio Metric `json:"debt_service_ratio"`
	SolvencyRatio    Metric `json:"solvency_ratio"`
	InvestmentRatio  Metric `json:"investment_ratio"`
}

// TimePeriod selects the lookback range for snapshot reconciliation.
type TimePeriod string

const (
	Period1Month  TimePeriod = "1month"
	Period6Months TimePeriod = "6months"
	Period1Year   TimePeriod = "1year"
	PeriodAll     TimePeriod = "all"
)

// Months returns the fixed period length in months. ok is false for
// PeriodAll, where the span is derived from the earliest transaction instead.
func (p TimePeriod) Months() (months int, ok bool) {
	switch p {
	case Period1Month:
		return 1, true
	case Period6Months:
		return 6, true
	case Period1Year:
		return 12, true
	default:
		return 0, false
	}
}

// Valid reports whether p is one of the supported periods.
func (p TimePeriod) Valid() bool {
	switch p {
	case Period1Month, Period6Months, Period1Year, PeriodAll:
		return true
	}
	return false
}

// safeDiv divides a by b, returning 0 when the denominator is zero. Ratios
// must never surface NaN or Infinity.
func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
