package analytics

// Health thresholds. Older revisions of the rule table narrowed liquidity to
// a 3-6 band and raised the savings threshold to 20%; the canonical rules
// below keep liquidity boundary-inclusive at 3 and savings at 10%. The 3-6
// band survives in the three-way liquidity recommendation.
const (
	liquidityHealthyMin    = 3.0
	liquidityComfortMax    = 6.0
	currentRatioHealthyMin = 1.0
	savingsRatioHealthyMin = 10.0
	debtRatioHealthyMax    = 50.0
	debtServiceHealthyMax  = 30.0
	solvencyHealthyMin     = 50.0
	investmentHealthyMin   = 50.0
	debtToIncomeHealthyMax = 30.0
	expenseRatioHealthyMax = 80.0
)

// ComputeFinancialHealth evaluates the seven-metric balance-sheet report from
// manually entered snapshot fields. Any ratio with a zero denominator yields
// value 0 and is classified against 0 under the same rule.
func ComputeFinancialHealth(f SnapshotFields) HealthReport {
	netWorth := f.TotalAssets - f.TotalDebt

	liquidity := safeDiv(float64(f.CashEquivalents), float64(f.MonthlyExpenses))
	currentRatio := safeDiv(float64(f.CashEquivalents), float64(f.ShortTermDebt))
	savingsRatio := safeDiv(float64(f.Savings), float64(f.TotalIncome)) * 100
	debtRatio := safeDiv(float64(f.TotalDebt), float64(f.TotalAssets)) * 100
	debtServiceRatio := safeDiv(float64(f.DebtPayment), float64(f.TotalIncome)) * 100
	solvencyRatio := safeDiv(float64(netWorth), float64(f.TotalAssets)) * 100
	investmentRatio := safeDiv(float64(f.InvestmentAssets), float64(f.TotalAssets)) * 100

	return HealthReport{
		Liquidity: Metric{
			Value:       liquidity,
			IsHealthy:   liquidity >= liquidityHealthyMin,
			Formula:     "cash equivalents / monthly expenses",
			Description: "Months of expenses coverable by liquid cash",
		},
		CurrentRatio: Metric{
			Value:       currentRatio,
			IsHealthy:   currentRatio > currentRatioHealthyMin,
			Formula:     "cash equivalents / short-term debt",
			Description: "Ability to settle short-term obligations from cash",
		},
		SavingsRatio: Metric{
			Value:       savingsRatio,
			IsHealthy:   savingsRatio > savingsRatioHealthyMin,
			Formula:     "savings / total income x 100",
			Description: "Share of income set aside as savings",
		},
		DebtRatio: Metric{
			Value:       debtRatio,
			IsHealthy:   debtRatio < debtRatioHealthyMax,
			Formula:     "total debt / total assets x 100",
			Description: "Proportion of assets financed by debt",
		},
		DebtServiceRatio: Metric{
			Value:       debtServiceRatio,
			IsHealthy:   debtServiceRatio < debtServiceHealthyMax,
			Formula:     "debt payment / total income x 100",
			Description: "Share of income committed to debt installments",
		},
		SolvencyRatio: Metric{
			Value:       solvencyRatio,
			IsHealthy:   solvencyRatio > solvencyHealthyMin,
			Formula:     "net worth / total assets x 100",
			Description: "Share of assets owned outright",
		},
		InvestmentRatio: Metric{
			Value:       investmentRatio,
			IsHealthy:   investmentRatio > investmentHealthyMin,
			Formula:     "investment assets / total assets x 100",
			Description: "Share of assets working as investments",
		},
	}
}

// metrics returns the report's seven entries in display order.
func (r HealthReport) metrics() []Metric {
	return []Metric{
		r.Liquidity,
		r.CurrentRatio,
		r.SavingsRatio,
		r.DebtRatio,
		r.DebtServiceRatio,
		r.SolvencyRatio,
		r.InvestmentRatio,
	}
}

// AllHealthy reports whether every metric in the report passed.
func (r HealthReport) AllHealthy() bool {
	for _, m := range r.metrics() {
		if !m.IsHealthy {
			return false
		}
	}
	return true
}

// HealthScore is the percentage of healthy metrics in the report.
func HealthScore(r HealthReport) float64 {
	healthy := 0
	all := r.metrics()
	for _, m := range all {
		if m.IsHealthy {
			healthy++
		}
	}
	return float64(healthy) / float64(len(all)) * 100
}

// ScoreBand is the traffic-light rendering of a health score.
type ScoreBand string

const (
	BandGreen  ScoreBand = "green"
	BandYellow ScoreBand = "yellow"
	BandRed    ScoreBand = "red"
)

// Band maps a health score percentage to its color band.
func Band(score float64) ScoreBand {
	switch {
	case score > 70:
		return BandGreen
	case score > 40:
		return BandYellow
	default:
		return BandRed
	}
}
