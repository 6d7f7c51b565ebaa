package analytics

// Advisory messages keyed by metric. Liquidity gets a three-way message
// depending on where the value sits relative to the 3-6 comfort band.
const (
	recAllHealthy = "Your finances are in excellent shape. Keep up your current habits."

	recLiquidityLow    = "Increase liquidity by building a larger cash reserve for emergencies."
	recLiquidityInBand = "Your cash reserve covers 3-6 months of expenses. Maintain this buffer."
	recLiquidityHigh   = "Your cash reserve exceeds 6 months of expenses. Consider putting the surplus to work in investments."

	recCurrentRatio = "Reduce short-term debt or increase your liquid assets."
	recSavings      = "Increase the share of income you set aside as savings."
	recDebtRatio    = "Reduce total debt or grow your assets to rebalance the ratio."
	recDebtService  = "Look for ways to lower monthly debt installments, for example by refinancing."
	recSolvency     = "Focus on paying down debt to grow your net worth."
	recInvestment   = "Consider increasing the investment portion of your assets."
)

// GenerateRecommendations emits one fixed advisory per unhealthy metric. When
// every metric is healthy it returns a single congratulatory message instead.
func GenerateRecommendations(r HealthReport) []string {
	if r.AllHealthy() {
		return []string{recAllHealthy}
	}

	var recs []string
	switch {
	case r.Liquidity.Value < liquidityHealthyMin:
		recs = append(recs, recLiquidityLow)
	case r.Liquidity.Value <= liquidityComfortMax:
		recs = append(recs, recLiquidityInBand)
	default:
		recs = append(recs, recLiquidityHigh)
	}
	if !r.CurrentRatio.IsHealthy {
		recs = append(recs, recCurrentRatio)
	}
	if !r.SavingsRatio.IsHealthy {
		recs = append(recs, recSavings)
	}
	if !r.DebtRatio.IsHealthy {
		recs = append(recs, recDebtRatio)
	}
	if !r.DebtServiceRatio.IsHealthy {
		recs = append(recs, recDebtService)
	}
	if !r.SolvencyRatio.IsHealthy {
		recs = append(recs, recSolvency)
	}
	if !r.InvestmentRatio.IsHealthy {
		recs = append(recs, recInvestment)
	}
	return recs
}
