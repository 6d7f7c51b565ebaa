package analytics

import apperrors "artha/internal/errors"

// RiskPreference is the investor's declared risk appetite.
type RiskPreference string

const (
	RiskConservative RiskPreference = "conservative"
	RiskModerate     RiskPreference = "moderate"
	RiskAggressive   RiskPreference = "aggressive"
)

// Valid reports whether p is one of the supported risk preferences.
func (p RiskPreference) Valid() bool {
	switch p {
	case RiskConservative, RiskModerate, RiskAggressive:
		return true
	}
	return false
}

// BudgetLevel is the investor's available monthly investment budget bracket.
type BudgetLevel string

const (
	BudgetLow    BudgetLevel = "low"
	BudgetMedium BudgetLevel = "medium"
	BudgetHigh   BudgetLevel = "high"
)

// Valid reports whether l is one of the supported budget levels.
func (l BudgetLevel) Valid() bool {
	switch l {
	case BudgetLow, BudgetMedium, BudgetHigh:
		return true
	}
	return false
}

// InvestmentRecommendation is a product suggestion for one risk/budget cell.
type InvestmentRecommendation struct {
	Products       []string `json:"products"`
	Description    string   `json:"description"`
	RiskLevel      string   `json:"risk_level"`
	ExpectedReturn string   `json:"expected_return"`
}

// investmentTable is the fixed risk-preference x budget-level product matrix.
var investmentTable = map[RiskPreference]map[BudgetLevel]InvestmentRecommendation{
	RiskConservative: {
		BudgetLow: {
			Products:       []string{"Term Savings", "Fixed Deposits"},
			Description:    "Low-risk instruments with stable returns",
			RiskLevel:      "Low",
			ExpectedReturn: "4-6% per year",
		},
		BudgetMedium: {
			Products:       []string{"Fixed Deposits", "Government Bonds", "Fixed-Income Mutual Funds"},
			Description:    "Mixed portfolio weighted to fixed income (80%) with a money-market buffer (20%)",
			RiskLevel:      "Low-Medium",
			ExpectedReturn: "6-8% per year",
		},
		BudgetHigh: {
			Products:       []string{"Government Bonds", "Fixed-Income Mutual Funds"},
			Description:    "Concentrated in high-quality fixed-income instruments",
			RiskLevel:      "Medium",
			ExpectedReturn: "7-9% per year",
		},
	},
	RiskModerate: {
		BudgetLow: {
			Products:       []string{"Money Market Mutual Funds"},
			Description:    "Money-market instruments with high liquidity",
			RiskLevel:      "Low-Medium",
			ExpectedReturn: "5-7% per year",
		},
		BudgetMedium: {
			Products:       []string{"Balanced Mutual Funds"},
			Description:    "Diversified portfolio (60% equities, 20% fixed income, 20% money market)",
			RiskLevel:      "Medium",
			ExpectedReturn: "8-12% per year",
		},
		BudgetHigh: {
			Products:       []string{"Balanced Mutual Funds", "Blue-Chip Stocks"},
			Description:    "Balanced funds combined with large-cap stocks",
			RiskLevel:      "Medium-High",
			ExpectedReturn: "10-15% per year",
		},
	},
	RiskAggressive: {
		BudgetLow: {
			Products:       []string{"Equity Mutual Funds"},
			Description:    "Growth-focused exposure through equity funds",
			RiskLevel:      "High",
			ExpectedReturn: "12-18% per year",
		},
		BudgetMedium: {
			Products:       []string{"Individual Stocks"},
			Description:    "Equity-heavy portfolio (90%) with a small fixed-income allocation (10%)",
			RiskLevel:      "High",
			ExpectedReturn: "15-20% per year",
		},
		BudgetHigh: {
			Products:       []string{"Stocks", "Cryptocurrency", "Private Equity"},
			Description:    "Aggressive portfolio targeting high returns",
			RiskLevel:      "Very High",
			ExpectedReturn: ">20% per year",
		},
	},
}

// RecommendInvestment returns the product suggestion for the given risk
// preference and budget level. Both inputs must be one of the supported
// values.
func RecommendInvestment(risk RiskPreference, budget BudgetLevel) (InvestmentRecommendation, error) {
	if !risk.Valid() {
		return InvestmentRecommendation{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "unsupported risk preference")
	}
	if !budget.Valid() {
		return InvestmentRecommendation{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "unsupported budget level")
	}
	return investmentTable[risk][budget], nil
}
