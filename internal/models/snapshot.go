package models

// FinancialSnapshot is a manually maintained, point-in-time balance-sheet
// estimate. One row per user, upsert-on-write. All values are minor currency
// units.
type FinancialSnapshot struct {
	Base
	UserID           uint  `gorm:"not null;uniqueIndex" json:"user_id"`
	CashEquivalents  int64 `gorm:"type:bigint;not null;default:0" json:"cash_equivalents"`
	MonthlyExpenses  int64 `gorm:"type:bigint;not null;default:0" json:"monthly_expenses"`
	ShortTermDebt    int64 `gorm:"type:bigint;not null;default:0" json:"short_term_debt"`
	Savings          int64 `gorm:"type:bigint;not null;default:0" json:"savings"`
	TotalIncome      int64 `gorm:"type:bigint;not null;default:0" json:"total_income"`
	TotalDebt        int64 `gorm:"type:bigint;not null;default:0" json:"total_debt"`
	TotalAssets      int64 `gorm:"type:bigint;not null;default:0" json:"total_assets"`
	DebtPayment      int64 `gorm:"type:bigint;not null;default:0" json:"debt_payment"`
	InvestmentAssets int64 `gorm:"type:bigint;not null;default:0" json:"investment_assets"`
}
