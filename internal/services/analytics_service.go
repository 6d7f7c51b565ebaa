package services

import (
	"errors"

	"gorm.io/gorm"

	"artha/internal/analytics"
	apperrors "artha/internal/errors"
	"artha/internal/models"
)

// DefaultWindowMonths is the lookback used when the caller does not specify one.
const DefaultWindowMonths = 6

// analyticsService derives analytics and health reports. Every call fetches
// fresh transactions and recomputes from scratch; aggregates are never cached
// or incrementally patched, so concurrent writes at worst cause a stale but
// self-consistent result.
type analyticsService struct {
	db           *gorm.DB
	transactions TransactionServicer
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(db *gorm.DB) AnalyticsServicer {
	return &analyticsService{db: db, transactions: NewTransactionService(db)}
}

// GetAnalytics computes the windowed analytics result for a user.
func (s *analyticsService) GetAnalytics(userID uint, months int) (*analytics.Analytics, error) {
	if months == 0 {
		months = DefaultWindowMonths
	}

	transactions, err := s.transactions.ListAllTransactions(userID)
	if err != nil {
		return nil, err
	}

	return analytics.ComputeAnalytics(transactions, months)
}

// GetHealthReport evaluates the user's balance-sheet snapshot into the
// seven-metric report with score, band, and recommendations.
func (s *analyticsService) GetHealthReport(userID uint) (*HealthSummary, error) {
	var snapshot models.FinancialSnapshot
	if err := s.db.Where("user_id = ?", userID).First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSnapshotNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	report := analytics.ComputeFinancialHealth(extractFields(&snapshot))
	score := analytics.HealthScore(report)

	return &HealthSummary{
		Report:          report,
		Score:           score,
		Band:            analytics.Band(score),
		Recommendations: analytics.GenerateRecommendations(report),
	}, nil
}
