package services

import (
	"errors"

	"gorm.io/gorm"

	"artha/internal/analytics"
	apperrors "artha/internal/errors"
	"artha/internal/models"
)

// snapshotService handles financial snapshot business logic.
type snapshotService struct {
	db           *gorm.DB
	transactions TransactionServicer
}

// NewSnapshotService creates a new SnapshotServicer.
func NewSnapshotService(db *gorm.DB) SnapshotServicer {
	return &snapshotService{db: db, transactions: NewTransactionService(db)}
}

// GetSnapshot returns the user's snapshot, or ErrSnapshotNotFound when none
// has been created yet.
func (s *snapshotService) GetSnapshot(userID uint) (*models.FinancialSnapshot, error) {
	var snapshot models.FinancialSnapshot
	if err := s.db.Where("user_id = ?", userID).First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSnapshotNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &snapshot, nil
}

// UpsertSnapshot writes all nine balance-sheet fields, updating the existing
// row in place or inserting a new one scoped to the user.
func (s *snapshotService) UpsertSnapshot(userID uint, fields analytics.SnapshotFields) (*models.FinancialSnapshot, error) {
	snapshot, err := s.GetSnapshot(userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrSnapshotNotFound) {
			return nil, err
		}
		snapshot = &models.FinancialSnapshot{UserID: userID}
	}

	applyFields(snapshot, fields)

	if err := s.db.Save(snapshot).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return snapshot, nil
}

// ResetSnapshot zeroes all nine fields without deleting the row.
func (s *snapshotService) ResetSnapshot(userID uint) error {
	snapshot, err := s.GetSnapshot(userID)
	if err != nil {
		return err
	}

	// Updates with a map so zero values are written, not skipped.
	if err := s.db.Model(snapshot).Updates(map[string]interface{}{
		"cash_equivalents":  0,
		"monthly_expenses":  0,
		"short_term_debt":   0,
		"savings":           0,
		"total_income":      0,
		"total_debt":        0,
		"total_assets":      0,
		"debt_payment":      0,
		"investment_assets": 0,
	}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// SyncFromTransactions recomputes the snapshot's derivable fields from the
// user's transaction history over the given period and upserts the result.
func (s *snapshotService) SyncFromTransactions(userID uint, period analytics.TimePeriod) (*models.FinancialSnapshot, error) {
	if !period.Valid() {
		return nil, apperrors.ErrInvalidTimePeriod
	}

	transactions, err := s.transactions.ListAllTransactions(userID)
	if err != nil {
		return nil, err
	}

	var existing *analytics.SnapshotFields
	snapshot, err := s.GetSnapshot(userID)
	switch {
	case err == nil:
		f := extractFields(snapshot)
		existing = &f
	case errors.Is(err, apperrors.ErrSnapshotNotFound):
		// First sync creates the snapshot.
	default:
		return nil, err
	}

	fields, err := analytics.SyncSnapshot(transactions, existing, period)
	if err != nil {
		return nil, err
	}

	return s.UpsertSnapshot(userID, fields)
}

// ListSnapshotUserIDs returns the IDs of all users who have a snapshot.
// Used by the scheduled sync worker.
func (s *snapshotService) ListSnapshotUserIDs() ([]uint, error) {
	var userIDs []uint
	if err := s.db.Model(&models.FinancialSnapshot{}).Pluck("user_id", &userIDs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return userIDs, nil
}

func applyFields(snapshot *models.FinancialSnapshot, f analytics.SnapshotFields) {
	snapshot.CashEquivalents = f.CashEquivalents
	snapshot.MonthlyExpenses = f.MonthlyExpenses
	snapshot.ShortTermDebt = f.ShortTermDebt
	snapshot.Savings = f.Savings
	snapshot.TotalIncome = f.TotalIncome
	snapshot.TotalDebt = f.TotalDebt
	snapshot.TotalAssets = f.TotalAssets
	snapshot.DebtPayment = f.DebtPayment
	snapshot.InvestmentAssets = f.InvestmentAssets
}

func extractFields(snapshot *models.FinancialSnapshot) analytics.SnapshotFields {
	return analytics.SnapshotFields{
		CashEquivalents:  snapshot.CashEquivalents,
		MonthlyExpenses:  snapshot.MonthlyExpenses,
		ShortTermDebt:    snapshot.ShortTermDebt,
		Savings:          snapshot.Savings,
		TotalIncome:      snapshot.TotalIncome,
		TotalDebt:        snapshot.TotalDebt,
		TotalAssets:      snapshot.TotalAssets,
		DebtPayment:      snapshot.DebtPayment,
		InvestmentAssets: snapshot.InvestmentAssets,
	}
}
