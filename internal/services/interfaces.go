package services

import (
	"time"

	"artha/internal/analytics"
	"artha/internal/models"
	"artha/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Type     *models.TransactionType
	Category *string
}

// TransactionUpdate holds the mutable transaction fields; nil means unchanged.
type TransactionUpdate struct {
	Type        *models.TransactionType
	Amount      *int64
	Description *string
	Category    *string
	Date        *time.Time
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID uint, transactionType models.TransactionType, amount int64, description, category string, date time.Time) (*models.Transaction, error)
	GetUserTransactions(userID uint, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID uint) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID uint, update TransactionUpdate) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uint) error
	ListAllTransactions(userID uint) ([]models.Transaction, error)
}

// SnapshotServicer defines the contract for financial snapshot business logic.
type SnapshotServicer interface {
	GetSnapshot(userID uint) (*models.FinancialSnapshot, error)
	UpsertSnapshot(userID uint, fields analytics.SnapshotFields) (*models.FinancialSnapshot, error)
	ResetSnapshot(userID uint) error
	SyncFromTransactions(userID uint, period analytics.TimePeriod) (*models.FinancialSnapshot, error)
	ListSnapshotUserIDs() ([]uint, error)
}

// HealthSummary bundles the balance-sheet report with its overall score,
// color band, and advisory messages.
type HealthSummary struct {
	Report          analytics.HealthReport `json:"report"`
	Score           float64                `json:"score"`
	Band            analytics.ScoreBand    `json:"band"`
	Recommendations []string               `json:"recommendations"`
}

// AnalyticsServicer defines the contract for derived analytics. Results are
// always recomputed from a fresh transaction fetch; nothing is cached or
// incrementally patched.
type AnalyticsServicer interface {
	GetAnalytics(userID uint, months int) (*analytics.Analytics, error)
	GetHealthReport(userID uint) (*HealthSummary, error)
}
