package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"artha/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    fmt.Sprintf("user%d@test.com", nextID()),
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTransaction creates a transaction with the given fields.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID uint, transactionType models.TransactionType, amount int64, category string, date time.Time) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		UserID:      userID,
		Type:        transactionType,
		Amount:      amount,
		Description: fmt.Sprintf("Test transaction %d", nextID()),
		Category:    category,
		Date:        date,
	}
	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return transaction
}

// CreateTestSnapshot creates a financial snapshot with the given fields.
func CreateTestSnapshot(t *testing.T, db *gorm.DB, userID uint, snapshot models.FinancialSnapshot) *models.FinancialSnapshot {
	t.Helper()

	snapshot.UserID = userID
	if err := db.Create(&snapshot).Error; err != nil {
		t.Fatalf("failed to create test snapshot: %v", err)
	}
	return &snapshot
}
