package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "artha/internal/errors"
	"artha/internal/models"
	"artha/internal/pagination"
	"artha/internal/services"
)

// --- mock transaction service ---

type mockTransactionService struct {
	createTransactionFn   func(userID uint, transactionType models.TransactionType, amount int64, description, category string, date time.Time) (*models.Transaction, error)
	getUserTransactionsFn func(userID uint, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	getTransactionByIDFn  func(userID, transactionID uint) (*models.Transaction, error)
	updateTransactionFn   func(userID, transactionID uint, update services.TransactionUpdate) (*models.Transaction, error)
	deleteTransactionFn   func(userID, transactionID uint) error
	listAllTransactionsFn func(userID uint) ([]models.Transaction, error)
}

func (m *mockTransactionService) CreateTransaction(userID uint, transactionType models.TransactionType, amount int64, description, category string, date time.Time) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(userID, transactionType, amount, description, category, date)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) GetUserTransactions(userID uint, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	if m.getUserTransactionsFn != nil {
		return m.getUserTransactionsFn(userID, page, filter)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockTransactionService) GetTransactionByID(userID, transactionID uint) (*models.Transaction, error) {
	if m.getTransactionByIDFn != nil {
		return m.getTransactionByIDFn(userID, transactionID)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) UpdateTransaction(userID, transactionID uint, update services.TransactionUpdate) (*models.Transaction, error) {
	if m.updateTransactionFn != nil {
		return m.updateTransactionFn(userID, transactionID, update)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) DeleteTransaction(userID, transactionID uint) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(userID, transactionID)
	}
	return nil
}

func (m *mockTransactionService) ListAllTransactions(userID uint) ([]models.Transaction, error) {
	if m.listAllTransactionsFn != nil {
		return m.listAllTransactionsFn(userID)
	}
	return nil, nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.POST("/transactions", handler.CreateTransaction)
	auth.GET("/transactions", handler.ListTransactions)
	auth.GET("/transactions/:id", handler.GetTransaction)
	auth.PUT("/transactions/:id", handler.UpdateTransaction)
	auth.DELETE("/transactions/:id", handler.DeleteTransaction)
	return r
}

// --- tests ---

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockTransactionService{
			createTransactionFn: func(userID uint, transactionType models.TransactionType, amount int64, description, category string, date time.Time) (*models.Transaction, error) {
				return &models.Transaction{
					Base:        models.Base{ID: 1},
					UserID:      userID,
					Type:        transactionType,
					Amount:      amount,
					Description: description,
					Category:    category,
					Date:        date,
				}, nil
			},
		}
		handler := NewTransactionHandler(svc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"type":"expense","amount":150000,"description":"Lunch","category":"Makanan","date":"2025-05-10"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["type"] != "expense" {
			t.Errorf("expected type expense, got %v", result["type"])
		}
		if result["amount"].(float64) != 150000 {
			t.Errorf("expected amount 150000, got %v", result["amount"])
		}
		if result["category"] != "Makanan" {
			t.Errorf("expected category Makanan, got %v", result["category"])
		}
	})

	t.Run("returns 400 on invalid type", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"type":"transfer","amount":100,"category":"Makanan"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on zero amount", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"type":"income","amount":0,"category":"Gaji"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on missing category", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"type":"income","amount":100}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on unparseable date", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"type":"income","amount":100,"category":"Gaji","date":"10/05/2025"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_ListTransactions(t *testing.T) {
	t.Run("returns 200 with page envelope", func(t *testing.T) {
		svc := &mockTransactionService{
			getUserTransactionsFn: func(_ uint, _ pagination.PageRequest, _ services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
				resp := pagination.NewPageResponse([]models.Transaction{
					{Base: models.Base{ID: 1}, UserID: 1, Type: models.TransactionTypeIncome, Amount: 100, Category: "Gaji"},
				}, 1, 20, 1)
				return &resp, nil
			},
		}
		handler := NewTransactionHandler(svc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["total_items"].(float64) != 1 {
			t.Errorf("expected total_items 1, got %v", result["total_items"])
		}
		data := result["data"].([]interface{})
		if len(data) != 1 {
			t.Fatalf("expected 1 item, got %d", len(data))
		}
	})

	t.Run("passes filters through", func(t *testing.T) {
		var captured services.TransactionFilter
		svc := &mockTransactionService{
			getUserTransactionsFn: func(_ uint, _ pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
				captured = filter
				resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
				return &resp, nil
			},
		}
		handler := NewTransactionHandler(svc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions?type=expense&category=Makanan&from=2025-01-01", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if captured.Type == nil || *captured.Type != models.TransactionTypeExpense {
			t.Error("expected type filter to be passed through")
		}
		if captured.Category == nil || *captured.Category != "Makanan" {
			t.Error("expected category filter to be passed through")
		}
		if captured.FromDate == nil {
			t.Error("expected from date filter to be passed through")
		}
	})

	t.Run("returns 400 on invalid type filter", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions?type=transfer", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_TRANSACTION_TYPE")
	})
}

func TestTransactionHandler_GetTransaction(t *testing.T) {
	t.Run("returns 200 when found", func(t *testing.T) {
		svc := &mockTransactionService{
			getTransactionByIDFn: func(_, transactionID uint) (*models.Transaction, error) {
				return &models.Transaction{Base: models.Base{ID: transactionID}, UserID: 1, Type: models.TransactionTypeExpense, Amount: 42, Category: "Makanan"}, nil
			},
		}
		handler := NewTransactionHandler(svc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions/5", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["id"].(float64) != 5 {
			t.Errorf("expected id 5, got %v", result["id"])
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockTransactionService{
			getTransactionByIDFn: func(_, _ uint) (*models.Transaction, error) {
				return nil, apperrors.ErrTransactionNotFound
			},
		}
		handler := NewTransactionHandler(svc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions/999", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "TRANSACTION_NOT_FOUND")
	})

	t.Run("returns 400 on non-numeric id", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions/abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_UpdateTransaction(t *testing.T) {
	t.Run("returns 200 on partial update", func(t *testing.T) {
		var captured services.TransactionUpdate
		svc := &mockTransactionService{
			updateTransactionFn: func(_, transactionID uint, update services.TransactionUpdate) (*models.Transaction, error) {
				captured = update
				return &models.Transaction{Base: models.Base{ID: transactionID}, UserID: 1, Type: models.TransactionTypeExpense, Amount: 250, Category: "Makanan"}, nil
			},
		}
		handler := NewTransactionHandler(svc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "PUT", "/transactions/3", `{"amount":250}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured.Amount == nil || *captured.Amount != 250 {
			t.Error("expected amount update to be passed through")
		}
		if captured.Type != nil || captured.Category != nil || captured.Date != nil {
			t.Error("expected untouched fields to stay nil")
		}
	})

	t.Run("returns 400 on invalid type", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "PUT", "/transactions/3", `{"type":"transfer"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	t.Run("returns 204 on success", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "DELETE", "/transactions/3", "")

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockTransactionService{
			deleteTransactionFn: func(_, _ uint) error {
				return apperrors.ErrTransactionNotFound
			},
		}
		handler := NewTransactionHandler(svc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "DELETE", "/transactions/999", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
