package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"artha/internal/analytics"
	apperrors "artha/internal/errors"
	"artha/internal/services"
)

// --- mock analytics service ---

type mockAnalyticsService struct {
	getAnalyticsFn    func(userID uint, months int) (*analytics.Analytics, error)
	getHealthReportFn func(userID uint) (*services.HealthSummary, error)
}

func (m *mockAnalyticsService) GetAnalytics(userID uint, months int) (*analytics.Analytics, error) {
	if m.getAnalyticsFn != nil {
		return m.getAnalyticsFn(userID, months)
	}
	return &analytics.Analytics{}, nil
}

func (m *mockAnalyticsService) GetHealthReport(userID uint) (*services.HealthSummary, error) {
	if m.getHealthReportFn != nil {
		return m.getHealthReportFn(userID)
	}
	return &services.HealthSummary{}, nil
}

var _ services.AnalyticsServicer = (*mockAnalyticsService)(nil)

func setupAnalyticsRouter(handler *AnalyticsHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.GET("/analytics", handler.GetAnalytics)
	auth.GET("/health-report", handler.GetHealthReport)
	auth.GET("/investment-advice", handler.GetInvestmentAdvice)
	return r
}

// --- tests ---

func TestAnalyticsHandler_GetAnalytics(t *testing.T) {
	t.Run("returns 200 with default window", func(t *testing.T) {
		var capturedMonths int
		svc := &mockAnalyticsService{
			getAnalyticsFn: func(_ uint, months int) (*analytics.Analytics, error) {
				capturedMonths = months
				return &analytics.Analytics{TotalIncome: 1_000_000, TotalExpense: 400_000, NetBalance: 600_000}, nil
			},
		}
		handler := NewAnalyticsHandler(svc)
		r := setupAnalyticsRouter(handler)

		rec := doRequest(r, "GET", "/analytics", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if capturedMonths != services.DefaultWindowMonths {
			t.Errorf("expected default window %d, got %d", services.DefaultWindowMonths, capturedMonths)
		}
		result := parseJSON(t, rec)
		if result["net_balance"].(float64) != 600_000 {
			t.Errorf("expected net_balance 600000, got %v", result["net_balance"])
		}
	})

	t.Run("passes months query through", func(t *testing.T) {
		var capturedMonths int
		svc := &mockAnalyticsService{
			getAnalyticsFn: func(_ uint, months int) (*analytics.Analytics, error) {
				capturedMonths = months
				return &analytics.Analytics{}, nil
			},
		}
		handler := NewAnalyticsHandler(svc)
		r := setupAnalyticsRouter(handler)

		rec := doRequest(r, "GET", "/analytics?months=12", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if capturedMonths != 12 {
			t.Errorf("expected months 12, got %d", capturedMonths)
		}
	})

	t.Run("returns 400 on non-numeric months", func(t *testing.T) {
		handler := NewAnalyticsHandler(&mockAnalyticsService{})
		r := setupAnalyticsRouter(handler)

		rec := doRequest(r, "GET", "/analytics?months=abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on non-positive months", func(t *testing.T) {
		handler := NewAnalyticsHandler(&mockAnalyticsService{})
		r := setupAnalyticsRouter(handler)

		rec := doRequest(r, "GET", "/analytics?months=0", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestAnalyticsHandler_GetHealthReport(t *testing.T) {
	t.Run("returns 200 with summary", func(t *testing.T) {
		svc := &mockAnalyticsService{
			getHealthReportFn: func(_ uint) (*services.HealthSummary, error) {
				return &services.HealthSummary{
					Score:           100,
					Band:            analytics.BandGreen,
					Recommendations: []string{"Your finances are in excellent shape. Keep up your current habits."},
				}, nil
			},
		}
		handler := NewAnalyticsHandler(svc)
		r := setupAnalyticsRouter(handler)

		rec := doRequest(r, "GET", "/health-report", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["score"].(float64) != 100 {
			t.Errorf("expected score 100, got %v", result["score"])
		}
		if result["band"] != "green" {
			t.Errorf("expected band green, got %v", result["band"])
		}
		recs := result["recommendations"].([]interface{})
		if len(recs) != 1 {
			t.Errorf("expected 1 recommendation, got %d", len(recs))
		}
	})

	t.Run("returns 404 without snapshot", func(t *testing.T) {
		svc := &mockAnalyticsService{
			getHealthReportFn: func(_ uint) (*services.HealthSummary, error) {
				return nil, apperrors.ErrSnapshotNotFound
			},
		}
		handler := NewAnalyticsHandler(svc)
		r := setupAnalyticsRouter(handler)

		rec := doRequest(r, "GET", "/health-report", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "SNAPSHOT_NOT_FOUND")
	})
}

func TestAnalyticsHandler_GetInvestmentAdvice(t *testing.T) {
	t.Run("returns 200 with recommendation", func(t *testing.T) {
		handler := NewAnalyticsHandler(&mockAnalyticsService{})
		r := setupAnalyticsRouter(handler)

		rec := doRequest(r, "GET", "/investment-advice?risk=moderate&budget=medium", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		products := result["products"].([]interface{})
		if len(products) != 1 || products[0] != "Balanced Mutual Funds" {
			t.Errorf("unexpected products: %v", products)
		}
		if result["risk_level"] != "Medium" {
			t.Errorf("expected risk_level Medium, got %v", result["risk_level"])
		}
		if result["expected_return"] != "8-12% per year" {
			t.Errorf("unexpected expected_return: %v", result["expected_return"])
		}
	})

	t.Run("returns 400 on unsupported risk", func(t *testing.T) {
		handler := NewAnalyticsHandler(&mockAnalyticsService{})
		r := setupAnalyticsRouter(handler)

		rec := doRequest(r, "GET", "/investment-advice?risk=reckless&budget=medium", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on missing budget", func(t *testing.T) {
		handler := NewAnalyticsHandler(&mockAnalyticsService{})
		r := setupAnalyticsRouter(handler)

		rec := doRequest(r, "GET", "/investment-advice?risk=moderate", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
