package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"artha/internal/analytics"
	apperrors "artha/internal/errors"
	"artha/internal/services"
)

// AnalyticsHandler handles derived analytics requests.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetAnalytics returns the windowed analytics result
// @Summary     Get transaction analytics
// @Description Cash-flow series, category breakdown, and ratio metrics over a trailing window of calendar months
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Param       months query int false "Window size in months (default 6)"
// @Success     200 {object} analytics.Analytics
// @Failure     400 {object} ErrorResponse "Invalid window"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics [get]
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	months := services.DefaultWindowMonths
	if v := c.Query("months"); v != "" {
		parsed, parseErr := strconv.Atoi(v)
		if parseErr != nil || parsed <= 0 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "months must be a positive integer"))
			return
		}
		months = parsed
	}

	result, err := h.analyticsService.GetAnalytics(userID, months)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetHealthReport returns the balance-sheet health report
// @Summary     Get the financial health report
// @Description Seven-metric report with overall score, color band, and recommendations, computed from the snapshot
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.HealthSummary
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No snapshot yet"
// @Router      /health-report [get]
func (h *AnalyticsHandler) GetHealthReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.analyticsService.GetHealthReport(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// InvestmentAdviceRequest selects a cell of the product matrix.
type InvestmentAdviceRequest struct {
	Risk   string `form:"risk" binding:"required,risk_preference"`
	Budget string `form:"budget" binding:"required,budget_level"`
}

// GetInvestmentAdvice returns the product suggestion for a risk/budget pair
// @Summary     Get an investment recommendation
// @Description Suggested products, risk level, and expected return for the given risk preference and budget level
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Param       risk query string true "Risk preference (conservative|moderate|aggressive)"
// @Param       budget query string true "Budget level (low|medium|high)"
// @Success     200 {object} analytics.InvestmentRecommendation
// @Failure     400 {object} ErrorResponse "Invalid risk preference or budget level"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /investment-advice [get]
func (h *AnalyticsHandler) GetInvestmentAdvice(c *gin.Context) {
	if _, err := getUserID(c); err != nil {
		respondWithError(c, err)
		return
	}

	var req InvestmentAdviceRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	recommendation, err := analytics.RecommendInvestment(analytics.RiskPreference(req.Risk), analytics.BudgetLevel(req.Budget))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, recommendation)
}
