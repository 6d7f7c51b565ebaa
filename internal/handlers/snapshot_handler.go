package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"artha/internal/analytics"
	apperrors "artha/internal/errors"
	"artha/internal/models"
	"artha/internal/services"
)

// SnapshotHandler handles financial snapshot requests.
type SnapshotHandler struct {
	snapshotService services.SnapshotServicer
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(snapshotService services.SnapshotServicer) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: snapshotService}
}

// UpsertSnapshotRequest carries all nine balance-sheet fields. Values are
// minor currency units and must be non-negative.
type UpsertSnapshotRequest struct {
	CashEquivalents  int64 `json:"cash_equivalents" binding:"min=0"`
	MonthlyExpenses  int64 `json:"monthly_expenses" binding:"min=0"`
	ShortTermDebt    int64 `json:"short_term_debt" binding:"min=0"`
	Savings          int64 `json:"savings" binding:"min=0"`
	TotalIncome      int64 `json:"total_income" binding:"min=0"`
	TotalDebt        int64 `json:"total_debt" binding:"min=0"`
	TotalAssets      int64 `json:"total_assets" binding:"min=0"`
	DebtPayment      int64 `json:"debt_payment" binding:"min=0"`
	InvestmentAssets int64 `json:"investment_assets" binding:"min=0"`
}

// SyncSnapshotRequest selects the lookback period for reconciliation.
type SyncSnapshotRequest struct {
	Period string `json:"period" binding:"required,time_period"`
}

// SnapshotResponse represents a snapshot in the response
type SnapshotResponse struct {
	ID               uint  `json:"id"`
	UserID           uint  `json:"user_id"`
	CashEquivalents  int64 `json:"cash_equivalents"`
	MonthlyExpenses  int64 `json:"monthly_expenses"`
	ShortTermDebt    int64 `json:"short_term_debt"`
	Savings          int64 `json:"savings"`
	TotalIncome      int64 `json:"total_income"`
	TotalDebt        int64 `json:"total_debt"`
	TotalAssets      int64 `json:"total_assets"`
	DebtPayment      int64 `json:"debt_payment"`
	InvestmentAssets int64 `json:"investment_assets"`
}

func toSnapshotResponse(s *models.FinancialSnapshot) SnapshotResponse {
	return SnapshotResponse{
		ID:               s.ID,
		UserID:           s.UserID,
		CashEquivalents:  s.CashEquivalents,
		MonthlyExpenses:  s.MonthlyExpenses,
		ShortTermDebt:    s.ShortTermDebt,
		Savings:          s.Savings,
		TotalIncome:      s.TotalIncome,
		TotalDebt:        s.TotalDebt,
		TotalAssets:      s.TotalAssets,
		DebtPayment:      s.DebtPayment,
		InvestmentAssets: s.InvestmentAssets,
	}
}

// GetSnapshot returns the user's financial snapshot
// @Summary     Get the financial snapshot
// @Tags        snapshot
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} SnapshotResponse
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No snapshot yet"
// @Router      /snapshot [get]
func (h *SnapshotHandler) GetSnapshot(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	snapshot, err := h.snapshotService.GetSnapshot(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSnapshotResponse(snapshot))
}

// UpsertSnapshot creates or replaces the user's snapshot fields
// @Summary     Upsert the financial snapshot
// @Description Write all nine balance-sheet fields, creating the snapshot if needed
// @Tags        snapshot
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpsertSnapshotRequest true "Snapshot fields"
// @Success     200 {object} SnapshotResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /snapshot [put]
func (h *SnapshotHandler) UpsertSnapshot(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpsertSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	snapshot, err := h.snapshotService.UpsertSnapshot(userID, analytics.SnapshotFields{
		CashEquivalents:  req.CashEquivalents,
		MonthlyExpenses:  req.MonthlyExpenses,
		ShortTermDebt:    req.ShortTermDebt,
		Savings:          req.Savings,
		TotalIncome:      req.TotalIncome,
		TotalDebt:        req.TotalDebt,
		TotalAssets:      req.TotalAssets,
		DebtPayment:      req.DebtPayment,
		InvestmentAssets: req.InvestmentAssets,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSnapshotResponse(snapshot))
}

// ResetSnapshot zeroes all snapshot fields
// @Summary     Reset the financial snapshot
// @Description Force-reset all nine fields to zero without deleting the row
// @Tags        snapshot
// @Produce     json
// @Security    BearerAuth
// @Success     204 "Snapshot reset"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No snapshot yet"
// @Router      /snapshot/reset [post]
func (h *SnapshotHandler) ResetSnapshot(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.snapshotService.ResetSnapshot(userID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SyncSnapshot recomputes snapshot fields from transaction history
// @Summary     Sync the snapshot from transactions
// @Description Recompute derivable snapshot fields over the selected period and upsert the result
// @Tags        snapshot
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SyncSnapshotRequest true "Lookback period (1month|6months|1year|all)"
// @Success     200 {object} SnapshotResponse
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /snapshot/sync [post]
func (h *SnapshotHandler) SyncSnapshot(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SyncSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	snapshot, err := h.snapshotService.SyncFromTransactions(userID, analytics.TimePeriod(req.Period))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSnapshotResponse(snapshot))
}
