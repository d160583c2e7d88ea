package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	loandomain "github.com/nidhisakhi/backend/internal/domain/loan"
	"github.com/nidhisakhi/backend/internal/domain/pricing"
	"github.com/nidhisakhi/backend/internal/http/middleware"
	"github.com/nidhisakhi/backend/internal/observability"
)

type LoanService interface {
	Create(ctx context.Context, userID string, in loandomain.ApplicationInput) (*loandomain.Application, error)
	ListForUser(ctx context.Context, userID string) ([]loandomain.Entity, error)
	GetForUser(ctx context.Context, userID, loanID string) (*loandomain.Entity, error)
	Schedule(ctx context.Context, userID, loanID string) (pricing.AmortizationResult, error)
}

type LoanHandler struct {
	loanService LoanService
	metrics     *observability.Metrics
}

func NewLoanHandler(loanService LoanService, metrics *observability.Metrics) *LoanHandler {
	return &LoanHandler{loanService: loanService, metrics: metrics}
}

func (h *LoanHandler) CreateLoan(c *gin.Context) {
	var req loandomain.ApplicationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	uid, _ := middleware.UserID(c)
	app, err := h.loanService.Create(c.Request.Context(), uid, req)
	if err != nil {
		writeLoanError(c, err)
		return
	}

	h.metrics.ObserveLoanApplication(string(app.Loan.LoanType))
	c.JSON(http.StatusCreated, app)
}

func (h *LoanHandler) ListLoans(c *gin.Context) {
	uid, _ := middleware.UserID(c)
	items, err := h.loanService.ListForUser(c.Request.Context(), uid)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list_failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *LoanHandler) GetLoan(c *gin.Context) {
	uid, _ := middleware.UserID(c)
	item, err := h.loanService.GetForUser(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		writeLoanError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *LoanHandler) GetSchedule(c *gin.Context) {
	uid, _ := middleware.UserID(c)
	sched, err := h.loanService.Schedule(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		writeLoanError(c, err)
		return
	}
	c.JSON(http.StatusOK, sched)
}

func writeLoanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, loandomain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "loan_not_found"})
	case errors.Is(err, loandomain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, loandomain.ErrInvalidLoanType):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_loan_type"})
	case errors.Is(err, loandomain.ErrInvalidEmploymentType):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_employment_type"})
	case errors.Is(err, loandomain.ErrInvalidAmount), errors.Is(err, loandomain.ErrInvalidTenure):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_loan_terms"})
	case errors.Is(err, loandomain.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_status"})
	case errors.Is(err, loandomain.ErrReasonRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "rejection_reason_required"})
	case errors.Is(err, loandomain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "invalid_transition"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "loan_request_failed"})
	}
}
