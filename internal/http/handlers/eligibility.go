package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nidhisakhi/backend/internal/domain/pricing"
	"github.com/nidhisakhi/backend/internal/observability"
)

type EligibilityHandler struct {
	metrics *observability.Metrics
}

type eligibilityRequest struct {
	LoanType           string   `json:"loanType" binding:"required"`
	Amount             *float64 `json:"amount" binding:"required,gte=0"`
	MonthlyIncome      *float64 `json:"monthlyIncome" binding:"required,gte=0"`
	EmploymentType     string   `json:"employmentType" binding:"required"`
	EmploymentDuration *float64 `json:"employmentDuration" binding:"required,gte=0"`
	ExistingEMI        float64  `json:"existingEmi" binding:"gte=0"`
	CreditScore        *int     `json:"creditScore" binding:"required,gte=0"`
	Age                *int     `json:"age" binding:"required,gte=0"`
}

type emiRequest struct {
	Principal    float64 `json:"principal" binding:"gte=0"`
	InterestRate float64 `json:"interestRate" binding:"gte=0"`
	Tenure       int     `json:"tenure" binding:"required,gt=0,lte=360"`
}

func NewEligibilityHandler(metrics *observability.Metrics) *EligibilityHandler {
	return &EligibilityHandler{metrics: metrics}
}

// Check answers the eligibility form. The requested amount is validated but
// does not influence the verdict.
func (h *EligibilityHandler) Check(c *gin.Context) {
	var req eligibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	profile := pricing.Profile{
		Age:                     *req.Age,
		MonthlyIncome:           *req.MonthlyIncome,
		EmploymentType:          pricing.EmploymentType(req.EmploymentType),
		EmploymentDurationYears: *req.EmploymentDuration,
		CreditScore:             *req.CreditScore,
		ExistingMonthlyEMI:      req.ExistingEMI,
		LoanType:                pricing.LoanType(req.LoanType),
	}
	if !profile.LoanType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_loan_type"})
		return
	}
	if !profile.EmploymentType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_employment_type"})
		return
	}

	verdict, err := pricing.Evaluate(profile)
	if errors.Is(err, pricing.ErrNonFinite) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_amount"})
		return
	}
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "eligibility_failed"})
		return
	}

	h.metrics.ObserveEligibility(verdict.Eligible, string(profile.LoanType))
	c.JSON(http.StatusOK, verdict)
}

func (h *EligibilityHandler) CalculateEMI(c *gin.Context) {
	var req emiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	res, err := pricing.Amortize(req.Principal, req.InterestRate, req.Tenure)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_loan_terms"})
		return
	}
	c.JSON(http.StatusOK, res)
}
