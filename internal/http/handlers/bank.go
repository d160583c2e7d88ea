package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nidhisakhi/backend/internal/domain/bank"
)

type BankHandler struct {
	banks *bank.Service
}

func NewBankHandler(banks *bank.Service) *BankHandler {
	return &BankHandler{banks: banks}
}

func (h *BankHandler) ListBanks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.banks.List()})
}

// Compare expects ?product=personal&principal=500000&tenure=36.
func (h *BankHandler) Compare(c *gin.Context) {
	principal, err := strconv.ParseFloat(strings.TrimSpace(c.Query("principal")), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_principal"})
		return
	}
	tenure, err := strconv.Atoi(strings.TrimSpace(c.Query("tenure")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_tenure"})
		return
	}

	offers, err := h.banks.Compare(bank.Product(strings.TrimSpace(c.Query("product"))), principal, tenure)
	if err != nil {
		if errors.Is(err, bank.ErrUnknownProduct) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown_product"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_loan_terms"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": offers})
}

func (h *BankHandler) Branches(c *gin.Context) {
	items := h.banks.Branches(bank.BranchFilter{
		BankID: strings.TrimSpace(c.Query("bank")),
		City:   strings.TrimSpace(c.Query("city")),
	})
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *BankHandler) NearestBranches(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(strings.TrimSpace(c.Query("lat")), 64)
	lng, lngErr := strconv.ParseFloat(strings.TrimSpace(c.Query("lng")), 64)
	if latErr != nil || lngErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_location"})
		return
	}
	limit, _ := strconv.Atoi(strings.TrimSpace(c.DefaultQuery("limit", "5")))

	items, err := h.banks.NearestBranches(lat, lng, limit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_location"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
