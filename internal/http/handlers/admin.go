package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	admindomain "github.com/nidhisakhi/backend/internal/domain/admin"
	"github.com/nidhisakhi/backend/internal/domain/contact"
	loandomain "github.com/nidhisakhi/backend/internal/domain/loan"
	"github.com/nidhisakhi/backend/internal/http/middleware"
)

type AdminService interface {
	UpdateLoanStatus(ctx context.Context, adminUserID, loanID string, in loandomain.StatusUpdate) (*loandomain.Entity, error)
	ListContacts(ctx context.Context, status contact.Status) ([]contact.Entity, error)
	UpdateContactStatus(ctx context.Context, adminUserID, contactID string, status contact.Status) (*contact.Entity, error)
	AuditTrail(ctx context.Context, limit int) ([]admindomain.AuditEntry, error)
}

type AdminHandler struct {
	adminService AdminService
}

type contactStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func NewAdminHandler(adminService AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func (h *AdminHandler) UpdateLoanStatus(c *gin.Context) {
	var req loandomain.StatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	adminID, _ := middleware.UserID(c)
	updated, err := h.adminService.UpdateLoanStatus(c.Request.Context(), adminID, c.Param("id"), req)
	if err != nil {
		writeLoanError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AdminHandler) ListContacts(c *gin.Context) {
	items, err := h.adminService.ListContacts(c.Request.Context(), contact.Status(strings.TrimSpace(c.Query("status"))))
	if err != nil {
		writeContactError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *AdminHandler) UpdateContactStatus(c *gin.Context) {
	var req contactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	adminID, _ := middleware.UserID(c)
	updated, err := h.adminService.UpdateContactStatus(c.Request.Context(), adminID, c.Param("id"), contact.Status(req.Status))
	if err != nil {
		writeContactError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AdminHandler) AuditTrail(c *gin.Context) {
	limit, _ := strconv.Atoi(strings.TrimSpace(c.Query("limit")))
	items, err := h.adminService.AuditTrail(c.Request.Context(), limit)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "audit_read_failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *AdminHandler) SystemHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
