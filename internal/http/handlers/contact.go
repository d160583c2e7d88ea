package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nidhisakhi/backend/internal/domain/contact"
)

type ContactService interface {
	Submit(ctx context.Context, in contact.Submission) (*contact.Entity, error)
}

type ContactHandler struct {
	contactService ContactService
}

func NewContactHandler(contactService ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req contact.Submission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	if _, err := h.contactService.Submit(c.Request.Context(), req); err != nil {
		writeContactError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": contact.SubmittedMessage})
}

func writeContactError(c *gin.Context, err error) {
	var fieldErr *contact.FieldError
	switch {
	case errors.As(err, &fieldErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_field", "field": fieldErr.Field})
	case errors.Is(err, contact.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_email"})
	case errors.Is(err, contact.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_status"})
	case errors.Is(err, contact.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "contact_not_found"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "contact_request_failed"})
	}
}
