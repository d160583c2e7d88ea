package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nidhisakhi/backend/internal/auth"
	"github.com/nidhisakhi/backend/internal/db"
	"github.com/nidhisakhi/backend/internal/domain/user"
	"github.com/nidhisakhi/backend/internal/http/middleware"
)

type UserService interface {
	Profile(ctx context.Context, userID string) (*db.User, error)
	UpdateProfile(ctx context.Context, userID string, in user.ProfileInput) (*db.User, error)
	ChangePassword(ctx context.Context, userID, current, next string) error
}

type UserHandler struct {
	userService UserService
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	uid, _ := middleware.UserID(c)
	u, err := h.userService.Profile(c.Request.Context(), uid)
	if err != nil {
		writeUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req user.ProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	uid, _ := middleware.UserID(c)
	u, err := h.userService.UpdateProfile(c.Request.Context(), uid, req)
	if err != nil {
		writeUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	uid, _ := middleware.UserID(c)
	if err := h.userService.ChangePassword(c.Request.Context(), uid, req.CurrentPassword, req.NewPassword); err != nil {
		writeUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

func writeUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, db.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
	case errors.Is(err, user.ErrEmptyName):
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty_name"})
	case errors.Is(err, user.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
	case errors.Is(err, user.ErrWrongPassword):
		c.JSON(http.StatusBadRequest, gin.H{"error": "wrong_password"})
	case errors.Is(err, user.ErrPasswordRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "password_required"})
	case errors.Is(err, auth.ErrWeakPassword):
		c.JSON(http.StatusBadRequest, gin.H{"error": "weak_password"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_update_failed"})
	}
}
