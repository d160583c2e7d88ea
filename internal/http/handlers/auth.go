package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nidhisakhi/backend/internal/auth"
	"github.com/nidhisakhi/backend/internal/db"
	"github.com/nidhisakhi/backend/internal/http/middleware"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password, userAgent, ipAddress string) (*auth.AuthTokens, error)
	Login(ctx context.Context, email, password, userAgent, ipAddress string) (*auth.AuthTokens, error)
	Refresh(ctx context.Context, refreshToken, userAgent, ipAddress string) (*auth.AuthTokens, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context, userID string) (*db.User, error)
}

type AuthHandler struct {
	authService AuthService
	cookieCfg   auth.CookieConfig
	accessTTL   time.Duration
	refreshTTL  time.Duration
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func NewAuthHandler(authService AuthService, cookieCfg auth.CookieConfig, accessTTL, refreshTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, cookieCfg: cookieCfg, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	tokens, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password, c.GetHeader("User-Agent"), c.ClientIP())
	switch {
	case errors.Is(err, auth.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "email_taken"})
		return
	case errors.Is(err, auth.ErrWeakPassword):
		c.JSON(http.StatusBadRequest, gin.H{"error": "weak_password"})
		return
	case errors.Is(err, auth.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_email"})
		return
	case errors.Is(err, auth.ErrNameRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "name_required"})
		return
	case err != nil:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration_failed"})
		return
	}

	h.writeSession(c, http.StatusCreated, tokens)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	tokens, err := h.authService.Login(c.Request.Context(), req.Email, req.Password, c.GetHeader("User-Agent"), c.ClientIP())
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "authentication_failed"})
		return
	}

	h.writeSession(c, http.StatusOK, tokens)
}

// Refresh reads the refresh token from the cookie, or from the JSON body for
// clients that hold tokens themselves.
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := refreshToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing_refresh_token"})
		return
	}

	tokens, err := h.authService.Refresh(c.Request.Context(), token, c.GetHeader("User-Agent"), c.ClientIP())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "refresh_failed"})
		return
	}

	h.writeSession(c, http.StatusOK, tokens)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if token := refreshToken(c); token != "" {
		_ = h.authService.Logout(c.Request.Context(), token)
	}
	auth.ClearAuthCookies(c.Writer, h.cookieCfg)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *AuthHandler) Me(c *gin.Context) {
	uid, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.authService.Me(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) writeSession(c *gin.Context, status int, tokens *auth.AuthTokens) {
	auth.SetAuthCookies(c.Writer, h.cookieCfg, tokens.AccessToken, tokens.RefreshToken, h.accessTTL, h.refreshTTL)
	c.JSON(status, gin.H{
		"token":        tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
		"user":         tokens.User,
	})
}

func refreshToken(c *gin.Context) string {
	if cookie, err := c.Request.Cookie(auth.RefreshCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err == nil {
		return req.RefreshToken
	}
	return ""
}
