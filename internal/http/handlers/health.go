package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type HealthHandler struct {
	database Pinger
	cache    Pinger
}

// NewHealthHandler reports readiness of the database and, when configured, the
// rate limit cache. A nil cache is skipped.
func NewHealthHandler(database, cache Pinger) *HealthHandler {
	return &HealthHandler{database: database, cache: cache}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "nidhisakhi-backend",
	})
}

func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	body := gin.H{"status": "ready", "database": "ok"}
	ready := true

	if h.database == nil || h.database.Ping(ctx) != nil {
		body["database"] = "error"
		ready = false
	}
	if h.cache != nil {
		body["cache"] = "ok"
		if h.cache.Ping(ctx) != nil {
			body["cache"] = "error"
			ready = false
		}
	}

	if !ready {
		body["status"] = "not_ready"
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}
	c.JSON(http.StatusOK, body)
}
