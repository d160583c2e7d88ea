package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nidhisakhi/backend/internal/auth"
	"github.com/nidhisakhi/backend/internal/config"
	"github.com/nidhisakhi/backend/internal/db"
	"github.com/nidhisakhi/backend/internal/http/handlers"
	"github.com/nidhisakhi/backend/internal/http/middleware"
	"github.com/nidhisakhi/backend/internal/observability"
	"github.com/nidhisakhi/backend/internal/ratelimit"
	"github.com/nidhisakhi/backend/internal/version"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Dependencies struct {
	Pinger             handlers.Pinger
	CachePinger        handlers.Pinger
	AuthHandler        *handlers.AuthHandler
	UserHandler        *handlers.UserHandler
	LoanHandler        *handlers.LoanHandler
	EligibilityHandler *handlers.EligibilityHandler
	ContactHandler     *handlers.ContactHandler
	BankHandler        *handlers.BankHandler
	AdminHandler       *handlers.AdminHandler
	JWTManager         *auth.JWTManager
	Limiter            ratelimit.Limiter
	Metrics            *observability.Metrics
	Gatherer           prometheus.Gatherer
}

func NewRouter(cfg config.Config, logger *slog.Logger, deps Dependencies) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Warn("invalid trusted proxies, trusting none", "err", err)
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(gin.Recovery())
	r.Use(middleware.Observe(logger, deps.Metrics))
	r.Use(middleware.RequestBodyLimit(cfg.MaxBodyBytes))

	health := handlers.NewHealthHandler(deps.Pinger, deps.CachePinger)
	meta := handlers.NewMetaHandler(cfg.Env, version.Version)

	r.GET("/health", health.Health)
	r.GET("/ready", health.Ready)
	r.GET("/v1/meta", meta.GetMeta)
	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	var throttle gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if deps.Limiter != nil {
		throttle = middleware.RateLimit(deps.Limiter, logger, deps.Metrics)
	}

	api := r.Group("/api")

	if deps.EligibilityHandler != nil {
		api.POST("/eligibility", throttle, deps.EligibilityHandler.Check)
		api.POST("/emi", throttle, deps.EligibilityHandler.CalculateEMI)
	}
	if deps.ContactHandler != nil {
		api.POST("/contact", throttle, deps.ContactHandler.Submit)
	}
	if deps.BankHandler != nil {
		api.GET("/banks", deps.BankHandler.ListBanks)
		api.GET("/banks/compare", deps.BankHandler.Compare)
		api.GET("/branches", deps.BankHandler.Branches)
		api.GET("/branches/nearest", deps.BankHandler.NearestBranches)
	}

	if deps.JWTManager == nil {
		r.NoRoute(notFound)
		return r
	}
	requireAuth := middleware.RequireAuth(deps.JWTManager)

	if deps.AuthHandler != nil {
		authGroup := api.Group("/auth")
		authGroup.POST("/register", throttle, deps.AuthHandler.Register)
		authGroup.POST("/login", throttle, deps.AuthHandler.Login)
		authGroup.POST("/refresh", throttle, deps.AuthHandler.Refresh)
		authGroup.POST("/logout", throttle, deps.AuthHandler.Logout)
		authGroup.GET("/me", requireAuth, deps.AuthHandler.Me)
	}

	if deps.UserHandler != nil {
		users := api.Group("/users", requireAuth)
		users.GET("/profile", deps.UserHandler.GetProfile)
		users.PUT("/profile", deps.UserHandler.UpdateProfile)
		users.PUT("/change-password", deps.UserHandler.ChangePassword)
	}

	loans := api.Group("/loans", requireAuth)
	if deps.LoanHandler != nil {
		loans.GET("", deps.LoanHandler.ListLoans)
		loans.POST("", deps.LoanHandler.CreateLoan)
		loans.GET("/:id", deps.LoanHandler.GetLoan)
		loans.GET("/:id/schedule", deps.LoanHandler.GetSchedule)
	}
	if deps.EligibilityHandler != nil {
		loans.POST("/check-eligibility", deps.EligibilityHandler.Check)
	}

	if deps.AdminHandler != nil {
		adminGroup := r.Group("/admin")
		adminGroup.Use(requireAuth, middleware.RequireRole(db.RoleAdmin))
		adminGroup.GET("/system/health", deps.AdminHandler.SystemHealth)
		adminGroup.GET("/audit", deps.AdminHandler.AuditTrail)
		adminGroup.PATCH("/loans/:id/status", deps.AdminHandler.UpdateLoanStatus)
		adminGroup.GET("/contacts", deps.AdminHandler.ListContacts)
		adminGroup.PATCH("/contacts/:id/status", deps.AdminHandler.UpdateContactStatus)
	}

	r.NoRoute(notFound)
	return r
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
}
