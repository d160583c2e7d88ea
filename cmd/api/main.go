package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/nidhisakhi/backend/internal/auth"
	"github.com/nidhisakhi/backend/internal/config"
	"github.com/nidhisakhi/backend/internal/db"
	admindomain "github.com/nidhisakhi/backend/internal/domain/admin"
	bankdomain "github.com/nidhisakhi/backend/internal/domain/bank"
	contactdomain "github.com/nidhisakhi/backend/internal/domain/contact"
	loandomain "github.com/nidhisakhi/backend/internal/domain/loan"
	userdomain "github.com/nidhisakhi/backend/internal/domain/user"
	"github.com/nidhisakhi/backend/internal/http/handlers"
	"github.com/nidhisakhi/backend/internal/observability"
	"github.com/nidhisakhi/backend/internal/ratelimit"
	postgresrepo "github.com/nidhisakhi/backend/internal/repository/postgres"
	"github.com/nidhisakhi/backend/internal/server"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := observability.NewLogger(cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg)
	if err != nil {
		logger.Error("failed to connect postgres", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

	var (
		limiter     ratelimit.Limiter
		cachePinger handlers.Pinger
	)
	if cfg.RedisURL != "" {
		rdb, err := ratelimit.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("failed to connect redis", "err", err)
			os.Exit(1)
		}
		defer rdb.Close()
		limiter = ratelimit.NewRedisLimiter(rdb, cfg.RateLimitRequests, cfg.RateLimitWindow)
		cachePinger = handlers.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	} else {
		mem := ratelimit.NewMemoryLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
		defer mem.Stop()
		limiter = mem
	}

	authRepo := db.NewAuthRepository(pool)
	outboxRepo := postgresrepo.NewOutboxRepository(pool)
	jwtManager := auth.NewJWTManager(cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTSecret)
	authService := auth.NewService(authRepo, jwtManager, cfg.JWTAccessTTL, cfg.JWTRefreshTTL, cfg.AuthBootstrapAdminEmail)
	loanService := loandomain.NewService(postgresrepo.NewLoanRepository(pool), outboxRepo)
	contactService := contactdomain.NewService(postgresrepo.NewContactRepository(pool), outboxRepo)

	r := server.NewRouter(cfg, logger, server.Dependencies{
		Pinger:             pool,
		CachePinger:        cachePinger,
		AuthHandler:        handlers.NewAuthHandler(authService, auth.CookieConfig{Domain: cfg.CookieDomain, Secure: cfg.CookieSecure}, cfg.JWTAccessTTL, cfg.JWTRefreshTTL),
		UserHandler:        handlers.NewUserHandler(userdomain.NewService(authRepo)),
		LoanHandler:        handlers.NewLoanHandler(loanService, metrics),
		EligibilityHandler: handlers.NewEligibilityHandler(metrics),
		ContactHandler:     handlers.NewContactHandler(contactService),
		BankHandler:        handlers.NewBankHandler(bankdomain.NewService()),
		AdminHandler:       handlers.NewAdminHandler(admindomain.NewService(loanService, contactService, postgresrepo.NewAdminAuditRepository(pool))),
		JWTManager:         jwtManager,
		Limiter:            limiter,
		Metrics:            metrics,
		Gatherer:           prometheus.DefaultGatherer,
	})
	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("api server starting", "addr", cfg.Addr())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	_ = httpServer.Shutdown(shutdownCtx)
	logger.Info("api server stopped")
}
