package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/accordapp/accord-backend/internal/adapter/postgres"
	couplerepo "github.com/accordapp/accord-backend/internal/adapter/postgres/couple"
	interviewrepo "github.com/accordapp/accord-backend/internal/adapter/postgres/interview"
	sessionrepo "github.com/accordapp/accord-backend/internal/adapter/postgres/session"
	tokenrepo "github.com/accordapp/accord-backend/internal/adapter/postgres/token"
	userrepo "github.com/accordapp/accord-backend/internal/adapter/postgres/user"
	"github.com/accordapp/accord-backend/internal/auth"
	"github.com/accordapp/accord-backend/internal/config"
	authsvc "github.com/accordapp/accord-backend/internal/service/auth"
	couplesvc "github.com/accordapp/accord-backend/internal/service/couple"
	sessionsvc "github.com/accordapp/accord-backend/internal/service/session"
	"github.com/accordapp/accord-backend/internal/transport/middleware"
	"github.com/accordapp/accord-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, connects to the database, applies pending migrations, wires
// the services, and serves HTTP until the context is cancelled.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	txManager := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	couples := couplerepo.New(pool)
	sessions := sessionrepo.New(pool)
	interviews := interviewrepo.New(pool)
	tokens := tokenrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, jwtManager, cfg.Auth)
	coupleService := couplesvc.NewService(logger, couples, users, txManager)
	sessionService := sessionsvc.NewService(logger, sessions, interviews, couples, txManager)

	rateLimiter := middleware.NewRateLimiter(5 * time.Minute)
	defer rateLimiter.Stop()

	go runTokenCleanup(ctx, logger, authService)

	router := rest.NewRouter(rest.RouterDeps{
		Logger:      logger,
		Auth:        rest.NewAuthHandler(authService, logger),
		Couples:     rest.NewCoupleHandler(coupleService, logger),
		Sessions:    rest.NewSessionHandler(sessionService, logger),
		Health:      rest.NewHealthHandler(pool, BuildVersion()),
		Validate:    authService,
		RateLimiter: rateLimiter,
		CORS:        cfg.CORS,
	})

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}

// runTokenCleanup periodically deletes expired refresh tokens until the
// context is cancelled.
func runTokenCleanup(ctx context.Context, logger *slog.Logger, svc *authsvc.Service) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := svc.CleanupExpiredTokens(ctx)
			if err != nil {
				logger.Error("refresh token cleanup failed", slog.String("error", err.Error()))
				continue
			}
			if n > 0 {
				logger.Info("expired refresh tokens removed", slog.Int("count", n))
			}
		}
	}
}
