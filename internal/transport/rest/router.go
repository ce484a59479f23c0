package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/accordapp/accord-backend/internal/config"
	"github.com/accordapp/accord-backend/internal/transport/middleware"
)

// TokenValidator resolves a bearer token to a user id.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// RouterDeps carries everything the router needs.
type RouterDeps struct {
	Logger      *slog.Logger
	Auth        *AuthHandler
	Couples     *CoupleHandler
	Sessions    *SessionHandler
	Health      *HealthHandler
	Validate    TokenValidator
	RateLimiter *middleware.RateLimiter
	CORS        config.CORSConfig
}

// NewRouter builds the HTTP routing table with the standard middleware
// stack: request id, panic recovery, request logging, CORS, and bearer
// token resolution.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.CORS(deps.CORS))
	r.Use(middleware.Auth(deps.Validate))

	r.Get("/health", deps.Health.Health)
	r.Get("/health/live", deps.Health.Live)
	r.Get("/health/ready", deps.Health.Ready)

	r.Route("/auth", func(r chi.Router) {
		if deps.RateLimiter != nil {
			r.Use(deps.RateLimiter.Limit(20))
		}
		r.Post("/register", deps.Auth.Register)
		r.Post("/login", deps.Auth.Login)
		r.Post("/refresh", deps.Auth.Refresh)
		r.Post("/logout", deps.Auth.Logout)
	})

	r.Route("/couples", func(r chi.Router) {
		r.Post("/invite", deps.Couples.CreateInvite)
		r.Post("/accept", deps.Couples.AcceptInvite)
		r.Get("/me", deps.Couples.GetMe)
		r.Post("/agreement", deps.Couples.SignAgreement)
	})

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", deps.Sessions.Start)
		r.Get("/", deps.Sessions.List)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", deps.Sessions.Get)
			r.Post("/interview", deps.Sessions.SubmitInterview)
			r.Get("/status", deps.Sessions.GetStatus)
			r.Patch("/status", deps.Sessions.UpdateStatus)
		})
	})

	return r
}
