package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/config"
	"github.com/heartmarshall/todo-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// RouterDeps collects everything NewRouter wires together.
type RouterDeps struct {
	Logger    *slog.Logger
	Todos     *TodoHandler
	Auth      *AuthHandler
	Health    *HealthHandler
	Tokens    tokenValidator
	CORS      config.CORSConfig
	Limiter   *middleware.RateLimiter
	RateLimit int
}

// NewRouter builds the HTTP handler: routes on a ServeMux wrapped by
// Recovery, RequestID, Logger, CORS, rate limiting and Auth, outermost first.
// Todo routes additionally require an authenticated caller.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)

	mux.HandleFunc("POST /auth/register", d.Auth.Register)
	mux.HandleFunc("POST /auth/login", d.Auth.Login)

	protected := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(h)
	}
	mux.Handle("POST /todos", protected(d.Todos.Create))
	mux.Handle("GET /todos", protected(d.Todos.List))
	mux.Handle("GET /todos/{id}", protected(d.Todos.Get))
	mux.Handle("PUT /todos/{id}", protected(d.Todos.Update))
	mux.Handle("DELETE /todos/{id}", protected(d.Todos.Delete))

	chain := []middleware.Middleware{
		middleware.Recovery(d.Logger),
		middleware.RequestID,
		middleware.Logger(d.Logger),
		middleware.CORS(d.CORS),
	}
	if d.Limiter != nil {
		chain = append(chain, d.Limiter.Limit(d.RateLimit))
	}
	chain = append(chain, middleware.Auth(d.Tokens))

	return middleware.Chain(chain...)(mux)
}
