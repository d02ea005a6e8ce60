package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/todo-backend/internal/adapter/postgres/todo"
	"github.com/heartmarshall/todo-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/todo-backend/internal/auth"
	"github.com/heartmarshall/todo-backend/internal/cache"
	"github.com/heartmarshall/todo-backend/internal/config"
	"github.com/heartmarshall/todo-backend/internal/domain"
	authsvc "github.com/heartmarshall/todo-backend/internal/service/auth"
	todosvc "github.com/heartmarshall/todo-backend/internal/service/todo"
	"github.com/heartmarshall/todo-backend/internal/transport/middleware"
	"github.com/heartmarshall/todo-backend/internal/transport/rest"
)

type todoStore interface {
	Insert(ctx context.Context, t *domain.Todo) (*domain.Todo, error)
	GetByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*domain.Todo, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, filter domain.TodoFilter) ([]domain.Todo, error)
	UpdateByIDForOwner(ctx context.Context, ownerID uuid.UUID, t *domain.Todo) (*domain.Todo, error)
	DeleteByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) error
}

// NewHandler wires repositories, services and HTTP transport over an open
// pool. rdb may be nil, in which case todo lists are always read from
// PostgreSQL. The returned func releases background resources.
func NewHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, rdb *redis.Client) (http.Handler, func()) {
	var store todoStore = todo.New(pool)
	components := map[string]rest.Pinger{"database": pool}

	if rdb != nil {
		store = cache.NewCachedStore(logger, store, cache.NewTodoCache(rdb, cfg.Redis.TTL))
		components["redis"] = rest.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, user.New(pool), jwtManager, cfg.Auth)
	todoService := todosvc.NewService(logger, store)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.RequestsPerMinute > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	}

	handler := rest.NewRouter(rest.RouterDeps{
		Logger:    logger,
		Todos:     rest.NewTodoHandler(todoService, logger),
		Auth:      rest.NewAuthHandler(authService, logger),
		Health:    rest.NewHealthHandler(Version, components),
		Tokens:    authService,
		CORS:      cfg.CORS,
		Limiter:   limiter,
		RateLimit: cfg.RateLimit.RequestsPerMinute,
	})

	cleanup := func() {
		if limiter != nil {
			limiter.Stop()
		}
	}
	return handler, cleanup
}
