package todo

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/auth"
	"github.com/heartmarshall/todo-backend/internal/domain"
)

// todoStore is the narrow persistence contract. Every method is scoped by
// the owner; a row owned by someone else behaves as if it did not exist.
type todoStore interface {
	Insert(ctx context.Context, t *domain.Todo) (*domain.Todo, error)
	GetByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*domain.Todo, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, filter domain.TodoFilter) ([]domain.Todo, error)
	UpdateByIDForOwner(ctx context.Context, ownerID uuid.UUID, t *domain.Todo) (*domain.Todo, error)
	DeleteByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) error
}

// Service implements the todo operations.
type Service struct {
	log   *slog.Logger
	todos todoStore
	now   func() time.Time
}

// NewService creates a new todo service.
func NewService(log *slog.Logger, todos todoStore) *Service {
	return &Service{
		log:   log.With("service", "todo"),
		todos: todos,
		now:   time.Now,
	}
}

// timestamp returns the current time in UTC at database precision.
func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func caller(ac auth.AuthContext) (uuid.UUID, error) {
	if !ac.Valid() {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return ac.UserID, nil
}

// trimPtr trims a present string and keeps nil as nil. An empty result stays
// an empty string.
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
