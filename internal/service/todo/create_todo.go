package todo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/auth"
	"github.com/heartmarshall/todo-backend/internal/domain"
)

// Create stores a new, incomplete todo owned by the caller.
func (s *Service) Create(ctx context.Context, ac auth.AuthContext, input CreateInput) (*domain.Todo, error) {
	ownerID, err := caller(ac)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.timestamp()
	created, err := s.todos.Insert(ctx, &domain.Todo{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       strings.TrimSpace(input.Title),
		Description: trimPtr(input.Description),
		IsCompleted: false,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("todo.Create: %w", err)
	}

	s.log.InfoContext(ctx, "todo created",
		slog.String("user_id", ownerID.String()),
		slog.String("todo_id", created.ID.String()),
	)

	return created, nil
}
