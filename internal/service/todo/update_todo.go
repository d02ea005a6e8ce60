package todo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/todo-backend/internal/auth"
	"github.com/heartmarshall/todo-backend/internal/domain"
)

// Update replaces title, description and completion of one of the caller's
// todos. Last write wins.
func (s *Service) Update(ctx context.Context, ac auth.AuthContext, input UpdateInput) (*domain.Todo, error) {
	ownerID, err := caller(ac)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.todos.UpdateByIDForOwner(ctx, ownerID, &domain.Todo{
		ID:          input.ID,
		OwnerID:     ownerID,
		Title:       strings.TrimSpace(input.Title),
		Description: trimPtr(input.Description),
		IsCompleted: input.IsCompleted,
		UpdatedAt:   s.timestamp(),
	})
	if err != nil {
		return nil, fmt.Errorf("todo.Update: %w", err)
	}

	s.log.InfoContext(ctx, "todo updated",
		slog.String("user_id", ownerID.String()),
		slog.String("todo_id", updated.ID.String()),
		slog.Bool("is_completed", updated.IsCompleted),
	)

	return updated, nil
}
