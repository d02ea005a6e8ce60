package todo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/auth"
	"github.com/heartmarshall/todo-backend/internal/domain"
)

// Delete hard-deletes one of the caller's todos.
func (s *Service) Delete(ctx context.Context, ac auth.AuthContext, id uuid.UUID) error {
	ownerID, err := caller(ac)
	if err != nil {
		return err
	}
	if id == uuid.Nil {
		return fmt.Errorf("todo.Delete %s: %w", id, domain.ErrNotFound)
	}

	if err := s.todos.DeleteByIDForOwner(ctx, ownerID, id); err != nil {
		return fmt.Errorf("todo.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "todo deleted",
		slog.String("user_id", ownerID.String()),
		slog.String("todo_id", id.String()),
	)

	return nil
}
