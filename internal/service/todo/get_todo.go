package todo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/auth"
	"github.com/heartmarshall/todo-backend/internal/domain"
)

// Get returns one of the caller's todos.
func (s *Service) Get(ctx context.Context, ac auth.AuthContext, id uuid.UUID) (*domain.Todo, error) {
	ownerID, err := caller(ac)
	if err != nil {
		return nil, err
	}
	// No todo carries the nil ID.
	if id == uuid.Nil {
		return nil, fmt.Errorf("todo.Get %s: %w", id, domain.ErrNotFound)
	}

	t, err := s.todos.GetByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("todo.Get: %w", err)
	}
	return t, nil
}
