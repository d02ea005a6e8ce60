package todo

import (
	"context"
	"fmt"

	"github.com/heartmarshall/todo-backend/internal/auth"
	"github.com/heartmarshall/todo-backend/internal/domain"
)

// List returns the caller's todos, newest first. Never returns nil on success.
func (s *Service) List(ctx context.Context, ac auth.AuthContext, input ListInput) ([]domain.Todo, error) {
	ownerID, err := caller(ac)
	if err != nil {
		return nil, err
	}

	todos, err := s.todos.ListForOwner(ctx, ownerID, input.filter())
	if err != nil {
		return nil, fmt.Errorf("todo.List: %w", err)
	}
	if todos == nil {
		todos = []domain.Todo{}
	}
	return todos, nil
}
