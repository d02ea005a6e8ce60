package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// SeedUser inserts a user with a unique email and a placeholder password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "user-" + uuid.NewString()[:8] + "@example.com",
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderplaceho",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedTodo inserts a todo for ownerID created at createdAt.
func SeedTodo(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, title string, completed bool, createdAt time.Time) domain.Todo {
	t.Helper()

	createdAt = createdAt.UTC().Truncate(time.Microsecond)
	todo := domain.Todo{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       title,
		IsCompleted: completed,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO todos (id, owner_id, title, description, is_completed, created_at, updated_at)
		 VALUES ($1, $2, $3, NULL, $4, $5, $6)`,
		todo.ID, todo.OwnerID, todo.Title, todo.IsCompleted, todo.CreatedAt, todo.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTodo: %v", err)
	}

	return todo
}
