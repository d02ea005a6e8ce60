// Package todo implements the todo store using PostgreSQL. Every query is
// filtered by owner_id; a todo owned by someone else is reported as not found.
package todo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/todo-backend/internal/domain"
)

const table = "todos"

var columns = []string{
	"id", "owner_id", "title", "description", "is_completed", "created_at", "updated_at",
}

// Repo provides todo persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new todo repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

type row struct {
	ID          uuid.UUID `db:"id"`
	OwnerID     uuid.UUID `db:"owner_id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	IsCompleted bool      `db:"is_completed"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Todo {
	return domain.Todo{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		Title:       r.Title,
		Description: r.Description,
		IsCompleted: r.IsCompleted,
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByIDForOwner returns the todo with id if ownerID owns it.
func (r *Repo) GetByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*domain.Todo, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get todo query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, r.q, &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "todo", id)
	}

	t := dst.toDomain()
	return &t, nil
}

// ListForOwner returns the owner's todos, newest first. Returns an empty
// slice when there are none.
func (r *Repo) ListForOwner(ctx context.Context, ownerID uuid.UUID, filter domain.TodoFilter) ([]domain.Todo, error) {
	where := squirrel.Eq{"owner_id": ownerID}
	if filter.Completed != nil {
		where["is_completed"] = *filter.Completed
	}

	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list todos query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "todos of owner", ownerID)
	}

	todos := make([]domain.Todo, 0, len(rows))
	for _, rw := range rows {
		todos = append(todos, rw.toDomain())
	}
	return todos, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert persists t and returns the stored row.
func (r *Repo) Insert(ctx context.Context, t *domain.Todo) (*domain.Todo, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(t.ID, t.OwnerID, t.Title, t.Description, t.IsCompleted, t.CreatedAt, t.UpdatedAt).
		Suffix("RETURNING " + returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert todo query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, r.q, &dst, query, args...); err != nil {
		// The owner row is gone: the token outlived its user.
		if postgres.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("todo owner %s: %w", t.OwnerID, domain.ErrUnauthorized)
		}
		return nil, postgres.MapError(err, "todo", t.ID)
	}

	out := dst.toDomain()
	return &out, nil
}

// UpdateByIDForOwner overwrites title, description, completion and
// updated_at of the todo t.ID owned by ownerID. Returns domain.ErrNotFound
// when no such row exists.
func (r *Repo) UpdateByIDForOwner(ctx context.Context, ownerID uuid.UUID, t *domain.Todo) (*domain.Todo, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("title", t.Title).
		Set("description", t.Description).
		Set("is_completed", t.IsCompleted).
		Set("updated_at", t.UpdatedAt).
		Where(squirrel.Eq{"id": t.ID, "owner_id": ownerID}).
		Suffix("RETURNING " + returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update todo query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, r.q, &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "todo", t.ID)
	}

	out := dst.toDomain()
	return &out, nil
}

// DeleteByIDForOwner removes the todo. Returns domain.ErrNotFound if it does
// not exist or belongs to another user.
func (r *Repo) DeleteByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete todo query: %w", err)
	}

	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "todo", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("todo %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func returning() string {
	return strings.Join(columns, ", ")
}
