package domain

import (
	"time"

	"github.com/google/uuid"
)

// Field limits for a Todo, counted in characters after trimming.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
)

// Todo is a single item on a user's list. ID and OwnerID never change after
// creation. A nil Description means absent; a pointer to "" means empty.
type Todo struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description *string
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TodoFilter narrows a list query. A nil Completed returns every todo.
type TodoFilter struct {
	Completed *bool
}

// Matches reports whether t passes the filter.
func (f TodoFilter) Matches(t Todo) bool {
	return f.Completed == nil || *f.Completed == t.IsCompleted
}
