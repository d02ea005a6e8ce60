package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns todos. PasswordHash is a bcrypt hash and is
// never serialized to clients.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
