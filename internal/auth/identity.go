package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/domain"
	"github.com/heartmarshall/todo-backend/pkg/ctxutil"
)

// AuthContext is the verified caller identity. It is built once per request
// by the transport layer and passed explicitly to every todo operation;
// ownership is never taken from a request payload.
type AuthContext struct {
	UserID uuid.UUID
}

// FromContext builds an AuthContext from the user ID the auth middleware
// stored in ctx. Returns domain.ErrUnauthorized when there is none.
func FromContext(ctx context.Context) (AuthContext, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return AuthContext{}, domain.ErrUnauthorized
	}
	return AuthContext{UserID: id}, nil
}

// Valid reports whether the context carries a real user ID.
func (a AuthContext) Valid() bool {
	return a.UserID != uuid.Nil
}
