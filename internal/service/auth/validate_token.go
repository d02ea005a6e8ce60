package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// ValidateToken checks an access token and returns the user ID it was issued
// for. Any failure is reported as ErrUnauthorized.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	return userID, nil
}
