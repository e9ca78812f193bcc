package repository

import (
	"context"

	"lounge-advisor-service/internal/domain/entity"
)

// UserProfileRepository defines read access to traveler entitlements.
type UserProfileRepository interface {
	// Get returns the entitlement for a user id, or a NotFound error
	// when no profile exists.
	Get(ctx context.Context, userID string) (*entity.UserEntitlement, error)
}
