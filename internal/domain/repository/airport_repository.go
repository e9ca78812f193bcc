package repository

import (
	"context"

	"lounge-advisor-service/internal/domain/entity"
)

// AirportRepository defines the interface for airport reference lookups
type AirportRepository interface {
	GetByCode(ctx context.Context, code string) (*entity.Airport, error)
}
