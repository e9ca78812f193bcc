package repository

import (
	"context"

	"lounge-advisor-service/internal/domain/entity"
)

// LoungeRepository defines read access to the external lounge catalog.
type LoungeRepository interface {
	// ListByAirport returns the candidate lounges at an airport. A
	// non-empty terminal narrows the result to lounges reachable from
	// that terminal (landside lounges always qualify).
	ListByAirport(ctx context.Context, airportCode, terminal string) ([]entity.Lounge, error)
}
