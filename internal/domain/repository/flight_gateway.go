package repository

import (
	"context"

	"lounge-advisor-service/internal/domain/entity"
)

// ScheduleQuery identifies one flight leg to look up.
type ScheduleQuery struct {
	Carrier           string
	FlightNumber      string
	DepartureDate     string // YYYY-MM-DD, local to the departure airport
	OperationalSuffix string
}

// OfferQuery is an origin->destination flight search.
type OfferQuery struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string // optional
}

// FlightGateway is the upstream flight-data boundary. Implementations
// own authentication, semantic input validation and the single-retry
// policy for transient upstream failures.
type FlightGateway interface {
	GetSchedule(ctx context.Context, q ScheduleQuery) (*entity.FlightSchedule, error)
	SearchOffers(ctx context.Context, q OfferQuery) ([]entity.FlightOffer, error)
}
