package httpapi

import (
	"lounge-advisor-service/internal/domain/entity"
	"lounge-advisor-service/pkg/utils"
)

// Request kinds accepted by POST /v1/advice.
const (
	KindFlightRecommendation = "flight_recommendation"
	KindLayoverAnalysis      = "layover_analysis"
	KindFlightSearch         = "flight_search"
)

// LegRequest identifies one flight leg by its designator and date. The
// designator comes either split into carrier and flight_number or as one
// free-form flight field like "AA123".
type LegRequest struct {
	Carrier           string `json:"carrier"`
	FlightNumber      string `json:"flight_number"`
	Flight            string `json:"flight,omitempty"`
	DepartureDate     string `json:"departure_date"`
	OperationalSuffix string `json:"operational_suffix,omitempty"`
}

// normalized expands a combined flight designator into the split fields.
// Explicit carrier / flight_number values always win.
func (l LegRequest) normalized() LegRequest {
	if l.Carrier == "" && l.FlightNumber == "" && l.Flight != "" {
		d := utils.ParseDesignator(l.Flight)
		l.Carrier = d.Carrier
		l.FlightNumber = d.Number
		if l.OperationalSuffix == "" {
			l.OperationalSuffix = d.Suffix
		}
	}
	return l
}

// AdviceRequest is the polymorphic advice payload. Kind selects which of
// the optional field groups is required.
type AdviceRequest struct {
	Kind        string             `json:"kind"`
	UserID      string             `json:"user_id"`
	Preferences entity.Preferences `json:"preferences"`
	GuestPass   bool               `json:"guest_pass"`

	// flight_recommendation uses Legs[0]; layover_analysis uses all legs.
	Legs []LegRequest `json:"legs,omitempty"`

	// flight_search fields.
	Origin        string `json:"origin,omitempty"`
	Destination   string `json:"destination,omitempty"`
	DepartureDate string `json:"departure_date,omitempty"`
	ReturnDate    string `json:"return_date,omitempty"`
	OptimizeFor   string `json:"optimize_for,omitempty"`
}

// ErrorResponse is the envelope for every non-2xx reply. Message text is
// sanitized; upstream credentials and internal detail never appear here.
type ErrorResponse struct {
	Status string `json:"status"`
	Kind   string `json:"kind,omitempty"`
	Error  string `json:"error"`
}
