package entity

import (
	"fmt"
	"time"
)

// FlightStatus is the normalized operational status of a flight.
type FlightStatus string

const (
	StatusOnTime    FlightStatus = "ON_TIME"
	StatusDelayed   FlightStatus = "DELAYED"
	StatusCancelled FlightStatus = "CANCELLED"
	StatusDeparted  FlightStatus = "DEPARTED"
	StatusLanded    FlightStatus = "LANDED"
	StatusUnknown   FlightStatus = "UNKNOWN"
)

// FlightSchedule is an immutable snapshot of one flight leg as returned by
// the upstream schedule API. It is re-fetched per request and never mutated.
type FlightSchedule struct {
	Carrier            string       `json:"carrier"`
	FlightNumber       string       `json:"flight_number"`
	OperationalSuffix  string       `json:"operational_suffix,omitempty"`
	DepartureAirport   string       `json:"departure_airport"`
	ArrivalAirport     string       `json:"arrival_airport"`
	ScheduledDeparture time.Time    `json:"scheduled_departure"`
	EstimatedDeparture time.Time    `json:"estimated_departure,omitempty"`
	ScheduledArrival   time.Time    `json:"scheduled_arrival"`
	EstimatedArrival   time.Time    `json:"estimated_arrival,omitempty"`
	DepartureTerminal  string       `json:"departure_terminal,omitempty"`
	DepartureGate      string       `json:"departure_gate,omitempty"`
	ArrivalTerminal    string       `json:"arrival_terminal,omitempty"`
	ArrivalGate        string       `json:"arrival_gate,omitempty"`
	Status             FlightStatus `json:"status"`
}

// Designator returns the display form, e.g. "AA123" or "AA123A".
func (s *FlightSchedule) Designator() string {
	return fmt.Sprintf("%s%s%s", s.Carrier, s.FlightNumber, s.OperationalSuffix)
}

// DepartureTime resolves the delay-aware departure time: the estimated time
// wins when it is present and later than scheduled.
func (s *FlightSchedule) DepartureTime() time.Time {
	if !s.EstimatedDeparture.IsZero() && s.EstimatedDeparture.After(s.ScheduledDeparture) {
		return s.EstimatedDeparture
	}
	return s.ScheduledDeparture
}

// ArrivalTime resolves the delay-aware arrival time.
func (s *FlightSchedule) ArrivalTime() time.Time {
	if !s.EstimatedArrival.IsZero() && s.EstimatedArrival.After(s.ScheduledArrival) {
		return s.EstimatedArrival
	}
	return s.ScheduledArrival
}

// DelayMinutes is estimated minus scheduled departure, floored at zero.
func (s *FlightSchedule) DelayMinutes() int {
	if s.EstimatedDeparture.IsZero() {
		return 0
	}
	d := int(s.EstimatedDeparture.Sub(s.ScheduledDeparture).Minutes())
	if d < 0 {
		return 0
	}
	return d
}
