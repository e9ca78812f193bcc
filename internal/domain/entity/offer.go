package entity

import "time"

// FlightOffer is one priced origin->destination search result
// (first segment of the first itinerary, which is what lounge
// planning cares about).
type FlightOffer struct {
	ID                string    `json:"id"`
	Carrier           string    `json:"carrier"`
	FlightNumber      string    `json:"flight_number"`
	Origin            string    `json:"origin"`
	Destination       string    `json:"destination"`
	DepartureTime     time.Time `json:"departure_time"`
	ArrivalTime       time.Time `json:"arrival_time"`
	DepartureTerminal string    `json:"departure_terminal,omitempty"`
	PriceTotal        float64   `json:"price_total"`
	Currency          string    `json:"currency"`
}

// FlightOption is an offer enriched with the number of lounges the
// traveler can actually enter before that flight.
type FlightOption struct {
	Offer                 FlightOffer `json:"flight"`
	AccessibleLoungeCount int         `json:"accessible_lounge_count"`
}
