package amadeus

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"lounge-advisor-service/internal/domain/entity"
	"lounge-advisor-service/internal/domain/repository"
)

// Wire shapes for the Amadeus schedule and flight-offers endpoints.

type scheduleResponse struct {
	Data []scheduleEntry `json:"data"`
}

type scheduleEntry struct {
	FlightDesignator struct {
		CarrierCode       string `json:"carrierCode"`
		OperationalSuffix string `json:"operationalSuffix"`
	} `json:"flightDesignator"`
	FlightStatus string      `json:"flightStatus"`
	Departure    flightPoint `json:"departure"`
	Arrival      flightPoint `json:"arrival"`
}

type flightPoint struct {
	IataCode      string `json:"iataCode"`
	Terminal      string `json:"terminal"`
	Gate          string `json:"gate"`
	ScheduledTime string `json:"scheduledTime"`
	EstimatedTime string `json:"estimatedTime"`
	ActualTime    string `json:"actualTime"`
}

func (e scheduleEntry) toEntity(q repository.ScheduleQuery) *entity.FlightSchedule {
	s := &entity.FlightSchedule{
		Carrier:            q.Carrier,
		FlightNumber:       q.FlightNumber,
		OperationalSuffix:  q.OperationalSuffix,
		DepartureAirport:   e.Departure.IataCode,
		ArrivalAirport:     e.Arrival.IataCode,
		ScheduledDeparture: parseFlightTime(e.Departure.ScheduledTime),
		EstimatedDeparture: parseFlightTime(e.Departure.EstimatedTime),
		ScheduledArrival:   parseFlightTime(e.Arrival.ScheduledTime),
		EstimatedArrival:   parseFlightTime(e.Arrival.EstimatedTime),
		DepartureTerminal:  e.Departure.Terminal,
		DepartureGate:      e.Departure.Gate,
		ArrivalTerminal:    e.Arrival.Terminal,
		ArrivalGate:        e.Arrival.Gate,
	}
	s.Status = deriveStatus(e, s)
	return s
}

func deriveStatus(e scheduleEntry, s *entity.FlightSchedule) entity.FlightStatus {
	switch {
	case e.FlightStatus == "CANCELLED" || e.FlightStatus == "CX":
		return entity.StatusCancelled
	case e.Arrival.ActualTime != "":
		return entity.StatusLanded
	case e.Departure.ActualTime != "":
		return entity.StatusDeparted
	case s.ScheduledDeparture.IsZero():
		return entity.StatusUnknown
	case s.DelayMinutes() > 0:
		return entity.StatusDelayed
	default:
		return entity.StatusOnTime
	}
}

type offersResponse struct {
	Data []offerEntry `json:"data"`
}

type offerEntry struct {
	ID    string `json:"id"`
	Price struct {
		Total    string `json:"total"`
		Currency string `json:"currency"`
	} `json:"price"`
	Itineraries []struct {
		Segments []offerSegment `json:"segments"`
	} `json:"itineraries"`
}

type offerSegment struct {
	Departure   offerPoint `json:"departure"`
	Arrival     offerPoint `json:"arrival"`
	CarrierCode string     `json:"carrierCode"`
	Number      string     `json:"number"`
}

type offerPoint struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal"`
	At       string `json:"at"`
}

// toEntity flattens an offer to its first segment, which is the one
// lounge planning at the origin airport cares about.
func (o offerEntry) toEntity() (entity.FlightOffer, bool) {
	if len(o.Itineraries) == 0 || len(o.Itineraries[0].Segments) == 0 {
		return entity.FlightOffer{}, false
	}
	seg := o.Itineraries[0].Segments[0]
	return entity.FlightOffer{
		ID:                o.ID,
		Carrier:           seg.CarrierCode,
		FlightNumber:      seg.Number,
		Origin:            seg.Departure.IataCode,
		Destination:       seg.Arrival.IataCode,
		DepartureTime:     parseFlightTime(seg.Departure.At),
		ArrivalTime:       parseFlightTime(seg.Arrival.At),
		DepartureTerminal: seg.Departure.Terminal,
		PriceTotal:        parsePrice(o.Price.Total),
		Currency:          o.Price.Currency,
	}, true
}

// parseFlightTime accepts RFC3339 or the zone-less local form the
// schedule API uses. Zone-less times are kept as-is (UTC) since the
// engine only compares times from the same itinerary.
func parseFlightTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02T15:04:05", raw); err == nil {
		return t
	}
	return time.Time{}
}

// Price totals arrive as decimal strings, e.g. "321.50".
func parsePrice(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

// readAll drains a response body; split out for the retry path.
func readAll(resp *http.Response) ([]byte, error) {
	return io.ReadAll(resp.Body)
}
