package usecase

import (
	"lounge-advisor-service/internal/domain/entity"
)

// ConnectionPolicy is the minimum-connection-time table. The values are
// policy inputs, not derived from live data.
type ConnectionPolicy struct {
	SameTerminalMinutes   int
	TerminalChangeMinutes int
	MobilityExtraMinutes  int
}

// DefaultConnectionPolicy returns the stock MCT values.
func DefaultConnectionPolicy() ConnectionPolicy {
	return ConnectionPolicy{
		SameTerminalMinutes:   45,
		TerminalChangeMinutes: 90,
		MobilityExtraMinutes:  30,
	}
}

// MinimumMinutes looks up the MCT for a connection.
func (p ConnectionPolicy) MinimumMinutes(terminalChange, mobilityAssistance bool) int {
	minutes := p.SameTerminalMinutes
	if terminalChange {
		minutes = p.TerminalChangeMinutes
	}
	if mobilityAssistance {
		minutes += p.MobilityExtraMinutes
	}
	return minutes
}

// buildSegment computes the timing facts of one adjacent leg pair. A
// different arrival/departure airport counts as a terminal change (the
// most severe case).
func buildSegment(arriving, departing *entity.FlightSchedule, policy ConnectionPolicy, mobilityAssistance bool) entity.ConnectionSegment {
	layover := int(departing.DepartureTime().Sub(arriving.ArrivalTime()).Minutes())

	terminalChange := arriving.ArrivalAirport != departing.DepartureAirport ||
		arriving.ArrivalTerminal != departing.DepartureTerminal

	minimum := policy.MinimumMinutes(terminalChange, mobilityAssistance)

	return entity.ConnectionSegment{
		Arriving:                 arriving,
		Departing:                departing,
		Airport:                  arriving.ArrivalAirport,
		LayoverMinutes:           layover,
		TerminalChange:           terminalChange,
		MinimumConnectionMinutes: minimum,
		Feasible:                 layover >= minimum,
	}
}
