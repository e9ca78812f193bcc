package entity

// ConnectionSegment is one layover between two adjacent itinerary legs.
// Infeasible segments stay in the plan, flagged, with a backup suggestion.
type ConnectionSegment struct {
	Arriving                 *FlightSchedule `json:"arriving"`
	Departing                *FlightSchedule `json:"departing"`
	Airport                  string          `json:"airport"`
	LayoverMinutes           int             `json:"layover_minutes"`
	TerminalChange           bool            `json:"terminal_change"`
	MinimumConnectionMinutes int             `json:"minimum_connection_minutes"`
	Feasible                 bool            `json:"feasible"`
	Window                   *VisitWindow    `json:"window,omitempty"`
	Recommendation           *LoungeScore    `json:"recommendation,omitempty"`
	Backup                   string          `json:"backup,omitempty"`
}

// LayoverPlan is the ordered lounge-visit plan for a multi-leg itinerary.
// Segment order always follows the user's leg order.
type LayoverPlan struct {
	ID              string              `json:"plan_id"`
	Segments        []ConnectionSegment `json:"segments"`
	OverallFeasible bool                `json:"overall_feasible"`
}
