package entity

// HoursWindow is a daily operating window in "HH:MM" local time.
// Both fields empty means the lounge is always open.
type HoursWindow struct {
	Open  string `json:"open,omitempty" dynamodbav:"open"`
	Close string `json:"close,omitempty" dynamodbav:"close"`
}

// Lounge is a catalog record owned by the external lounge store.
// The engine treats it as read-only input.
type Lounge struct {
	ID              string      `json:"lounge_id"`
	AirportCode     string      `json:"airport"`
	Terminal        string      `json:"terminal,omitempty"` // empty means landside / any terminal
	Name            string      `json:"name"`
	AccessProviders []string    `json:"access_providers"`
	Amenities       []string    `json:"amenities"`
	Rating          float64     `json:"rating"`
	WalkingMinutes  int         `json:"walking_distance_minutes"`
	Hours           HoursWindow `json:"operating_hours"`
}

// ServesTerminal reports whether the lounge is usable from the given
// terminal. A lounge without a terminal is landside and serves all of them.
func (l *Lounge) ServesTerminal(terminal string) bool {
	return l.Terminal == "" || terminal == "" || l.Terminal == terminal
}
