package entity

// Priority is the traveler's stated optimization goal.
type Priority string

const (
	PriorityComfort  Priority = "comfort"
	PrioritySpeed    Priority = "speed"
	PriorityMobility Priority = "mobility"
)

// Preferences are supplied per request and never persisted.
type Preferences struct {
	Quiet              bool     `json:"quiet"`
	Food               bool     `json:"food"`
	Showers            bool     `json:"showers"`
	Priority           Priority `json:"priority,omitempty"`
	MobilityAssistance bool     `json:"mobility_assistance"`
}
