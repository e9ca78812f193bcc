package entity

import "time"

// VisitWindow is the bounded time range during which a lounge visit is
// feasible before a flight's boarding cutoff. It is only constructed when
// EnterNotBefore < LeaveBy; an unusable window is represented by a
// WindowOutcome with a nil Window instead of a negative span.
type VisitWindow struct {
	EnterNotBefore time.Time `json:"enter_not_before"`
	LeaveBy        time.Time `json:"leave_by"`
}

// Duration is the usable span of the window.
func (w VisitWindow) Duration() time.Duration {
	return w.LeaveBy.Sub(w.EnterNotBefore)
}

// WindowOutcome carries either a feasible window or an advisory explaining
// why none exists (infeasible timing, cancelled flight).
type WindowOutcome struct {
	Window   *VisitWindow
	Advisory string
}

// Feasible reports whether a usable window was computed.
func (o WindowOutcome) Feasible() bool {
	return o.Window != nil
}
