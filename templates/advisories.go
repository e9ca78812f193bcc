// Package templates holds the user-facing advisory and backup texts so
// the wording lives in one place.
package templates

import (
	"fmt"
	"time"
)

const (
	// BackupTightConnection is the backup suggestion attached to any
	// connection shorter than the minimum connection time.
	BackupTightConnection = "tight connection; skip the lounge and proceed directly to your gate"

	// BackupNoAccessibleLounge is suggested when the catalog has lounges
	// but none match the traveler's memberships.
	BackupNoAccessibleLounge = "no lounge matches your memberships; consider a day-pass purchase at the airport"

	// BackupWindowTooTight is suggested when the top lounge exists but
	// the remaining time cannot fit a visit.
	BackupWindowTooTight = "layover is feasible but too short for a lounge visit; proceed to your departure gate"
)

// CancelledFlight explains why a cancelled leg produces no visit window.
func CancelledFlight(designator string) string {
	return fmt.Sprintf("flight %s is cancelled; no lounge visit window available", designator)
}

// NoUsableWindow explains an infeasible single-flight window.
func NoUsableWindow(designator string, departure time.Time) string {
	return fmt.Sprintf("no usable lounge window before flight %s departs at %s",
		designator, departure.Format("15:04"))
}

// DelayedFlight notes that the visit window reflects a known delay.
func DelayedFlight(designator string, delayMinutes int) string {
	return fmt.Sprintf("flight %s is delayed by %d minutes; the visit window reflects the new departure time",
		designator, delayMinutes)
}

// NoLoungesAtAirport notes an empty catalog result.
func NoLoungesAtAirport(airport string) string {
	return fmt.Sprintf("no lounges found at %s", airport)
}

// LoungeDataUnavailable notes a degraded response caused by the catalog.
func LoungeDataUnavailable(airport string) string {
	return fmt.Sprintf("lounge data for %s is temporarily unavailable", airport)
}

// ProfileUnavailable notes that ranking ran without membership data.
func ProfileUnavailable(userID string) string {
	return fmt.Sprintf("no profile found for user %s; lounges are ranked without membership matching", userID)
}

// TightConnection describes an infeasible segment.
func TightConnection(airport string, layoverMinutes, minimumMinutes int) string {
	return fmt.Sprintf("connection at %s allows %d minutes but %d are required",
		airport, layoverMinutes, minimumMinutes)
}
