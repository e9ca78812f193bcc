package usecase

import (
	"time"

	"lounge-advisor-service/internal/domain/entity"
	"lounge-advisor-service/templates"
)

// DefaultBoardingBufferMinutes is the time reserved for boarding when the
// caller supplies no override.
const DefaultBoardingBufferMinutes = 45

// ComputeWindow converts a flight's delay-aware departure time into a
// bounded lounge visit window.
//
// leave_by = departure − boardingBuffer − walking; enter_not_before is the
// caller-supplied reference instant (e.g. after security). A window whose
// leave_by is not strictly after enter_not_before is reported as
// infeasible with an advisory, never clamped to a non-negative span.
func ComputeWindow(schedule *entity.FlightSchedule, walkingMinutes, boardingBufferMinutes int, referenceNow time.Time) entity.WindowOutcome {
	if schedule.Status == entity.StatusCancelled {
		return entity.WindowOutcome{Advisory: templates.CancelledFlight(schedule.Designator())}
	}
	if boardingBufferMinutes <= 0 {
		boardingBufferMinutes = DefaultBoardingBufferMinutes
	}

	departure := schedule.DepartureTime()
	leaveBy := departure.Add(-time.Duration(boardingBufferMinutes+walkingMinutes) * time.Minute)

	if !leaveBy.After(referenceNow) {
		return entity.WindowOutcome{Advisory: templates.NoUsableWindow(schedule.Designator(), departure)}
	}

	return entity.WindowOutcome{
		Window: &entity.VisitWindow{
			EnterNotBefore: referenceNow,
			LeaveBy:        leaveBy,
		},
	}
}
