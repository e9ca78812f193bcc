package usecase

import (
	"context"
	"fmt"
	"time"

	"lounge-advisor-service/internal/domain/apperr"
	"lounge-advisor-service/internal/domain/entity"
	"lounge-advisor-service/internal/domain/repository"
	"lounge-advisor-service/pkg/logger"
	"lounge-advisor-service/pkg/metrics"
	"lounge-advisor-service/templates"

	"github.com/google/uuid"
)

// Result statuses for the outbound envelope.
const (
	StatusSuccess = "success"
	StatusPartial = "partial"
)

// RecommendationResult is the single-flight response payload.
type RecommendationResult struct {
	Status          string                 `json:"status"`
	Flight          *entity.FlightSchedule `json:"flight,omitempty"`
	Window          *entity.VisitWindow    `json:"window"`
	Recommendations []entity.LoungeScore   `json:"recommendations"`
	Advisories      []string               `json:"advisories"`
}

// LayoverResult is the multi-leg response payload.
type LayoverResult struct {
	Status     string              `json:"status"`
	Plan       *entity.LayoverPlan `json:"plan"`
	Advisories []string            `json:"advisories"`
}

// SearchResult is the flight-search response payload.
type SearchResult struct {
	Status     string                `json:"status"`
	Options    []entity.FlightOption `json:"options"`
	Advisories []string              `json:"advisories"`
}

// Advisor chains the flight gateway, lounge catalog and user profiles
// into recommendations, layover plans and ranked searches. One instance
// serves all request kinds; each invocation is independent and
// sequential so ordering stays deterministic.
type Advisor struct {
	flights        repository.FlightGateway
	lounges        repository.LoungeRepository
	users          repository.UserProfileRepository
	airlines       repository.AirlineRepository
	airports       repository.AirportRepository
	policy         ConnectionPolicy
	boardingBuffer int
	logger         logger.Logger
	metrics        *metrics.Metrics
	now            func() time.Time
}

// NewAdvisor creates the recommendation engine
func NewAdvisor(
	flights repository.FlightGateway,
	lounges repository.LoungeRepository,
	users repository.UserProfileRepository,
	airlines repository.AirlineRepository,
	airports repository.AirportRepository,
	policy ConnectionPolicy,
	boardingBufferMinutes int,
	log logger.Logger,
	m *metrics.Metrics,
) *Advisor {
	if boardingBufferMinutes <= 0 {
		boardingBufferMinutes = DefaultBoardingBufferMinutes
	}
	return &Advisor{
		flights:        flights,
		lounges:        lounges,
		users:          users,
		airlines:       airlines,
		airports:       airports,
		policy:         policy,
		boardingBuffer: boardingBufferMinutes,
		logger:         log,
		metrics:        m,
		now:            time.Now,
	}
}

// RecommendForFlight answers "which lounge before this flight, and when".
func (a *Advisor) RecommendForFlight(ctx context.Context, q repository.ScheduleQuery, userID string, prefs entity.Preferences, guestPassEligible bool) (*RecommendationResult, error) {
	schedule, err := a.flights.GetSchedule(ctx, q)
	if err != nil {
		return nil, err
	}

	var advisories []string
	degraded := false

	ent := a.lookupEntitlement(ctx, userID, &advisories, &degraded)

	candidates, err := a.lounges.ListByAirport(ctx, schedule.DepartureAirport, schedule.DepartureTerminal)
	if err != nil {
		a.logger.Error("Lounge catalog unavailable", "airport", schedule.DepartureAirport, "error", err)
		advisories = append(advisories, templates.LoungeDataUnavailable(schedule.DepartureAirport))
		degraded = true
		candidates = nil
	} else if len(candidates) == 0 {
		advisories = append(advisories, templates.NoLoungesAtAirport(schedule.DepartureAirport))
	}

	ranked := Rank(candidates, ent, prefs, guestPassEligible)

	flightName := a.describeFlight(ctx, schedule)

	result := &RecommendationResult{
		Flight:          schedule,
		Recommendations: ranked,
	}

	switch {
	case schedule.Status == entity.StatusCancelled:
		advisories = append(advisories, templates.CancelledFlight(flightName))
		degraded = true
	default:
		if schedule.DelayMinutes() > 0 {
			advisories = append(advisories, templates.DelayedFlight(flightName, schedule.DelayMinutes()))
		}
		top, ok := topAccessible(ranked)
		if !ok {
			if len(ranked) > 0 {
				advisories = append(advisories, templates.BackupNoAccessibleLounge)
			}
		} else {
			outcome := ComputeWindow(schedule, top.Lounge.WalkingMinutes, a.boardingBuffer, a.now())
			if outcome.Feasible() {
				result.Window = outcome.Window
			} else {
				advisories = append(advisories, outcome.Advisory)
				degraded = true
			}
		}
	}

	result.Status = statusFor(degraded)
	result.Advisories = ensureSlice(advisories)

	if a.metrics != nil {
		a.metrics.RecommendationsServed.Inc()
	}
	return result, nil
}

// AnalyzeLayover builds an ordered lounge-visit plan for a multi-leg
// itinerary. Leg order is never changed; infeasible connections stay in
// the plan, flagged, with a backup suggestion.
func (a *Advisor) AnalyzeLayover(ctx context.Context, legs []repository.ScheduleQuery, userID string, prefs entity.Preferences, guestPassEligible bool) (*LayoverResult, error) {
	const op = "advisor.AnalyzeLayover"
	if len(legs) < 2 {
		return nil, apperr.New(apperr.Validation, op, "layover analysis requires at least two legs")
	}

	schedules := make([]*entity.FlightSchedule, 0, len(legs))
	for _, leg := range legs {
		schedule, err := a.flights.GetSchedule(ctx, leg)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}

	var advisories []string
	degraded := false
	ent := a.lookupEntitlement(ctx, userID, &advisories, &degraded)

	segments := make([]entity.ConnectionSegment, 0, len(schedules)-1)
	overallFeasible := true

	for i := 0; i < len(schedules)-1; i++ {
		seg := buildSegment(schedules[i], schedules[i+1], a.policy, prefs.MobilityAssistance)

		if !seg.Feasible {
			overallFeasible = false
			seg.Backup = templates.BackupTightConnection
			advisories = append(advisories,
				templates.TightConnection(a.describeAirport(ctx, seg.Airport), seg.LayoverMinutes, seg.MinimumConnectionMinutes))
			if a.metrics != nil {
				a.metrics.InfeasibleSegments.Inc()
			}
			segments = append(segments, seg)
			continue
		}

		a.recommendForSegment(ctx, &seg, ent, prefs, guestPassEligible, &advisories, &degraded)
		segments = append(segments, seg)
	}

	plan := &entity.LayoverPlan{
		ID:              uuid.NewString(),
		Segments:        segments,
		OverallFeasible: overallFeasible,
	}

	if a.metrics != nil {
		a.metrics.LayoverPlansBuilt.Inc()
	}
	a.logger.Info("Built layover plan",
		"planId", plan.ID,
		"segments", len(plan.Segments),
		"overallFeasible", plan.OverallFeasible)

	return &LayoverResult{
		Status:     statusFor(degraded),
		Plan:       plan,
		Advisories: ensureSlice(advisories),
	}, nil
}

// recommendForSegment ranks the connection airport's lounges and attaches
// the top accessible one, with its visit window, to the segment. The
// window opens at the arriving leg's delay-aware arrival time.
func (a *Advisor) recommendForSegment(ctx context.Context, seg *entity.ConnectionSegment, ent *entity.UserEntitlement, prefs entity.Preferences, guestPassEligible bool, advisories *[]string, degraded *bool) {
	candidates, err := a.lounges.ListByAirport(ctx, seg.Airport, seg.Departing.DepartureTerminal)
	if err != nil {
		a.logger.Error("Lounge catalog unavailable", "airport", seg.Airport, "error", err)
		*advisories = append(*advisories, templates.LoungeDataUnavailable(seg.Airport))
		*degraded = true
		return
	}
	if len(candidates) == 0 {
		*advisories = append(*advisories, templates.NoLoungesAtAirport(seg.Airport))
		return
	}

	ranked := Rank(candidates, ent, prefs, guestPassEligible)
	top, ok := topAccessible(ranked)
	if !ok {
		seg.Backup = templates.BackupNoAccessibleLounge
		return
	}

	outcome := ComputeWindow(seg.Departing, top.Lounge.WalkingMinutes, a.boardingBuffer, seg.Arriving.ArrivalTime())
	if !outcome.Feasible() {
		seg.Backup = templates.BackupWindowTooTight
		return
	}

	seg.Window = outcome.Window
	seg.Recommendation = &top
}

// SearchFlights ranks origin->destination offers by the requested
// objective, counting lounges the traveler can enter before each one.
func (a *Advisor) SearchFlights(ctx context.Context, q repository.OfferQuery, userID, optimizeFor string) (*SearchResult, error) {
	offers, err := a.flights.SearchOffers(ctx, q)
	if err != nil {
		return nil, err
	}

	var advisories []string
	degraded := false

	if len(offers) == 0 {
		advisories = append(advisories, fmt.Sprintf("no flights found from %s to %s on %s", q.Origin, q.Destination, q.DepartureDate))
		return &SearchResult{Status: StatusSuccess, Options: []entity.FlightOption{}, Advisories: advisories}, nil
	}

	ent := a.lookupEntitlement(ctx, userID, &advisories, &degraded)

	lounges, err := a.lounges.ListByAirport(ctx, q.Origin, "")
	if err != nil {
		a.logger.Error("Lounge catalog unavailable", "airport", q.Origin, "error", err)
		advisories = append(advisories, templates.LoungeDataUnavailable(q.Origin))
		degraded = true
		lounges = nil
	}

	options := make([]entity.FlightOption, 0, len(offers))
	for _, offer := range offers {
		options = append(options, entity.FlightOption{
			Offer:                 offer,
			AccessibleLoungeCount: countAccessible(lounges, ent, offer.DepartureTerminal),
		})
	}

	return &SearchResult{
		Status:     statusFor(degraded),
		Options:    RankFlights(options, optimizeFor),
		Advisories: ensureSlice(advisories),
	}, nil
}

// lookupEntitlement degrades to membership-less ranking when the profile
// is missing or the store is down; both cases add an advisory.
func (a *Advisor) lookupEntitlement(ctx context.Context, userID string, advisories *[]string, degraded *bool) *entity.UserEntitlement {
	ent, err := a.users.Get(ctx, userID)
	if err != nil {
		if apperr.IsKind(err, apperr.NotFound) {
			a.logger.Warn("User profile missing", "userId", userID)
		} else {
			a.logger.Error("User profile lookup failed", "userId", userID, "error", err)
		}
		*advisories = append(*advisories, templates.ProfileUnavailable(userID))
		*degraded = true
		return nil
	}
	return ent
}

// describeFlight prefers "<airline name> AA123" when the reference table
// knows the carrier; lookup failures fall back to the raw designator.
func (a *Advisor) describeFlight(ctx context.Context, schedule *entity.FlightSchedule) string {
	if a.airlines == nil {
		return schedule.Designator()
	}
	airline, err := a.airlines.GetByCode(ctx, schedule.Carrier)
	if err != nil || airline == nil {
		return schedule.Designator()
	}
	return fmt.Sprintf("%s %s", airline.Name, schedule.Designator())
}

func (a *Advisor) describeAirport(ctx context.Context, code string) string {
	if a.airports == nil {
		return code
	}
	airport, err := a.airports.GetByCode(ctx, code)
	if err != nil || airport == nil {
		return code
	}
	return fmt.Sprintf("%s (%s)", airport.Name, code)
}

func topAccessible(ranked []entity.LoungeScore) (entity.LoungeScore, bool) {
	// Accessible lounges sort first, so only the head can qualify.
	if len(ranked) > 0 && ranked[0].Accessible {
		return ranked[0], true
	}
	return entity.LoungeScore{}, false
}

func countAccessible(lounges []entity.Lounge, ent *entity.UserEntitlement, terminal string) int {
	if ent == nil {
		return 0
	}
	count := 0
	for _, l := range lounges {
		if l.ServesTerminal(terminal) && ent.HoldsAnyOf(l.AccessProviders) {
			count++
		}
	}
	return count
}

func statusFor(degraded bool) string {
	if degraded {
		return StatusPartial
	}
	return StatusSuccess
}

func ensureSlice(advisories []string) []string {
	if advisories == nil {
		return []string{}
	}
	return advisories
}
