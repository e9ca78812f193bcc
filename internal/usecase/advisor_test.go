package usecase

import (
	"context"
	"testing"
	"time"

	"lounge-advisor-service/internal/domain/apperr"
	"lounge-advisor-service/internal/domain/entity"
	"lounge-advisor-service/internal/domain/repository"
	"lounge-advisor-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	schedules map[string]*entity.FlightSchedule
	offers    []entity.FlightOffer
	err       error
}

func (f *fakeGateway) GetSchedule(_ context.Context, q repository.ScheduleQuery) (*entity.FlightSchedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.schedules[q.Carrier+q.FlightNumber]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "fake.GetSchedule", "no flight found")
	}
	return s, nil
}

func (f *fakeGateway) SearchOffers(_ context.Context, _ repository.OfferQuery) ([]entity.FlightOffer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.offers, nil
}

type fakeLoungeStore struct {
	byAirport map[string][]entity.Lounge
	err       error
}

func (f *fakeLoungeStore) ListByAirport(_ context.Context, airport, terminal string) ([]entity.Lounge, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.Lounge
	for _, l := range f.byAirport[airport] {
		if l.ServesTerminal(terminal) {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeProfileStore struct {
	profiles map[string]*entity.UserEntitlement
	err      error
}

func (f *fakeProfileStore) Get(_ context.Context, userID string) (*entity.UserEntitlement, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.profiles[userID]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "fake.Get", "no profile")
	}
	return p, nil
}

func newTestAdvisor(gw *fakeGateway, lounges *fakeLoungeStore, users *fakeProfileStore) *Advisor {
	a := NewAdvisor(gw, lounges, users, nil, nil, DefaultConnectionPolicy(), 45, logger.NewNop(), nil)
	a.now = func() time.Time { return day("12:00") }
	return a
}

func loungesAt(airport string) *fakeLoungeStore {
	return &fakeLoungeStore{byAirport: map[string][]entity.Lounge{
		airport: {
			{ID: "l1", AirportCode: airport, Name: "Flagship", AccessProviders: []string{"amex-plat"},
				Rating: 4.5, WalkingMinutes: 8, Amenities: []string{"quiet-zone", "dining"}},
			{ID: "l2", AirportCode: airport, Name: "Partner Club", AccessProviders: []string{"priority-pass"},
				Rating: 3.5, WalkingMinutes: 4},
		},
	}}
}

func knownUser() *fakeProfileStore {
	return &fakeProfileStore{profiles: map[string]*entity.UserEntitlement{
		"u1": {UserID: "u1", Memberships: []string{"amex-plat"}},
	}}
}

func TestRecommendForFlight_Success(t *testing.T) {
	gw := &fakeGateway{schedules: map[string]*entity.FlightSchedule{
		"AA123": {Carrier: "AA", FlightNumber: "123", DepartureAirport: "JFK",
			ScheduledDeparture: day("18:00"), Status: entity.StatusOnTime},
	}}
	a := newTestAdvisor(gw, loungesAt("JFK"), knownUser())

	result, err := a.RecommendForFlight(context.Background(), repository.ScheduleQuery{Carrier: "AA", FlightNumber: "123"}, "u1", entity.Preferences{}, false)
	require.NoError(t, err)

	assert.Equal(t, StatusSuccess, result.Status)
	require.Len(t, result.Recommendations, 2)
	assert.Equal(t, "l1", result.Recommendations[0].Lounge.ID)
	assert.True(t, result.Recommendations[0].Accessible)

	// 18:00 - 45 boarding - 8 walking to the top lounge
	require.NotNil(t, result.Window)
	assert.Equal(t, day("17:07"), result.Window.LeaveBy)
	assert.Empty(t, result.Advisories)
}

func TestRecommendForFlight_MissingProfileDegradesToPartial(t *testing.T) {
	gw := &fakeGateway{schedules: map[string]*entity.FlightSchedule{
		"AA123": {Carrier: "AA", FlightNumber: "123", DepartureAirport: "JFK",
			ScheduledDeparture: day("18:00"), Status: entity.StatusOnTime},
	}}
	a := newTestAdvisor(gw, loungesAt("JFK"), &fakeProfileStore{profiles: map[string]*entity.UserEntitlement{}})

	result, err := a.RecommendForFlight(context.Background(), repository.ScheduleQuery{Carrier: "AA", FlightNumber: "123"}, "ghost", entity.Preferences{}, false)
	require.NoError(t, err)

	assert.Equal(t, StatusPartial, result.Status)
	require.Len(t, result.Recommendations, 2)
	for _, r := range result.Recommendations {
		assert.False(t, r.Accessible)
	}
	assert.NotEmpty(t, result.Advisories)
}

func TestRecommendForFlight_LoungeStoreDownDegradesToPartial(t *testing.T) {
	gw := &fakeGateway{schedules: map[string]*entity.FlightSchedule{
		"AA123": {Carrier: "AA", FlightNumber: "123", DepartureAirport: "JFK",
			ScheduledDeparture: day("18:00"), Status: entity.StatusOnTime},
	}}
	lounges := &fakeLoungeStore{err: apperr.New(apperr.Upstream, "fake.ListByAirport", "catalog down")}
	a := newTestAdvisor(gw, lounges, knownUser())

	result, err := a.RecommendForFlight(context.Background(), repository.ScheduleQuery{Carrier: "AA", FlightNumber: "123"}, "u1", entity.Preferences{}, false)
	require.NoError(t, err)

	assert.Equal(t, StatusPartial, result.Status)
	assert.Empty(t, result.Recommendations)
	assert.NotEmpty(t, result.Advisories)
}

func TestRecommendForFlight_CancelledFlightHasNoWindow(t *testing.T) {
	gw := &fakeGateway{schedules: map[string]*entity.FlightSchedule{
		"AA123": {Carrier: "AA", FlightNumber: "123", DepartureAirport: "JFK",
			ScheduledDeparture: day("18:00"), Status: entity.StatusCancelled},
	}}
	a := newTestAdvisor(gw, loungesAt("JFK"), knownUser())

	result, err := a.RecommendForFlight(context.Background(), repository.ScheduleQuery{Carrier: "AA", FlightNumber: "123"}, "u1", entity.Preferences{}, false)
	require.NoError(t, err)

	assert.Equal(t, StatusPartial, result.Status)
	assert.Nil(t, result.Window)
	require.NotEmpty(t, result.Advisories)
	assert.Contains(t, result.Advisories[0], "cancelled")
	// Lounges are still ranked for the rebooked flight.
	assert.Len(t, result.Recommendations, 2)
}

func TestRecommendForFlight_GatewayErrorPropagates(t *testing.T) {
	gw := &fakeGateway{err: apperr.New(apperr.Upstream, "fake.GetSchedule", "upstream down")}
	a := newTestAdvisor(gw, loungesAt("JFK"), knownUser())

	_, err := a.RecommendForFlight(context.Background(), repository.ScheduleQuery{Carrier: "AA", FlightNumber: "123"}, "u1", entity.Preferences{}, false)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Upstream))
}

func layoverGateway() *fakeGateway {
	return &fakeGateway{schedules: map[string]*entity.FlightSchedule{
		"AA100": {Carrier: "AA", FlightNumber: "100",
			DepartureAirport: "JFK", ArrivalAirport: "ORD",
			DepartureTerminal: "8", ArrivalTerminal: "1",
			ScheduledDeparture: day("08:00"), ScheduledArrival: day("10:00"),
			Status: entity.StatusOnTime},
		"AA200": {Carrier: "AA", FlightNumber: "200",
			DepartureAirport: "ORD", ArrivalAirport: "LAX",
			DepartureTerminal: "1", ArrivalTerminal: "5",
			ScheduledDeparture: day("14:00"), ScheduledArrival: day("17:00"),
			Status: entity.StatusOnTime},
		"AA300": {Carrier: "AA", FlightNumber: "300",
			DepartureAirport: "LAX", ArrivalAirport: "SFO",
			DepartureTerminal: "5", ArrivalTerminal: "2",
			ScheduledDeparture: day("17:40"), ScheduledArrival: day("19:00"),
			Status: entity.StatusOnTime},
	}}
}

func TestAnalyzeLayover_FeasibleSegmentGetsRecommendation(t *testing.T) {
	a := newTestAdvisor(layoverGateway(), loungesAt("ORD"), knownUser())

	legs := []repository.ScheduleQuery{
		{Carrier: "AA", FlightNumber: "100"},
		{Carrier: "AA", FlightNumber: "200"},
	}
	result, err := a.AnalyzeLayover(context.Background(), legs, "u1", entity.Preferences{}, false)
	require.NoError(t, err)

	require.NotNil(t, result.Plan)
	require.Len(t, result.Plan.Segments, 1)
	seg := result.Plan.Segments[0]

	assert.True(t, seg.Feasible)
	assert.True(t, result.Plan.OverallFeasible)
	require.NotNil(t, seg.Recommendation)
	assert.Equal(t, "l1", seg.Recommendation.Lounge.ID)

	// Window opens at arrival, closes 45 boarding + 8 walking before departure.
	require.NotNil(t, seg.Window)
	assert.Equal(t, day("10:00"), seg.Window.EnterNotBefore)
	assert.Equal(t, day("13:07"), seg.Window.LeaveBy)
	assert.NotEmpty(t, result.Plan.ID)
}

func TestAnalyzeLayover_TightConnectionStaysInPlanFlagged(t *testing.T) {
	gw := layoverGateway()
	// Shrink the ORD layover below the 90-minute terminal-change minimum.
	gw.schedules["AA200"].ScheduledDeparture = day("10:40")
	gw.schedules["AA200"].DepartureTerminal = "3"
	a := newTestAdvisor(gw, loungesAt("ORD"), knownUser())

	legs := []repository.ScheduleQuery{
		{Carrier: "AA", FlightNumber: "100"},
		{Carrier: "AA", FlightNumber: "200"},
	}
	result, err := a.AnalyzeLayover(context.Background(), legs, "u1", entity.Preferences{}, false)
	require.NoError(t, err)

	require.Len(t, result.Plan.Segments, 1)
	seg := result.Plan.Segments[0]

	assert.False(t, seg.Feasible)
	assert.False(t, result.Plan.OverallFeasible)
	assert.Nil(t, seg.Recommendation)
	assert.NotEmpty(t, seg.Backup)
	assert.NotEmpty(t, result.Advisories)
}

func TestAnalyzeLayover_LegOrderIsPreserved(t *testing.T) {
	a := newTestAdvisor(layoverGateway(), loungesAt("ORD"), knownUser())

	legs := []repository.ScheduleQuery{
		{Carrier: "AA", FlightNumber: "100"},
		{Carrier: "AA", FlightNumber: "200"},
		{Carrier: "AA", FlightNumber: "300"},
	}
	result, err := a.AnalyzeLayover(context.Background(), legs, "u1", entity.Preferences{}, false)
	require.NoError(t, err)

	require.Len(t, result.Plan.Segments, 2)
	assert.Equal(t, "ORD", result.Plan.Segments[0].Airport)
	assert.Equal(t, "LAX", result.Plan.Segments[1].Airport)
}

func TestAnalyzeLayover_RequiresTwoLegs(t *testing.T) {
	a := newTestAdvisor(layoverGateway(), loungesAt("ORD"), knownUser())

	_, err := a.AnalyzeLayover(context.Background(), []repository.ScheduleQuery{{Carrier: "AA", FlightNumber: "100"}}, "u1", entity.Preferences{}, false)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
}

func TestSearchFlights_CountsLoungesPerDepartureTerminal(t *testing.T) {
	gw := &fakeGateway{offers: []entity.FlightOffer{
		{ID: "o1", Origin: "JFK", DepartureTerminal: "8", PriceTotal: 300},
		{ID: "o2", Origin: "JFK", DepartureTerminal: "4", PriceTotal: 250},
	}}
	lounges := &fakeLoungeStore{byAirport: map[string][]entity.Lounge{
		"JFK": {
			{ID: "t8", Terminal: "8", AccessProviders: []string{"amex-plat"}},
			{ID: "landside", AccessProviders: []string{"amex-plat"}},
			{ID: "locked", Terminal: "8", AccessProviders: []string{"priority-pass"}},
		},
	}}
	a := newTestAdvisor(gw, lounges, knownUser())

	result, err := a.SearchFlights(context.Background(), repository.OfferQuery{Origin: "JFK", Destination: "LAX", DepartureDate: "2025-06-01"}, "u1", OptimizeLoungeAccess)
	require.NoError(t, err)

	require.Len(t, result.Options, 2)
	// o1 departs terminal 8: the terminal lounge plus the landside one.
	assert.Equal(t, "o1", result.Options[0].Offer.ID)
	assert.Equal(t, 2, result.Options[0].AccessibleLoungeCount)
	assert.Equal(t, 1, result.Options[1].AccessibleLoungeCount)
}

func TestSearchFlights_NoOffersIsSuccessWithAdvisory(t *testing.T) {
	a := newTestAdvisor(&fakeGateway{}, loungesAt("JFK"), knownUser())

	result, err := a.SearchFlights(context.Background(), repository.OfferQuery{Origin: "JFK", Destination: "LAX", DepartureDate: "2025-06-01"}, "u1", "")
	require.NoError(t, err)

	assert.Equal(t, StatusSuccess, result.Status)
	assert.Empty(t, result.Options)
	assert.NotEmpty(t, result.Advisories)
}
