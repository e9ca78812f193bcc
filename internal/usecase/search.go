package usecase

import (
	"sort"

	"lounge-advisor-service/internal/domain/entity"
)

// OptimizeLoungeAccess selects lounge-count-first ordering in RankFlights.
const OptimizeLoungeAccess = "lounge_access"

// RankFlights orders search candidates. Under the lounge_access objective
// flights with more accessible lounges come first, price ascending as the
// tie-break; otherwise the order is price ascending. Candidates with zero
// accessible lounges are never excluded, only sorted last under the
// lounge-access objective.
func RankFlights(options []entity.FlightOption, optimizeFor string) []entity.FlightOption {
	ranked := make([]entity.FlightOption, len(options))
	copy(ranked, options)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if optimizeFor == OptimizeLoungeAccess && a.AccessibleLoungeCount != b.AccessibleLoungeCount {
			return a.AccessibleLoungeCount > b.AccessibleLoungeCount
		}
		return a.Offer.PriceTotal < b.Offer.PriceTotal
	})
	return ranked
}
