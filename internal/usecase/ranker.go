package usecase

import (
	"fmt"
	"sort"

	"lounge-advisor-service/internal/domain/entity"
)

// Scoring weights are a tunable policy, kept in one place. Proximity is
// scaled into the same order of magnitude as amenity points so a distant
// lounge cannot out-score a reachable one on amenities alone.
const (
	amenityPoints    = 1.0
	proximityCeiling = 30 // minutes of walking beyond which proximity contributes nothing
	proximityScale   = 0.1
	ratingWeight     = 2.0
)

// preferenceAmenities maps preference flags to catalog amenity tags in a
// fixed order so reason lists are deterministic.
var preferenceAmenities = []struct {
	name    string
	tag     string
	enabled func(p entity.Preferences) bool
}{
	{"quiet", "quiet-zone", func(p entity.Preferences) bool { return p.Quiet }},
	{"food", "dining", func(p entity.Preferences) bool { return p.Food }},
	{"showers", "showers", func(p entity.Preferences) bool { return p.Showers }},
}

// Rank scores every candidate lounge against the traveler's entitlements
// and preferences and returns them in recommendation order: all
// accessible lounges first (by score desc, rating desc, name asc), then
// the inaccessible ones in the same internal order.
func Rank(candidates []entity.Lounge, ent *entity.UserEntitlement, prefs entity.Preferences, guestPassEligible bool) []entity.LoungeScore {
	scores := make([]entity.LoungeScore, 0, len(candidates))
	for _, lounge := range candidates {
		scores = append(scores, scoreLounge(lounge, ent, prefs, guestPassEligible))
	}

	sort.SliceStable(scores, func(i, j int) bool {
		a, b := scores[i], scores[j]
		if a.Accessible != b.Accessible {
			return a.Accessible
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Lounge.Rating != b.Lounge.Rating {
			return a.Lounge.Rating > b.Lounge.Rating
		}
		return a.Lounge.Name < b.Lounge.Name
	})
	return scores
}

func scoreLounge(lounge entity.Lounge, ent *entity.UserEntitlement, prefs entity.Preferences, guestPassEligible bool) entity.LoungeScore {
	var score float64
	var reasons []string

	accessible := guestPassEligible
	if ent != nil && ent.HoldsAnyOf(lounge.AccessProviders) {
		accessible = true
		reasons = append(reasons, fmt.Sprintf("entry granted via %s", firstMatch(ent, lounge.AccessProviders)))
	} else if guestPassEligible {
		reasons = append(reasons, "entry granted via guest pass")
	} else {
		reasons = append(reasons, "no matching membership")
	}

	amenitySet := make(map[string]bool, len(lounge.Amenities))
	for _, a := range lounge.Amenities {
		amenitySet[a] = true
	}
	for _, pa := range preferenceAmenities {
		if pa.enabled(prefs) && amenitySet[pa.tag] {
			score += amenityPoints
			reasons = append(reasons, fmt.Sprintf("has %s you asked for", pa.tag))
		}
	}

	proximity := float64(proximityCeiling-lounge.WalkingMinutes) * proximityScale
	if proximity < 0 {
		proximity = 0
	}
	score += proximity
	reasons = append(reasons, fmt.Sprintf("%d min walk from gate", lounge.WalkingMinutes))

	score += lounge.Rating * ratingWeight
	reasons = append(reasons, fmt.Sprintf("rated %.1f", lounge.Rating))

	return entity.LoungeScore{
		Lounge:     lounge,
		Score:      score,
		Reasons:    reasons,
		Accessible: accessible,
	}
}

func firstMatch(ent *entity.UserEntitlement, providers []string) string {
	for _, m := range ent.Memberships {
		for _, p := range providers {
			if m == p {
				return m
			}
		}
	}
	return ""
}
