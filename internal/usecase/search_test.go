package usecase

import (
	"testing"

	"lounge-advisor-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func option(id string, price float64, lounges int) entity.FlightOption {
	return entity.FlightOption{
		Offer:                 entity.FlightOffer{ID: id, PriceTotal: price, Currency: "USD"},
		AccessibleLoungeCount: lounges,
	}
}

func TestRankFlights_LoungeAccessBeatsPrice(t *testing.T) {
	options := []entity.FlightOption{
		option("cheap-no-lounge", 250, 0),
		option("pricier-two-lounges", 300, 2),
	}

	ranked := RankFlights(options, OptimizeLoungeAccess)
	require.Len(t, ranked, 2)
	assert.Equal(t, "pricier-two-lounges", ranked[0].Offer.ID)
	assert.Equal(t, "cheap-no-lounge", ranked[1].Offer.ID)
}

func TestRankFlights_PriceBreaksLoungeTies(t *testing.T) {
	options := []entity.FlightOption{
		option("expensive", 400, 1),
		option("cheap", 200, 1),
	}

	ranked := RankFlights(options, OptimizeLoungeAccess)
	assert.Equal(t, "cheap", ranked[0].Offer.ID)
}

func TestRankFlights_DefaultObjectiveIsPrice(t *testing.T) {
	options := []entity.FlightOption{
		option("pricier-two-lounges", 300, 2),
		option("cheap-no-lounge", 250, 0),
	}

	ranked := RankFlights(options, "")
	assert.Equal(t, "cheap-no-lounge", ranked[0].Offer.ID)
}

func TestRankFlights_ZeroLoungeOptionsAreKept(t *testing.T) {
	options := []entity.FlightOption{
		option("a", 100, 0),
		option("b", 200, 0),
	}

	ranked := RankFlights(options, OptimizeLoungeAccess)
	assert.Len(t, ranked, 2)
}

func TestRankFlights_DoesNotMutateInput(t *testing.T) {
	options := []entity.FlightOption{
		option("cheap-no-lounge", 250, 0),
		option("pricier-two-lounges", 300, 2),
	}

	_ = RankFlights(options, OptimizeLoungeAccess)
	assert.Equal(t, "cheap-no-lounge", options[0].Offer.ID)
}
