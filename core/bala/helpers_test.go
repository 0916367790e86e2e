package bala

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"shadbala/core/dignity"
	"shadbala/core/types"
)

// state builds a minimal ephemeris state at a longitude
func state(p types.Planet, lon float64) types.PlanetState {
	return types.PlanetState{ID: p, TrueLongitude: lon, MeanLongitude: lon}
}

// sevenStates places the seven planets: Sun Aries 10, Moon Gemini 5,
// Mars Leo 10, Mercury Cancer 10, Jupiter Scorpio 10, Venus Libra 20,
// Saturn Capricorn 10.
func sevenStates() map[types.Planet]types.PlanetState {
	lons := map[types.Planet]float64{
		types.Sun:     10,
		types.Moon:    65,
		types.Mars:    130,
		types.Mercury: 100,
		types.Jupiter: 220,
		types.Venus:   200,
		types.Saturn:  280,
	}
	states := make(map[types.Planet]types.PlanetState, len(lons))
	for p, lon := range lons {
		states[p] = state(p, lon)
	}
	return states
}

// chartFixture is an idealized day: sunrise on the hour, a half-day of
// daylight, birth at mid-morning with an Aries ascendant.
func chartFixture() *types.ChartContext {
	return &types.ChartContext{
		JulianDay:          2451545.1,
		AscendantLongitude: 10,
		HouseCusps: [12]float64{
			10, 40, 70, 100, 130, 160, 190, 220, 250, 280, 310, 340,
		},
		Sunrise:           2451545.0,
		Sunset:            2451545.5,
		NextSunrise:       2451546.0,
		WeekdayLord:       types.Sun,
		Paksha:            types.Shukla,
		YearStartWeekday:  time.Friday,
		MonthStartWeekday: time.Tuesday,
		HasSunTimes:       true,
		HasHouses:         true,
	}
}

// vargasAll places one planet in the same sign and degree across all seven
// divisional charts
func vargasAll(p types.Planet, sign types.Sign, degree float64) types.VargaIndex {
	var placements []types.VargaPlacement
	for _, v := range types.SaptavargaSet() {
		placements = append(placements, types.VargaPlacement{
			Planet: p, Varga: v, Sign: sign, Degree: degree,
		})
	}
	return types.BuildVargaIndex(placements)
}

func resolverFixture() *dignity.Resolver {
	return dignity.NewResolver(sevenStates())
}

// requireDecimal fails unless got equals the exact decimal literal
func requireDecimal(t *testing.T, label string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s = %s, want %s", label, got, want)
	}
}

// approx fails unless got is within 1e-9 of want
func approx(t *testing.T, label string, got decimal.Decimal, want float64) {
	t.Helper()
	g, _ := got.Float64()
	if math.Abs(g-want) > 1e-9 {
		t.Errorf("%s = %s, want about %v", label, got, want)
	}
}
