package bala

import (
	"math"

	"github.com/shopspring/decimal"

	"shadbala/core/angle"
	"shadbala/core/tables"
	"shadbala/core/types"
)

// TermCheshta names the single motional sub-term
const TermCheshta = "Motional"

// Cheshta computes motional strength. For the five star planets it blends
// the speed anomaly with the distance of the true position from the mean:
// slow or retrograde motion far from the mean position scores highest. The
// Sun takes half its Ayana Bala and the Moon half its Paksha Bala; the
// nodes have no motional strength.
func Cheshta(planet types.Planet, states map[types.Planet]types.PlanetState,
	obliquity float64) (types.BalaComponent, error) {

	state, err := requireState(planet, states)
	if err != nil {
		return types.BalaComponent{}, err
	}

	var value decimal.Decimal
	switch planet {
	case types.Sun:
		ayana, err := AyanaBala(state, obliquity)
		if err != nil {
			return types.BalaComponent{}, err
		}
		value = ayana.Div(two)
	case types.Moon:
		paksha, err := PakshaBala(planet, states)
		if err != nil {
			return types.BalaComponent{}, err
		}
		value = paksha.Div(two)
	default:
		value = starCheshta(state)
	}

	return types.NewComponent(types.ComponentCheshta,
		types.SubTerm{Name: TermCheshta, Value: value},
	), nil
}

var two = decimal.NewFromInt(2)

// starCheshta scores the five star planets. The kendra factor is the
// separation of the true from the mean longitude scaled to [0, 1]; the
// speed factor rewards retrogression and slowness against the planet's
// mean daily motion. The blend weighs speed 60/40 over position.
func starCheshta(state types.PlanetState) decimal.Decimal {
	ck := angle.Closest(state.MeanLongitude, state.TrueLongitude)
	kendraFactor := ck / 180

	ratio := math.Abs(state.Speed) / tables.MeanSpeed(state.ID)
	var speedFactor float64
	if state.IsRetrograde() {
		speedFactor = clampFloat(2*(1-ratio), 0, 2)
	} else {
		speedFactor = 1 - math.Min(math.Abs(ratio-1)*0.5, 0.5)
	}

	value := clampFloat(60*(0.6*speedFactor+0.4*kendraFactor), 0, 60)
	return decimal.NewFromFloat(value)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
