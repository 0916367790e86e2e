package bala

import (
	"github.com/shopspring/decimal"

	"shadbala/core/angle"
	"shadbala/core/types"
	"shadbala/internal/errors"
)

// TermDig names the single directional sub-term
const TermDig = "Directional"

// powerCusp returns the house cusp index (0-based) at which the planet has
// full directional strength: Jupiter and Mercury in the 1st, the Sun and
// Mars in the 10th, Saturn in the 7th, the Moon and Venus in the 4th.
func powerCusp(planet types.Planet) (int, bool) {
	switch planet {
	case types.Jupiter, types.Mercury:
		return 0, true
	case types.Sun, types.Mars:
		return 9, true
	case types.Saturn:
		return 6, true
	case types.Moon, types.Venus:
		return 3, true
	}
	return 0, false
}

// Dig computes directional strength: 60 Virupas at the planet's power cusp,
// falling linearly to zero at the opposite point.
func Dig(planet types.Planet, states map[types.Planet]types.PlanetState,
	chart *types.ChartContext) (types.BalaComponent, error) {

	state, err := requireState(planet, states)
	if err != nil {
		return types.BalaComponent{}, err
	}
	if !chart.HasHouses {
		return types.BalaComponent{}, errors.MissingChartData("house cusps")
	}
	cusp, ok := powerCusp(planet)
	if !ok {
		return types.BalaComponent{}, errors.UnsupportedPlanet("Dig Bala", planet)
	}

	separation := angle.Closest(state.TrueLongitude, chart.HouseCusps[cusp])
	value := decimal.NewFromFloat((180 - separation) / 3)
	return types.NewComponent(types.ComponentDig,
		types.SubTerm{Name: TermDig, Value: value},
	), nil
}
