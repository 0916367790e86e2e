// Package bala implements the six Shadbala strength components. Each
// calculator produces a BalaComponent whose value is the exact decimal sum
// of its breakdown; angles stay float64 until the moment a Virupa award is
// fixed.
package bala

import (
	"github.com/shopspring/decimal"

	"shadbala/core/angle"
	"shadbala/core/dignity"
	"shadbala/core/tables"
	"shadbala/core/types"
	"shadbala/internal/errors"
)

// Sub-term names of the Sthana breakdown
const (
	TermUchcha     = "Uchcha"
	TermSaptavarga = "Saptavarga"
	TermOjhaYugma  = "OjhaYugma"
	TermKendradi   = "Kendradi"
	TermDrekkana   = "Drekkana"
)

// Sthana computes positional strength: the sum of Uchcha, Saptavarga,
// Ojha-Yugma, Kendradi and Drekkana Bala.
func Sthana(planet types.Planet, states map[types.Planet]types.PlanetState,
	chart *types.ChartContext, vargas types.VargaIndex, res *dignity.Resolver) (types.BalaComponent, error) {

	state, err := requireState(planet, states)
	if err != nil {
		return types.BalaComponent{}, err
	}

	uchcha, err := UchchaBala(state)
	if err != nil {
		return types.BalaComponent{}, err
	}
	saptavarga, err := SaptavargaBala(planet, vargas, res)
	if err != nil {
		return types.BalaComponent{}, err
	}
	ojhaYugma, err := OjhaYugmaBala(state, vargas)
	if err != nil {
		return types.BalaComponent{}, err
	}
	kendradi, err := KendradiBala(state, chart)
	if err != nil {
		return types.BalaComponent{}, err
	}

	return types.NewComponent(types.ComponentSthana,
		types.SubTerm{Name: TermUchcha, Value: uchcha},
		types.SubTerm{Name: TermSaptavarga, Value: saptavarga},
		types.SubTerm{Name: TermOjhaYugma, Value: ojhaYugma},
		types.SubTerm{Name: TermKendradi, Value: kendradi},
		types.SubTerm{Name: TermDrekkana, Value: DrekkanaBala(state)},
	), nil
}

// UchchaBala measures exaltation strength: one Virupa per three degrees of
// separation from the debilitation point, 60 at the exaltation point. A
// retrograde planet standing in its debilitation sign has its fall
// cancelled and takes the full 60.
func UchchaBala(state types.PlanetState) (decimal.Decimal, error) {
	if state.ID.IsNode() {
		return decimal.Zero, errors.UnsupportedPlanet("Uchcha Bala", state.ID)
	}
	deb, ok := tables.Debilitation(state.ID)
	if !ok {
		return decimal.Zero, errors.UnsupportedPlanet("Uchcha Bala", state.ID)
	}
	if state.Sign() == deb.Sign && state.IsRetrograde() {
		return sixty, nil
	}
	dist := angle.Closest(state.TrueLongitude, deb.Longitude())
	return decimal.NewFromFloat(dist / 3), nil
}

// SaptavargaBala sums the dignity awards of the planet's placement in the
// seven divisional charts. Exaltation and debilitation carry no award of
// their own in the vargas; they fall back to the combined friendship with
// the varga sign's lord.
func SaptavargaBala(planet types.Planet, vargas types.VargaIndex, res *dignity.Resolver) (decimal.Decimal, error) {
	if planet.IsNode() {
		return decimal.Zero, errors.UnsupportedPlanet("Saptavarga Bala", planet)
	}
	total := decimal.Zero
	for _, varga := range types.SaptavargaSet() {
		placement, ok := vargas.Lookup(planet, varga)
		if !ok {
			return decimal.Zero, errors.MissingChartData(string(varga) + " placement of " + string(planet))
		}
		status, err := res.Resolve(planet, placement.Sign, placement.Degree)
		if err != nil {
			return decimal.Zero, err
		}
		if status == types.Exalted || status == types.Debilitated {
			status, err = friendshipStatus(res, planet, placement.Sign)
			if err != nil {
				return decimal.Zero, err
			}
		}
		total = total.Add(tables.DignityVirupas(status))
	}
	return total, nil
}

func friendshipStatus(res *dignity.Resolver, planet types.Planet, sign types.Sign) (types.DignityStatus, error) {
	if tables.OwnsSign(planet, sign) {
		return types.OwnSign, nil
	}
	level, err := res.CombinedFriendship(planet, tables.SignRuler(sign))
	if err != nil {
		return "", err
	}
	switch level {
	case types.LevelGreatFriend:
		return types.GreatFriend, nil
	case types.LevelFriend:
		return types.Friend, nil
	case types.LevelEnemy:
		return types.Enemy, nil
	case types.LevelGreatEnemy:
		return types.GreatEnemy, nil
	}
	return types.Neutral, nil
}

// Common Virupa awards
var (
	sixty   = decimal.NewFromInt(60)
	thirty  = decimal.NewFromInt(30)
	fifteen = decimal.NewFromInt(15)

)

// OjhaYugmaBala awards 15 Virupas for standing in a sign of the favoured
// parity in both the rashi and the navamsa; one chart alone earns nothing.
// The Sun, Mars and Jupiter favour odd signs; the Moon, Venus and Saturn
// favour even signs; Mercury is at home in both.
func OjhaYugmaBala(state types.PlanetState, vargas types.VargaIndex) (decimal.Decimal, error) {
	if state.ID.IsNode() {
		return decimal.Zero, errors.UnsupportedPlanet("Ojha-Yugma Bala", state.ID)
	}
	navamsa, ok := vargas.Lookup(state.ID, types.D9)
	if !ok {
		return decimal.Zero, errors.MissingChartData("D9 placement of " + string(state.ID))
	}
	if parityFavours(state.ID, state.Sign()) && parityFavours(state.ID, navamsa.Sign) {
		return fifteen, nil
	}
	return decimal.Zero, nil
}

func parityFavours(planet types.Planet, sign types.Sign) bool {
	switch planet {
	case types.Mercury:
		return true
	case types.Sun, types.Mars, types.Jupiter:
		return sign.IsOdd()
	case types.Moon, types.Venus, types.Saturn:
		return !sign.IsOdd()
	}
	return false
}

// KendradiBala awards 60, 30 or 15 Virupas for occupying a kendra, panapara
// or apoklima house, counted whole-sign from the ascendant.
func KendradiBala(state types.PlanetState, chart *types.ChartContext) (decimal.Decimal, error) {
	if state.ID.IsNode() {
		return decimal.Zero, errors.UnsupportedPlanet("Kendradi Bala", state.ID)
	}
	if !chart.HasHouses {
		return decimal.Zero, errors.MissingChartData("ascendant")
	}
	ascSign := types.SignAt(chart.AscendantLongitude)
	house := (int(state.Sign())-int(ascSign)+12)%12 + 1
	switch house % 3 {
	case 1: // 1, 4, 7, 10
		return sixty, nil
	case 2: // 2, 5, 8, 11
		return thirty, nil
	}
	return fifteen, nil
}

// DrekkanaBala awards 15 Virupas when the planet's gender matches its
// decanate: male planets in the first, female in the second, neuter in the
// third. A degree exactly on a decanate boundary counts into the later one.
func DrekkanaBala(state types.PlanetState) decimal.Decimal {
	if state.ID.IsNode() {
		return decimal.Zero
	}
	decanate := angle.Division(state.SignDegree(), 10)
	if decanate == int(state.ID.Gender()) {
		return fifteen
	}
	return decimal.Zero
}

// requireState fetches the planet's ephemeris state, rejecting nodes and
// unknown planets
func requireState(planet types.Planet, states map[types.Planet]types.PlanetState) (types.PlanetState, error) {
	if !planet.Valid() {
		return types.PlanetState{}, errors.Input("unknown planet %q", planet)
	}
	if planet.IsNode() {
		return types.PlanetState{}, errors.UnsupportedPlanet("Shadbala", planet)
	}
	state, ok := states[planet]
	if !ok {
		return types.PlanetState{}, errors.MissingChartData("ephemeris state of " + string(planet))
	}
	return state, nil
}
