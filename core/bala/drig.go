package bala

import (
	"github.com/shopspring/decimal"

	"shadbala/core/aspects"
	"shadbala/core/tables"
	"shadbala/core/types"
	"shadbala/internal/errors"
)

var (
	four         = decimal.NewFromInt(4)
	threeHundred = decimal.NewFromInt(300)
)

// Drig computes aspectual strength: the net of all aspects the planet
// receives, benefic casts counting positive and malefic negative, divided
// by four. Graha Drishti contributes at its full graded magnitude; each
// Rashi Drishti contributes its fixed magnitude scaled by the caster's own
// strength, supplied as the caster's non-aspectual subtotal in Virupas.
// The net may be negative and is left unclamped.
func Drig(planet types.Planet, states map[types.Planet]types.PlanetState,
	subtotals map[types.Planet]decimal.Decimal) (types.BalaComponent, error) {

	target, err := requireState(planet, states)
	if err != nil {
		return types.BalaComponent{}, err
	}

	var terms []types.SubTerm
	for _, from := range types.TruePlanets() {
		if from == planet {
			continue
		}
		caster, ok := states[from]
		if !ok {
			return types.BalaComponent{}, errors.MissingChartData("ephemeris state of " + string(from))
		}

		contribution := aspects.GrahaDrishti(from, caster.TrueLongitude, target.TrueLongitude)
		if aspects.RashiDrishti(caster.Sign(), target.Sign()) {
			contribution = contribution.Add(tables.RashiDrishtiVirupas.Mul(casterWeight(from, subtotals)))
		}
		if contribution.IsZero() {
			continue
		}
		if !from.IsBenefic() {
			contribution = contribution.Neg()
		}
		terms = append(terms, types.SubTerm{Name: string(from), Value: contribution.Div(four)})
	}
	return types.NewComponent(types.ComponentDrig, terms...), nil
}

// casterWeight scales a Rashi Drishti by the caster's own strength, the
// non-aspectual subtotal over 300 Virupas, clamped to [0, 1]. A caster with
// no known subtotal casts at full weight.
func casterWeight(caster types.Planet, subtotals map[types.Planet]decimal.Decimal) decimal.Decimal {
	subtotal, ok := subtotals[caster]
	if !ok {
		return decimal.NewFromInt(1)
	}
	w := subtotal.Div(threeHundred)
	if w.IsNegative() {
		return decimal.Zero
	}
	if w.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}
	return w
}

// ReceivedAspects lists the aspects a planet receives, for breakdown
// reporting alongside the Drig component.
func ReceivedAspects(planet types.Planet, states map[types.Planet]types.PlanetState) []aspects.Record {
	var received []aspects.Record
	for _, r := range aspects.AllAspects(states) {
		if r.To == planet {
			received = append(received, r)
		}
	}
	return received
}
