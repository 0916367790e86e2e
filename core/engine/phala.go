package engine

import (
	"math"

	"github.com/shopspring/decimal"

	"shadbala/core/bala"
	"shadbala/core/types"
)

// ishtaKashta fills in the auspicious and inauspicious potentials. Both are
// geometric means over a 0-60 scale: Ishta of the exaltation and motional
// strengths, Kashta of their complements. The luminaries' motional term is
// restored to its full source value, since their Cheshta Bala carries only
// half of it.
func ishtaKashta(result *types.ShadbalaResult) {
	uchcha := clamp60(subTerm(result.Sthana, bala.TermUchcha))
	cheshta := result.Cheshta.Value
	if result.Planet == types.Sun || result.Planet == types.Moon {
		cheshta = cheshta.Mul(decimal.NewFromInt(2))
	}
	cheshta = clamp60(cheshta)

	u, _ := uchcha.Float64()
	c, _ := cheshta.Float64()
	result.IshtaPhala = decimal.NewFromFloat(math.Sqrt(u * c))
	result.KashtaPhala = decimal.NewFromFloat(math.Sqrt((60 - u) * (60 - c)))
}

func subTerm(component types.BalaComponent, name string) decimal.Decimal {
	for _, term := range component.Breakdown {
		if term.Name == name {
			return term.Value
		}
	}
	return decimal.Zero
}

var sixtyD = decimal.NewFromInt(60)

func clamp60(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	if v.GreaterThan(sixtyD) {
		return sixtyD
	}
	return v
}

// PhalaGrade buckets a phala value for presentation
func PhalaGrade(v decimal.Decimal) string {
	f, _ := v.Float64()
	switch {
	case f >= 45:
		return "excellent"
	case f >= 30:
		return "good"
	case f >= 15:
		return "middling"
	}
	return "poor"
}
