// Package aspects implements the two Vedic aspect systems: Graha Drishti,
// the graded planetary aspect cast along whole-sign house distances, and
// Rashi Drishti, the fixed sign-to-sign aspect determined by modality.
package aspects

import (
	"sort"

	"github.com/shopspring/decimal"

	"shadbala/core/angle"
	"shadbala/core/tables"
	"shadbala/core/types"
)

// Form distinguishes the two aspect systems
type Form string

const (
	FormGraha Form = "Graha"
	FormRashi Form = "Rashi"
)

// Record is one aspect cast from one planet onto another. Virupas is the
// unsigned magnitude; Signed carries the caster's nature, positive for
// natural benefics, negative for malefics.
type Record struct {
	From          types.Planet    `json:"from"`
	To            types.Planet    `json:"to"`
	Form          Form            `json:"form"`
	HouseDistance int             `json:"house_distance"`
	Virupas       decimal.Decimal `json:"virupas"`
	Signed        decimal.Decimal `json:"signed"`
}

// GrahaDrishtiVirupas returns the aspect magnitude a planet casts at a
// whole-sign house distance. The 7th is full for every planet; Mars sees the
// 4th and 8th fully, Jupiter the 5th and 9th, Saturn the 3rd and 10th.
func GrahaDrishtiVirupas(caster types.Planet, dist int) decimal.Decimal {
	switch dist {
	case 7:
		return tables.FullAspectVirupas
	case 4, 8:
		if caster == types.Mars {
			return tables.FullAspectVirupas
		}
		return tables.ThreeQuarterAspectVirupas
	case 5, 9:
		if caster == types.Jupiter {
			return tables.FullAspectVirupas
		}
		return tables.HalfAspectVirupas
	case 3, 10:
		if caster == types.Saturn {
			return tables.FullAspectVirupas
		}
		return tables.QuarterAspectVirupas
	}
	return decimal.Zero
}

// GrahaDrishti returns the aspect magnitude cast from one longitude onto
// another. A longitude exactly on a sign boundary counts into the later sign.
func GrahaDrishti(caster types.Planet, casterLon, targetLon float64) decimal.Decimal {
	return GrahaDrishtiVirupas(caster, angle.HouseDistance(casterLon, targetLon))
}

// RashiDrishti reports whether one sign aspects another. Movable signs
// aspect the fixed signs except the one adjacent; fixed signs aspect the
// movable signs except the one adjacent; dual signs aspect the other dual
// signs.
func RashiDrishti(from, to types.Sign) bool {
	switch from.Modality() {
	case types.Movable:
		return to.Modality() == types.Fixed && to != next(from)
	case types.Fixed:
		return to.Modality() == types.Movable && to != prev(from)
	default:
		return to.Modality() == types.Dual && to != from
	}
}

func next(s types.Sign) types.Sign {
	return types.Sign((int(s) + 1) % 12)
}

func prev(s types.Sign) types.Sign {
	return types.Sign((int(s) + 11) % 12)
}

// sign applies the caster's nature to an aspect magnitude
func sign(caster types.Planet, v decimal.Decimal) decimal.Decimal {
	if caster.IsBenefic() {
		return v
	}
	return v.Neg()
}

// AllAspects lists every nonzero aspect among the seven true planets in the
// chart, Graha and Rashi both, ordered by caster precedence, then target
// precedence, then form. Rashi records carry the unweighted fixed magnitude.
func AllAspects(states map[types.Planet]types.PlanetState) []Record {
	var records []Record
	for _, from := range types.TruePlanets() {
		caster, ok := states[from]
		if !ok {
			continue
		}
		for _, to := range types.TruePlanets() {
			if from == to {
				continue
			}
			target, ok := states[to]
			if !ok {
				continue
			}
			dist := angle.HouseDistance(caster.TrueLongitude, target.TrueLongitude)
			if v := GrahaDrishtiVirupas(from, dist); !v.IsZero() {
				records = append(records, Record{
					From:          from,
					To:            to,
					Form:          FormGraha,
					HouseDistance: dist,
					Virupas:       v,
					Signed:        sign(from, v),
				})
			}
			if RashiDrishti(caster.Sign(), target.Sign()) {
				records = append(records, Record{
					From:          from,
					To:            to,
					Form:          FormRashi,
					HouseDistance: dist,
					Virupas:       tables.RashiDrishtiVirupas,
					Signed:        sign(from, tables.RashiDrishtiVirupas),
				})
			}
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.From != b.From {
			return a.From.Precedence() < b.From.Precedence()
		}
		if a.To != b.To {
			return a.To.Precedence() < b.To.Precedence()
		}
		return a.Form == FormGraha && b.Form == FormRashi
	})
	return records
}
