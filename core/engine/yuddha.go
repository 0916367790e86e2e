package engine

import (
	"sort"

	"shadbala/core/angle"
	"shadbala/core/types"
	"shadbala/internal/errors"
)

// Planetary war applies to the five star planets only; the luminaries and
// the nodes never fight.
var warCapable = map[types.Planet]bool{
	types.Mars: true, types.Mercury: true, types.Jupiter: true,
	types.Venus: true, types.Saturn: true,
}

// WinnerStrategy decides the victor of a planetary war
type WinnerStrategy interface {
	// Name identifies the strategy
	Name() string

	// Winner returns the winning planet of a warring pair
	Winner(a, b types.PlanetState) types.Planet
}

// LatitudeStrategy awards the war to the planet with the more northern
// ecliptic latitude. An exact tie goes to the earlier planet in precedence
// order.
type LatitudeStrategy struct{}

func (LatitudeStrategy) Name() string { return "latitude" }

func (LatitudeStrategy) Winner(a, b types.PlanetState) types.Planet {
	if a.Latitude > b.Latitude {
		return a.ID
	}
	if b.Latitude > a.Latitude {
		return b.ID
	}
	return tieBreak(a.ID, b.ID)
}

// DeclinationStrategy awards the war to the planet with the more northern
// declination
type DeclinationStrategy struct{}

func (DeclinationStrategy) Name() string { return "declination" }

func (DeclinationStrategy) Winner(a, b types.PlanetState) types.Planet {
	if a.Declination > b.Declination {
		return a.ID
	}
	if b.Declination > a.Declination {
		return b.ID
	}
	return tieBreak(a.ID, b.ID)
}

func tieBreak(a, b types.Planet) types.Planet {
	if a.Precedence() <= b.Precedence() {
		return a
	}
	return b
}

var strategies = map[string]WinnerStrategy{
	"latitude":    LatitudeStrategy{},
	"declination": DeclinationStrategy{},
}

// StrategyByName looks up a war-winner strategy
func StrategyByName(name string) (WinnerStrategy, error) {
	if s, ok := strategies[name]; ok {
		return s, nil
	}
	return nil, errors.Newf(errors.TypeConfig, "unknown yuddha strategy %q", name)
}

// War is one warring pair, ordered by precedence
type War struct {
	First  types.Planet `json:"first"`
	Second types.Planet `json:"second"`
}

// DetectWars returns the warring pairs: war-capable planets whose true
// longitudes stand within the orb of one another, in degrees.
func DetectWars(states map[types.Planet]types.PlanetState, orbDegrees float64) []War {
	var fighters []types.PlanetState
	for p, st := range states {
		if warCapable[p] {
			fighters = append(fighters, st)
		}
	}
	sort.Slice(fighters, func(i, j int) bool {
		return fighters[i].ID.Precedence() < fighters[j].ID.Precedence()
	})

	var wars []War
	for i := 0; i < len(fighters); i++ {
		for j := i + 1; j < len(fighters); j++ {
			sep := angle.Closest(fighters[i].TrueLongitude, fighters[j].TrueLongitude)
			if sep <= orbDegrees {
				wars = append(wars, War{First: fighters[i].ID, Second: fighters[j].ID})
			}
		}
	}
	return wars
}
