// Package types defines the shared data model for Shadbala calculation.
package types

// Planet identifies a graha
type Planet string

const (
	Sun     Planet = "Sun"
	Moon    Planet = "Moon"
	Mars    Planet = "Mars"
	Mercury Planet = "Mercury"
	Jupiter Planet = "Jupiter"
	Venus   Planet = "Venus"
	Saturn  Planet = "Saturn"
	Rahu    Planet = "Rahu"
	Ketu    Planet = "Ketu"
)

// TruePlanets lists the seven planets Shadbala is computed for, in the
// fixed precedence order (weekday-lord order) used for rank tie-breaks
func TruePlanets() []Planet {
	return []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn}
}

// Valid reports whether p names a known graha
func (p Planet) Valid() bool {
	switch p {
	case Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu:
		return true
	}
	return false
}

// IsNode reports whether p is a lunar node (Rahu or Ketu)
func (p Planet) IsNode() bool {
	return p == Rahu || p == Ketu
}

// IsBenefic reports the planet's natural benefic/malefic classification.
// Moon, Mercury, Jupiter and Venus are natural benefics; everything else,
// the nodes included, is malefic.
func (p Planet) IsBenefic() bool {
	switch p {
	case Moon, Mercury, Jupiter, Venus:
		return true
	}
	return false
}

// Gender is a planet's natural gender classification, used by Drekkana Bala
type Gender int

const (
	Male Gender = iota
	Female
	NeuterGender
)

// Gender returns the planet's natural gender
func (p Planet) Gender() Gender {
	switch p {
	case Sun, Mars, Jupiter:
		return Male
	case Moon, Venus:
		return Female
	default:
		return NeuterGender
	}
}

// Precedence returns the planet's position in the fixed precedence order,
// lower is earlier. Unknown planets sort last.
func (p Planet) Precedence() int {
	for i, q := range TruePlanets() {
		if q == p {
			return i
		}
	}
	return len(TruePlanets())
}
