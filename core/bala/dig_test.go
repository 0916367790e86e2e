package bala

import (
	"testing"

	"shadbala/core/types"
	"shadbala/internal/errors"
)

func TestDig(t *testing.T) {
	states := sevenStates()
	chart := chartFixture() // cusps at 10, 40, ... 340

	tests := []struct {
		name   string
		planet types.Planet
		lon    float64
		want   string
	}{
		{"jupiter on the first cusp", types.Jupiter, 10, "60"},
		{"jupiter opposite the first cusp", types.Jupiter, 190, "0"},
		{"jupiter square to the first cusp", types.Jupiter, 100, "30"},
		{"mercury between cusps", types.Mercury, 55, "45"},
		{"sun on the tenth cusp", types.Sun, 280, "60"},
		{"sun opposite the tenth cusp", types.Sun, 100, "0"},
		{"moon on the fourth cusp", types.Moon, 100, "60"},
		{"venus opposite the fourth cusp", types.Venus, 280, "0"},
		{"saturn on the seventh cusp", types.Saturn, 190, "60"},
		{"mars measured across the zero point", types.Mars, 10, "30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			states[tt.planet] = state(tt.planet, tt.lon)
			component, err := Dig(tt.planet, states, chart)
			if err != nil {
				t.Fatalf("Dig() error = %v", err)
			}
			requireDecimal(t, "Dig", component.Value, tt.want)
			if len(component.Breakdown) != 1 || component.Breakdown[0].Name != TermDig {
				t.Errorf("breakdown = %+v, want a single %s term", component.Breakdown, TermDig)
			}
		})
	}
}

func TestDigStaysInRange(t *testing.T) {
	states := sevenStates()
	chart := chartFixture()

	for _, p := range types.TruePlanets() {
		for lon := 0.0; lon < 360; lon += 17 {
			states[p] = state(p, lon)
			component, err := Dig(p, states, chart)
			if err != nil {
				t.Fatalf("Dig(%s at %v) error = %v", p, lon, err)
			}
			if component.Value.IsNegative() || component.Value.GreaterThan(sixty) {
				t.Errorf("Dig(%s at %v) = %s, outside [0, 60]", p, lon, component.Value)
			}
		}
	}
}

func TestDigRequiresHouses(t *testing.T) {
	chart := chartFixture()
	chart.HasHouses = false
	_, err := Dig(types.Sun, sevenStates(), chart)
	if !errors.IsType(err, errors.TypeMissingChartData) {
		t.Errorf("no houses: got %v, want %s", err, errors.TypeMissingChartData)
	}
}

func TestDigRejectsNodes(t *testing.T) {
	_, err := Dig(types.Ketu, sevenStates(), chartFixture())
	if !errors.IsType(err, errors.TypeUnsupportedPlanet) {
		t.Errorf("node dig: got %v, want %s", err, errors.TypeUnsupportedPlanet)
	}
}
