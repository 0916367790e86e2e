package bala

import (
	"testing"

	"shadbala/core/tables"
	"shadbala/core/types"
	"shadbala/internal/errors"
)

func TestStarCheshta(t *testing.T) {
	tests := []struct {
		name    string
		mean    float64
		trueLon float64
		speed   float64
		want    float64
	}{
		// retrograde at half mean speed, true opposite the mean: maximum
		{"slow retrograde far from mean", 0, 180, -0.2621, 60},
		// direct at exactly mean speed, true on the mean: speed term only
		{"mean motion on the mean position", 100, 100, 0.5242, 36},
		// direct at twice mean speed: speed factor floors at a half
		{"fast direct motion", 100, 100, 1.0484, 18},
		// retrograde faster than half over mean: factor clamps to zero
		{"fast retrograde motion", 100, 100, -0.7863, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := types.PlanetState{
				ID:            types.Mars,
				TrueLongitude: tt.trueLon,
				MeanLongitude: tt.mean,
				Speed:         tt.speed,
			}
			approx(t, "starCheshta", starCheshta(st), tt.want)
		})
	}
}

func TestCheshtaLuminaries(t *testing.T) {
	states := sevenStates()

	// the Sun takes half its Ayana Bala
	sun := states[types.Sun]
	sun.Declination = tables.DefaultObliquity
	states[types.Sun] = sun
	component, err := Cheshta(types.Sun, states, tables.DefaultObliquity)
	if err != nil {
		t.Fatalf("Cheshta(Sun) error = %v", err)
	}
	approx(t, "Cheshta(Sun)", component.Value, 30)

	// the Moon takes half its Paksha Bala; Sun 10, Moon 190 is a full moon
	moon := states[types.Moon]
	moon.TrueLongitude = 190
	states[types.Moon] = moon
	component, err = Cheshta(types.Moon, states, tables.DefaultObliquity)
	if err != nil {
		t.Fatalf("Cheshta(Moon) error = %v", err)
	}
	approx(t, "Cheshta(Moon)", component.Value, 30)
}

func TestCheshtaRejectsNodes(t *testing.T) {
	_, err := Cheshta(types.Ketu, sevenStates(), tables.DefaultObliquity)
	if !errors.IsType(err, errors.TypeUnsupportedPlanet) {
		t.Errorf("node cheshta: got %v, want %s", err, errors.TypeUnsupportedPlanet)
	}
}
