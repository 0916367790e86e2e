package bala

import (
	"testing"

	"shadbala/core/types"
	"shadbala/internal/errors"
)

func TestNaisargika(t *testing.T) {
	wants := map[types.Planet]string{
		types.Sun:     "60",
		types.Moon:    "51.43",
		types.Venus:   "42.86",
		types.Jupiter: "34.29",
		types.Mercury: "25.71",
		types.Mars:    "17.14",
		types.Saturn:  "8.57",
	}
	for planet, want := range wants {
		component, err := Naisargika(planet)
		if err != nil {
			t.Fatalf("Naisargika(%s) error = %v", planet, err)
		}
		requireDecimal(t, "Naisargika("+string(planet)+")", component.Value, want)
	}
}

func TestNaisargikaOrderingFollowsLuminosity(t *testing.T) {
	order := []types.Planet{
		types.Sun, types.Moon, types.Venus, types.Jupiter,
		types.Mercury, types.Mars, types.Saturn,
	}
	prev, _ := Naisargika(order[0])
	for _, p := range order[1:] {
		cur, err := Naisargika(p)
		if err != nil {
			t.Fatalf("Naisargika(%s) error = %v", p, err)
		}
		if !cur.Value.LessThan(prev.Value) {
			t.Errorf("Naisargika(%s) = %s, want below %s", p, cur.Value, prev.Value)
		}
		prev = cur
	}
}

func TestNaisargikaRejectsNodes(t *testing.T) {
	if _, err := Naisargika(types.Rahu); !errors.IsType(err, errors.TypeUnsupportedPlanet) {
		t.Errorf("node naisargika: got %v, want %s", err, errors.TypeUnsupportedPlanet)
	}
}
