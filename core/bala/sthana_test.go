package bala

import (
	"testing"

	"shadbala/core/types"
	"shadbala/internal/errors"
)

func TestUchchaBala(t *testing.T) {
	tests := []struct {
		name  string
		state types.PlanetState
		want  float64
	}{
		{"sun at exaltation point", state(types.Sun, 10), 60},
		{"sun at debilitation point", state(types.Sun, 190), 0},
		{"sun square to debilitation", state(types.Sun, 100), 30},
		{"moon at exaltation point", state(types.Moon, 33), 60},
		{"saturn at exaltation point", state(types.Saturn, 200), 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UchchaBala(tt.state)
			if err != nil {
				t.Fatalf("UchchaBala() error = %v", err)
			}
			approx(t, "UchchaBala", got, tt.want)
		})
	}
}

func TestUchchaBalaCancelledFall(t *testing.T) {
	// retrograde in the debilitation sign cancels the fall entirely
	st := state(types.Sun, 190)
	st.Speed = -0.5
	got, err := UchchaBala(st)
	if err != nil {
		t.Fatalf("UchchaBala() error = %v", err)
	}
	requireDecimal(t, "UchchaBala retrograde in fall", got, "60")

	// direct motion in the same spot keeps the fall
	st.Speed = 0.5
	got, err = UchchaBala(st)
	if err != nil {
		t.Fatalf("UchchaBala() error = %v", err)
	}
	requireDecimal(t, "UchchaBala direct in fall", got, "0")
}

func TestSaptavargaBala(t *testing.T) {
	res := resolverFixture()

	tests := []struct {
		name   string
		planet types.Planet
		sign   types.Sign
		degree float64
		want   string
	}{
		// Leo 10 is the Sun's Moolatrikona in every varga: 7 x 45
		{"moolatrikona everywhere", types.Sun, types.Leo, 10, "315"},
		// Cancer's lord is the Moon, the Sun's natural friend standing
		// 4th from it: great friend in every varga, 7 x 22.5
		{"great friend everywhere", types.Sun, types.Cancer, 10, "157.5"},
		// Aries 10 exalts the Sun, which carries no varga award; the
		// fall-back is the combined friendship with Mars (natural friend,
		// temporal enemy): neutral, 7 x 7.5
		{"exaltation falls back to friendship", types.Sun, types.Aries, 10, "52.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SaptavargaBala(tt.planet, vargasAll(tt.planet, tt.sign, tt.degree), res)
			if err != nil {
				t.Fatalf("SaptavargaBala() error = %v", err)
			}
			requireDecimal(t, "SaptavargaBala", got, tt.want)
		})
	}
}

func TestSaptavargaBalaMissingPlacement(t *testing.T) {
	res := resolverFixture()
	vargas := types.BuildVargaIndex([]types.VargaPlacement{
		{Planet: types.Sun, Varga: types.D1, Sign: types.Leo, Degree: 10},
	})
	_, err := SaptavargaBala(types.Sun, vargas, res)
	if !errors.IsType(err, errors.TypeMissingChartData) {
		t.Errorf("missing varga placement: got %v, want %s", err, errors.TypeMissingChartData)
	}
}

func TestOjhaYugmaBala(t *testing.T) {
	tests := []struct {
		name     string
		planet   types.Planet
		rashiLon float64
		navamsa  types.Sign
		want     string
	}{
		{"sun odd in both", types.Sun, 10, types.Leo, "15"},
		{"sun odd in rashi only", types.Sun, 10, types.Taurus, "0"},
		{"sun odd in navamsa only", types.Sun, 40, types.Leo, "0"},
		{"sun even in both", types.Sun, 40, types.Taurus, "0"},
		{"moon even in both", types.Moon, 40, types.Cancer, "15"},
		{"moon odd in navamsa only", types.Moon, 40, types.Leo, "0"},
		{"mercury scores regardless of parity", types.Mercury, 40, types.Leo, "15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vargas := types.BuildVargaIndex([]types.VargaPlacement{
				{Planet: tt.planet, Varga: types.D9, Sign: tt.navamsa, Degree: 10},
			})
			got, err := OjhaYugmaBala(state(tt.planet, tt.rashiLon), vargas)
			if err != nil {
				t.Fatalf("OjhaYugmaBala() error = %v", err)
			}
			requireDecimal(t, "OjhaYugmaBala", got, tt.want)
		})
	}
}

func TestKendradiBala(t *testing.T) {
	chart := chartFixture() // Aries ascendant

	tests := []struct {
		name string
		lon  float64
		want string
	}{
		{"first house", 15, "60"},
		{"fourth house", 100, "60"},
		{"seventh house", 190, "60"},
		{"tenth house", 280, "60"},
		{"second house", 40, "30"},
		{"eleventh house", 310, "30"},
		{"third house", 70, "15"},
		{"twelfth house", 340, "15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := KendradiBala(state(types.Jupiter, tt.lon), chart)
			if err != nil {
				t.Fatalf("KendradiBala() error = %v", err)
			}
			requireDecimal(t, "KendradiBala", got, tt.want)
		})
	}
}

func TestKendradiBalaWithoutHouses(t *testing.T) {
	chart := chartFixture()
	chart.HasHouses = false
	_, err := KendradiBala(state(types.Sun, 10), chart)
	if !errors.IsType(err, errors.TypeMissingChartData) {
		t.Errorf("no houses: got %v, want %s", err, errors.TypeMissingChartData)
	}
}

func TestDrekkanaBala(t *testing.T) {
	tests := []struct {
		name string
		p    types.Planet
		lon  float64
		want string
	}{
		{"male planet in first decanate", types.Sun, 5, "15"},
		{"male planet in second decanate", types.Sun, 15, "0"},
		{"male planet on decanate boundary counts later", types.Sun, 10, "0"},
		{"female planet in second decanate", types.Moon, 45, "15"},
		{"female planet in first decanate", types.Venus, 185, "0"},
		{"neuter planet in third decanate", types.Mercury, 85, "15"},
		{"neuter planet in third decanate saturn", types.Saturn, 295, "15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireDecimal(t, "DrekkanaBala", DrekkanaBala(state(tt.p, tt.lon)), tt.want)
		})
	}
}

func TestSthanaSumsItsTerms(t *testing.T) {
	states := sevenStates()
	chart := chartFixture()
	res := resolverFixture()
	vargas := vargasAll(types.Sun, types.Leo, 10)

	component, err := Sthana(types.Sun, states, chart, vargas, res)
	if err != nil {
		t.Fatalf("Sthana() error = %v", err)
	}
	if component.Name != types.ComponentSthana {
		t.Errorf("component name = %s, want %s", component.Name, types.ComponentSthana)
	}
	if len(component.Breakdown) != 5 {
		t.Fatalf("breakdown has %d terms, want 5", len(component.Breakdown))
	}
	sum := component.Breakdown[0].Value
	for _, term := range component.Breakdown[1:] {
		sum = sum.Add(term.Value)
	}
	if !component.Value.Equal(sum) {
		t.Errorf("component value %s differs from breakdown sum %s", component.Value, sum)
	}
}

func TestSthanaRejectsNodes(t *testing.T) {
	_, err := Sthana(types.Rahu, sevenStates(), chartFixture(), vargasAll(types.Rahu, types.Leo, 10), resolverFixture())
	if !errors.IsType(err, errors.TypeUnsupportedPlanet) {
		t.Errorf("node sthana: got %v, want %s", err, errors.TypeUnsupportedPlanet)
	}
}
