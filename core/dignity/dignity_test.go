package dignity

import (
	"testing"

	"shadbala/core/tables"
	"shadbala/core/types"
	"shadbala/internal/errors"
)

func TestResolveDignityFixedStates(t *testing.T) {
	tests := []struct {
		name   string
		planet types.Planet
		sign   types.Sign
		degree float64
		want   types.DignityStatus
	}{
		{"sun in moolatrikona span", types.Sun, types.Leo, 10, types.Moolatrikona},
		{"sun past moolatrikona span is own sign", types.Sun, types.Leo, 25, types.OwnSign},
		{"sun exalted", types.Sun, types.Aries, 10, types.Exalted},
		{"sun debilitated", types.Sun, types.Libra, 10, types.Debilitated},
		{"moon below moolatrikona span is exalted", types.Moon, types.Taurus, 2, types.Exalted},
		{"moon in moolatrikona span", types.Moon, types.Taurus, 10, types.Moolatrikona},
		{"mercury in moolatrikona span", types.Mercury, types.Virgo, 17, types.Moolatrikona},
		{"own sign outranks exaltation", types.Mercury, types.Virgo, 10, types.OwnSign},
		{"saturn in moolatrikona span", types.Saturn, types.Aquarius, 5, types.Moolatrikona},
		{"saturn past moolatrikona span is own sign", types.Saturn, types.Aquarius, 25, types.OwnSign},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveDignity(tt.planet, tt.sign, tt.degree)
			if err != nil {
				t.Fatalf("ResolveDignity() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveDignity(%s, %s, %v) = %s, want %s",
					tt.planet, tt.sign, tt.degree, got, tt.want)
			}
		})
	}
}

func TestResolveDignityNaturalFallback(t *testing.T) {
	tests := []struct {
		name   string
		planet types.Planet
		sign   types.Sign
		want   types.DignityStatus
	}{
		{"sun in sign of natural friend", types.Sun, types.Sagittarius, types.Friend},
		{"sun in sign of natural enemy", types.Sun, types.Taurus, types.Enemy},
		{"sun in sign of natural neutral", types.Sun, types.Gemini, types.Neutral},
		{"moon never lands on an enemy", types.Moon, types.Capricorn, types.Neutral},
		{"mercury in sign of natural enemy", types.Mercury, types.Cancer, types.Enemy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveDignity(tt.planet, tt.sign, 15)
			if err != nil {
				t.Fatalf("ResolveDignity() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveDignity(%s, %s) = %s, want %s", tt.planet, tt.sign, got, tt.want)
			}
		})
	}
}

func TestResolveDignityRejectsInvalidInput(t *testing.T) {
	if _, err := ResolveDignity(types.Rahu, types.Aries, 5); !errors.IsType(err, errors.TypeUnsupportedPlanet) {
		t.Errorf("node dignity: got %v, want %s", err, errors.TypeUnsupportedPlanet)
	}
	if _, err := ResolveDignity(types.Sun, types.Sign(13), 5); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("bad sign: got %v, want %s", err, errors.TypeInput)
	}
	if _, err := ResolveDignity(types.Sun, types.Aries, 30); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("degree 30: got %v, want %s", err, errors.TypeInput)
	}
	if _, err := ResolveDignity(types.Planet("Pluto"), types.Aries, 5); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("unknown planet: got %v, want %s", err, errors.TypeInput)
	}
}

// fixtureResolver places the planets in known signs:
// Sun Aries, Moon Gemini, Mars Leo, Mercury Cancer, Jupiter Scorpio,
// Venus Libra, Saturn Capricorn.
func fixtureResolver() *Resolver {
	lons := map[types.Planet]float64{
		types.Sun:     10,  // Aries
		types.Moon:    65,  // Gemini
		types.Mars:    130, // Leo
		types.Mercury: 100, // Cancer
		types.Jupiter: 220, // Scorpio
		types.Venus:   200, // Libra
		types.Saturn:  280, // Capricorn
	}
	states := make(map[types.Planet]types.PlanetState, len(lons))
	for p, lon := range lons {
		states[p] = types.PlanetState{ID: p, TrueLongitude: lon}
	}
	return NewResolver(states)
}

func TestTemporalFriendship(t *testing.T) {
	r := fixtureResolver()

	tests := []struct {
		name string
		a, b types.Planet
		want tables.Relation
	}{
		// Mercury in Cancer is 4th from Sun in Aries
		{"fourth sign is temporal friend", types.Sun, types.Mercury, tables.RelationFriend},
		// Mars in Leo is 5th from Sun in Aries
		{"fifth sign is temporal enemy", types.Sun, types.Mars, tables.RelationEnemy},
		// Venus in Libra is 7th from Sun in Aries
		{"seventh sign is temporal enemy", types.Sun, types.Venus, tables.RelationEnemy},
		// Saturn in Capricorn is 10th from Sun in Aries
		{"tenth sign is temporal friend", types.Sun, types.Saturn, tables.RelationFriend},
		// Mercury in Cancer is 2nd from Moon in Gemini
		{"second sign is temporal friend", types.Moon, types.Mercury, tables.RelationFriend},
		// Moon in Gemini is 12th from Mercury in Cancer
		{"twelfth sign is temporal friend", types.Mercury, types.Moon, tables.RelationFriend},
		{"planet is temporally neutral to itself", types.Sun, types.Sun, tables.RelationNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.TemporalFriendship(tt.a, tt.b)
			if err != nil {
				t.Fatalf("TemporalFriendship() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("TemporalFriendship(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestTemporalFriendshipMissingPlanet(t *testing.T) {
	r := NewResolver(map[types.Planet]types.PlanetState{
		types.Sun: {ID: types.Sun, TrueLongitude: 10},
	})
	if _, err := r.TemporalFriendship(types.Sun, types.Moon); !errors.IsType(err, errors.TypeMissingChartData) {
		t.Errorf("missing planet: got %v, want %s", err, errors.TypeMissingChartData)
	}
}

func TestCombinedFriendshipIsDirectional(t *testing.T) {
	r := fixtureResolver()

	// Moon and Mercury are mutual temporal friends here, but the Moon
	// counts Mercury a natural friend while Mercury counts the Moon a
	// natural enemy. The combined verdicts must differ per direction.
	got, err := r.CombinedFriendship(types.Moon, types.Mercury)
	if err != nil {
		t.Fatalf("CombinedFriendship(Moon, Mercury) error = %v", err)
	}
	if got != types.LevelGreatFriend {
		t.Errorf("CombinedFriendship(Moon, Mercury) = %s, want GreatFriend", got)
	}

	got, err = r.CombinedFriendship(types.Mercury, types.Moon)
	if err != nil {
		t.Fatalf("CombinedFriendship(Mercury, Moon) error = %v", err)
	}
	if got != types.LevelNeutral {
		t.Errorf("CombinedFriendship(Mercury, Moon) = %s, want Neutral", got)
	}
}

func TestCombinedFriendshipExtremes(t *testing.T) {
	r := fixtureResolver()

	// Venus is the Sun's natural enemy and stands 7th from it: great enemy
	got, err := r.CombinedFriendship(types.Sun, types.Venus)
	if err != nil {
		t.Fatalf("CombinedFriendship(Sun, Venus) error = %v", err)
	}
	if got != types.LevelGreatEnemy {
		t.Errorf("CombinedFriendship(Sun, Venus) = %s, want GreatEnemy", got)
	}

	// Mercury is the Sun's natural neutral and stands 4th from it: friend
	got, err = r.CombinedFriendship(types.Sun, types.Mercury)
	if err != nil {
		t.Fatalf("CombinedFriendship(Sun, Mercury) error = %v", err)
	}
	if got != types.LevelFriend {
		t.Errorf("CombinedFriendship(Sun, Mercury) = %s, want Friend", got)
	}
}

func TestCombinedFriendshipRejectsNodes(t *testing.T) {
	r := fixtureResolver()
	if _, err := r.CombinedFriendship(types.Rahu, types.Sun); !errors.IsType(err, errors.TypeUnsupportedPlanet) {
		t.Errorf("node friendship: got %v, want %s", err, errors.TypeUnsupportedPlanet)
	}
}

func TestResolveChartAware(t *testing.T) {
	r := fixtureResolver()

	tests := []struct {
		name   string
		planet types.Planet
		sign   types.Sign
		degree float64
		want   types.DignityStatus
	}{
		// Gemini's lord Mercury is the Moon's combined great friend here
		{"great friend sign", types.Moon, types.Gemini, 5, types.GreatFriend},
		// Taurus's lord Venus is the Sun's combined great enemy here
		{"great enemy sign", types.Sun, types.Taurus, 25, types.GreatEnemy},
		// fixed states still outrank friendship
		{"exaltation outranks friendship", types.Sun, types.Aries, 10, types.Exalted},
		{"debilitation point sign", types.Sun, types.Libra, 10, types.Debilitated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.planet, tt.sign, tt.degree)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%s, %s, %v) = %s, want %s",
					tt.planet, tt.sign, tt.degree, got, tt.want)
			}
		})
	}
}
