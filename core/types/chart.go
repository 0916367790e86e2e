package types

import (
	"math"
	"time"
)

// PlanetState is an immutable ephemeris snapshot of one planet at the birth
// moment. Longitudes are sidereal degrees in [0, 360), speed is signed
// degrees per day, latitude and declination are degrees.
type PlanetState struct {
	// ID is the planet
	ID Planet `json:"id"`

	// TrueLongitude is the apparent sidereal longitude
	TrueLongitude float64 `json:"true_longitude"`

	// MeanLongitude is the mean sidereal longitude
	MeanLongitude float64 `json:"mean_longitude"`

	// Latitude is the ecliptic latitude
	Latitude float64 `json:"latitude"`

	// Speed is the daily motion, negative when retrograde
	Speed float64 `json:"speed"`

	// Declination is the equatorial declination
	Declination float64 `json:"declination"`
}

// IsRetrograde reports whether the planet is in retrograde motion
func (s PlanetState) IsRetrograde() bool {
	return s.Speed < 0
}

// Sign returns the sign occupied by the planet's true longitude
func (s PlanetState) Sign() Sign {
	return SignAt(s.TrueLongitude)
}

// SignDegree returns the degree within the occupied sign, in [0, 30)
func (s PlanetState) SignDegree() float64 {
	return math.Mod(s.TrueLongitude, 30)
}

// Paksha is the lunar fortnight
type Paksha string

const (
	// Shukla is the waxing fortnight
	Shukla Paksha = "Shukla"

	// Krishna is the waning fortnight
	Krishna Paksha = "Krishna"
)

// ChartContext is the immutable per-chart context. Sunrise, Sunset and
// NextSunrise are julian days with a fixed contract: Sunrise is the most
// recent sunrise at or before the birth moment, Sunset the sunset following
// it, NextSunrise the sunrise following that sunset. The birth moment always
// lies in [Sunrise, NextSunrise).
type ChartContext struct {
	// JulianDay is the birth moment
	JulianDay float64 `json:"julian_day"`

	// GeoLat is the geographic latitude
	GeoLat float64 `json:"geo_lat"`

	// GeoLon is the geographic longitude
	GeoLon float64 `json:"geo_lon"`

	// AscendantLongitude is the sidereal ascendant
	AscendantLongitude float64 `json:"ascendant_longitude"`

	// HouseCusps are the 12 house cusp longitudes, 1st house first
	HouseCusps [12]float64 `json:"house_cusps"`

	// Sunrise is the last sunrise at or before the birth moment
	Sunrise float64 `json:"sunrise"`

	// Sunset is the sunset following Sunrise
	Sunset float64 `json:"sunset"`

	// NextSunrise is the sunrise following Sunset
	NextSunrise float64 `json:"next_sunrise"`

	// WeekdayLord is the planetary lord of the birth weekday (Vara lord)
	WeekdayLord Planet `json:"weekday_lord"`

	// Paksha is the lunar fortnight at birth
	Paksha Paksha `json:"paksha"`

	// AyanamsaValue is the ayanamsa applied to the longitudes, degrees
	AyanamsaValue float64 `json:"ayanamsa_value"`

	// YearStartWeekday is the weekday of the solar year start
	// (Mesha Sankranti), for Abda Pati
	YearStartWeekday time.Weekday `json:"year_start_weekday"`

	// MonthStartWeekday is the weekday of the solar month start
	// (Sankranti), for Masa Pati
	MonthStartWeekday time.Weekday `json:"month_start_weekday"`

	// HasSunTimes reports whether Sunrise/Sunset/NextSunrise were supplied
	HasSunTimes bool `json:"has_sun_times"`

	// HasHouses reports whether AscendantLongitude and HouseCusps were
	// supplied
	HasHouses bool `json:"has_houses"`
}

// IsDay reports whether the birth moment falls between sunrise and sunset
func (c *ChartContext) IsDay() bool {
	return c.JulianDay < c.Sunset
}

// Varga identifies a divisional chart
type Varga string

const (
	D1  Varga = "D1"
	D2  Varga = "D2"
	D3  Varga = "D3"
	D7  Varga = "D7"
	D9  Varga = "D9"
	D12 Varga = "D12"
	D30 Varga = "D30"
)

// SaptavargaSet lists the seven divisional charts used by Saptavarga Bala
func SaptavargaSet() []Varga {
	return []Varga{D1, D2, D3, D7, D9, D12, D30}
}

// VargaPlacement is the placement of one planet in one divisional chart,
// supplied by the external varga provider. Degree is the degree within the
// varga sign, needed for Moolatrikona range checks.
type VargaPlacement struct {
	Planet Planet  `json:"planet"`
	Varga  Varga   `json:"varga"`
	Sign   Sign    `json:"sign"`
	Degree float64 `json:"degree"`
}

// VargaIndex provides keyed access to a set of varga placements
type VargaIndex map[Planet]map[Varga]VargaPlacement

// BuildVargaIndex indexes placements by planet and varga
func BuildVargaIndex(placements []VargaPlacement) VargaIndex {
	idx := make(VargaIndex)
	for _, p := range placements {
		if idx[p.Planet] == nil {
			idx[p.Planet] = make(map[Varga]VargaPlacement)
		}
		idx[p.Planet][p.Varga] = p
	}
	return idx
}

// Lookup returns the placement for a planet in a varga
func (v VargaIndex) Lookup(planet Planet, varga Varga) (VargaPlacement, bool) {
	byVarga, ok := v[planet]
	if !ok {
		return VargaPlacement{}, false
	}
	p, ok := byVarga[varga]
	return p, ok
}
