package bala

import (
	"math"

	"github.com/shopspring/decimal"

	"shadbala/core/angle"
	"shadbala/core/tables"
	"shadbala/core/types"
	"shadbala/internal/errors"
)

// Sub-term names of the Kala breakdown
const (
	TermNathonnatha = "Nathonnatha"
	TermPaksha      = "Paksha"
	TermTribhaga    = "Tribhaga"
	TermAbda        = "Abda"
	TermMasa        = "Masa"
	TermVara        = "Vara"
	TermHora        = "Hora"
	TermAyana       = "Ayana"
)

// diurnal planets gain Nathonnatha strength toward midday, nocturnal ones
// toward midnight. Mercury is strong at all hours.
var diurnal = map[types.Planet]bool{
	types.Sun: true, types.Jupiter: true, types.Venus: true,
}

// Kala computes temporal strength: the sum of Nathonnatha, Paksha,
// Tribhaga, the three time-lord balas, Hora and Ayana Bala. Obliquity is
// the ecliptic obliquity in degrees used by the Ayana term.
func Kala(planet types.Planet, states map[types.Planet]types.PlanetState,
	chart *types.ChartContext, obliquity float64) (types.BalaComponent, error) {

	state, err := requireState(planet, states)
	if err != nil {
		return types.BalaComponent{}, err
	}
	if !chart.HasSunTimes {
		return types.BalaComponent{}, errors.MissingChartData("sunrise and sunset")
	}

	nathonnatha, err := NathonnathaBala(planet, chart)
	if err != nil {
		return types.BalaComponent{}, err
	}
	paksha, err := PakshaBala(planet, states)
	if err != nil {
		return types.BalaComponent{}, err
	}
	tribhaga, err := TribhagaBala(planet, chart)
	if err != nil {
		return types.BalaComponent{}, err
	}
	hora, err := HoraBala(planet, chart)
	if err != nil {
		return types.BalaComponent{}, err
	}
	ayana, err := AyanaBala(state, obliquity)
	if err != nil {
		return types.BalaComponent{}, err
	}

	return types.NewComponent(types.ComponentKala,
		types.SubTerm{Name: TermNathonnatha, Value: nathonnatha},
		types.SubTerm{Name: TermPaksha, Value: paksha},
		types.SubTerm{Name: TermTribhaga, Value: tribhaga},
		types.SubTerm{Name: TermAbda, Value: AbdaBala(planet, chart)},
		types.SubTerm{Name: TermMasa, Value: MasaBala(planet, chart)},
		types.SubTerm{Name: TermVara, Value: VaraBala(planet, chart)},
		types.SubTerm{Name: TermHora, Value: hora},
		types.SubTerm{Name: TermAyana, Value: ayana},
	), nil
}

// NathonnathaBala measures the diurnal arc: zero for a diurnal planet at
// midnight rising to 60 at midday, and the reverse for a nocturnal planet.
// Mercury always takes 60.
func NathonnathaBala(planet types.Planet, chart *types.ChartContext) (decimal.Decimal, error) {
	if planet == types.Mercury {
		return sixty, nil
	}
	if !chart.HasSunTimes {
		return decimal.Zero, errors.MissingChartData("sunrise and sunset")
	}
	midday := (chart.Sunrise + chart.Sunset) / 2
	midnight := midday - 0.5

	// distance from midnight on the one-day circle, in [0, 0.5]
	d := math.Mod(chart.JulianDay-midnight, 1)
	if d < 0 {
		d += 1
	}
	if d > 0.5 {
		d = 1 - d
	}
	frac := math.Min(d/0.5, 1)
	if !diurnal[planet] {
		frac = 1 - frac
	}
	return decimal.NewFromFloat(60 * frac), nil
}

// PakshaBala follows the lunar phase: benefics grow with the waxing Moon,
// malefics with the waning.
func PakshaBala(planet types.Planet, states map[types.Planet]types.PlanetState) (decimal.Decimal, error) {
	sun, ok := states[types.Sun]
	if !ok {
		return decimal.Zero, errors.MissingChartData("ephemeris state of Sun")
	}
	moon, ok := states[types.Moon]
	if !ok {
		return decimal.Zero, errors.MissingChartData("ephemeris state of Moon")
	}
	elongation := angle.Arc(sun.TrueLongitude, moon.TrueLongitude)
	phase := elongation / 180
	if elongation > 180 {
		phase = (360 - elongation) / 180
	}
	if !planet.IsBenefic() {
		phase = 1 - phase
	}
	return decimal.NewFromFloat(60 * phase), nil
}

// TribhagaBala awards 60 Virupas to the lord of the current third of the
// day or night. Jupiter holds Tribhaga strength at all times.
func TribhagaBala(planet types.Planet, chart *types.ChartContext) (decimal.Decimal, error) {
	if planet == types.Jupiter {
		return sixty, nil
	}
	if !chart.HasSunTimes {
		return decimal.Zero, errors.MissingChartData("sunrise and sunset")
	}
	var start, span float64
	var lords [3]types.Planet
	if chart.IsDay() {
		start, span = chart.Sunrise, chart.Sunset-chart.Sunrise
		lords = tables.DayThirdLords
	} else {
		start, span = chart.Sunset, chart.NextSunrise-chart.Sunset
		lords = tables.NightThirdLords
	}
	if span <= 0 {
		return decimal.Zero, errors.DegenerateGeometry("day/night span is not positive")
	}
	idx := clampIndex(angle.Division(chart.JulianDay-start, span/3), 2)
	if lords[idx] == planet {
		return sixty, nil
	}
	return decimal.Zero, nil
}

// AbdaBala awards 15 Virupas to the lord of the solar year
func AbdaBala(planet types.Planet, chart *types.ChartContext) decimal.Decimal {
	if tables.WeekdayLord(chart.YearStartWeekday) == planet {
		return tables.AbdaBalaVirupas
	}
	return decimal.Zero
}

// MasaBala awards 30 Virupas to the lord of the solar month
func MasaBala(planet types.Planet, chart *types.ChartContext) decimal.Decimal {
	if tables.WeekdayLord(chart.MonthStartWeekday) == planet {
		return tables.MasaBalaVirupas
	}
	return decimal.Zero
}

// VaraBala awards 45 Virupas to the lord of the birth weekday
func VaraBala(planet types.Planet, chart *types.ChartContext) decimal.Decimal {
	if chart.WeekdayLord == planet {
		return tables.VaraBalaVirupas
	}
	return decimal.Zero
}

// HoraBala awards 60 Virupas to the lord of the planetary hour. The day and
// night are each split into twelve equal horas; the first hora after
// sunrise belongs to the weekday lord and successive horas follow the fixed
// hora sequence.
func HoraBala(planet types.Planet, chart *types.ChartContext) (decimal.Decimal, error) {
	if !chart.HasSunTimes {
		return decimal.Zero, errors.MissingChartData("sunrise and sunset")
	}
	daySpan := chart.Sunset - chart.Sunrise
	nightSpan := chart.NextSunrise - chart.Sunset
	if daySpan <= 0 || nightSpan <= 0 {
		return decimal.Zero, errors.DegenerateGeometry("day/night span is not positive")
	}

	var hora int
	if chart.IsDay() {
		hora = clampIndex(angle.Division(chart.JulianDay-chart.Sunrise, daySpan/12), 11)
	} else {
		hora = 12 + clampIndex(angle.Division(chart.JulianDay-chart.Sunset, nightSpan/12), 11)
	}

	start := horaIndex(chart.WeekdayLord)
	if start < 0 {
		return decimal.Zero, errors.Input("unknown weekday lord %q", chart.WeekdayLord)
	}
	if tables.HoraSequence[(start+hora)%7] == planet {
		return tables.HoraBalaVirupas, nil
	}
	return decimal.Zero, nil
}

func horaIndex(planet types.Planet) int {
	for i, p := range tables.HoraSequence {
		if p == planet {
			return i
		}
	}
	return -1
}

// AyanaBala measures declinational strength around a 30-Virupa midpoint.
// The Sun, Mars, Jupiter and Venus gain with northern declination, the Moon
// and Saturn with southern, Mercury with either.
func AyanaBala(state types.PlanetState, obliquity float64) (decimal.Decimal, error) {
	if obliquity <= 0 {
		return decimal.Zero, errors.Input("obliquity %v must be positive", obliquity)
	}
	if state.ID.IsNode() {
		return decimal.Zero, errors.UnsupportedPlanet("Ayana Bala", state.ID)
	}
	d := state.Declination
	switch state.ID {
	case types.Moon, types.Saturn:
		d = -d
	case types.Mercury:
		d = math.Abs(d)
	}
	value := 30 + (d/obliquity)*30
	if value < 0 {
		value = 0
	}
	if value > 60 {
		value = 60
	}
	return decimal.NewFromFloat(value), nil
}

func clampIndex(i, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}
