// Package tables holds the static reference data the calculators share:
// friendship tables, dignity degree ranges, Virupa point scales, and the
// classical per-planet constants. Everything here is immutable, process-wide
// configuration; nothing mutates it after init.
package tables

import (
	"time"

	"github.com/shopspring/decimal"

	"shadbala/core/types"
)

// Relation is a natural (fixed-table) relationship between two planets
type Relation int

const (
	RelationEnemy Relation = iota - 1
	RelationNeutral
	RelationFriend
)

// naturalFriendship is the classical Naisargika Maitri table. Rows are the
// subject planet, columns the other planet. The Moon has no natural enemy.
var naturalFriendship = map[types.Planet]map[types.Planet]Relation{
	types.Sun: {
		types.Moon: RelationFriend, types.Mars: RelationFriend, types.Jupiter: RelationFriend,
		types.Mercury: RelationNeutral,
		types.Venus:   RelationEnemy, types.Saturn: RelationEnemy,
	},
	types.Moon: {
		types.Sun: RelationFriend, types.Mercury: RelationFriend,
		types.Mars: RelationNeutral, types.Jupiter: RelationNeutral,
		types.Venus: RelationNeutral, types.Saturn: RelationNeutral,
	},
	types.Mars: {
		types.Sun: RelationFriend, types.Moon: RelationFriend, types.Jupiter: RelationFriend,
		types.Venus: RelationNeutral, types.Saturn: RelationNeutral,
		types.Mercury: RelationEnemy,
	},
	types.Mercury: {
		types.Sun: RelationFriend, types.Venus: RelationFriend,
		types.Mars: RelationNeutral, types.Jupiter: RelationNeutral, types.Saturn: RelationNeutral,
		types.Moon: RelationEnemy,
	},
	types.Jupiter: {
		types.Sun: RelationFriend, types.Moon: RelationFriend, types.Mars: RelationFriend,
		types.Saturn:  RelationNeutral,
		types.Mercury: RelationEnemy, types.Venus: RelationEnemy,
	},
	types.Venus: {
		types.Mercury: RelationFriend, types.Saturn: RelationFriend,
		types.Mars: RelationNeutral, types.Jupiter: RelationNeutral,
		types.Sun: RelationEnemy, types.Moon: RelationEnemy,
	},
	types.Saturn: {
		types.Mercury: RelationFriend, types.Venus: RelationFriend,
		types.Jupiter: RelationNeutral,
		types.Sun:     RelationEnemy, types.Moon: RelationEnemy, types.Mars: RelationEnemy,
	},
}

// NaturalFriendship returns the fixed natural relationship of planet a
// toward planet b. A planet is neutral toward itself and toward the nodes.
func NaturalFriendship(a, b types.Planet) Relation {
	row, ok := naturalFriendship[a]
	if !ok {
		return RelationNeutral
	}
	rel, ok := row[b]
	if !ok {
		return RelationNeutral
	}
	return rel
}

// DegreePoint is an exact zodiacal point given as sign plus degree
type DegreePoint struct {
	Sign   types.Sign
	Degree float64
}

// Longitude returns the absolute zodiacal longitude of the point
func (p DegreePoint) Longitude() float64 {
	return float64(p.Sign)*30 + p.Degree
}

// DegreeRange is a degree span within one sign, inclusive start, exclusive
// end
type DegreeRange struct {
	Sign types.Sign
	From float64
	To   float64
}

// Contains reports whether a (sign, degree) position falls in the range
func (r DegreeRange) Contains(sign types.Sign, degree float64) bool {
	return sign == r.Sign && degree >= r.From && degree < r.To
}

// Exaltation points per planet
var exaltation = map[types.Planet]DegreePoint{
	types.Sun:     {types.Aries, 10},
	types.Moon:    {types.Taurus, 3},
	types.Mars:    {types.Capricorn, 28},
	types.Mercury: {types.Virgo, 15},
	types.Jupiter: {types.Cancer, 5},
	types.Venus:   {types.Pisces, 27},
	types.Saturn:  {types.Libra, 20},
}

// Debilitation points per planet, opposite the exaltation points
var debilitation = map[types.Planet]DegreePoint{
	types.Sun:     {types.Libra, 10},
	types.Moon:    {types.Scorpio, 3},
	types.Mars:    {types.Cancer, 28},
	types.Mercury: {types.Pisces, 15},
	types.Jupiter: {types.Capricorn, 5},
	types.Venus:   {types.Virgo, 27},
	types.Saturn:  {types.Aries, 20},
}

// Moolatrikona ranges per planet
var moolatrikona = map[types.Planet]DegreeRange{
	types.Sun:     {types.Leo, 0, 20},
	types.Moon:    {types.Taurus, 4, 30},
	types.Mars:    {types.Aries, 0, 12},
	types.Mercury: {types.Virgo, 16, 20},
	types.Jupiter: {types.Sagittarius, 0, 10},
	types.Venus:   {types.Libra, 0, 15},
	types.Saturn:  {types.Aquarius, 0, 20},
}

// Exaltation returns the planet's exaltation point
func Exaltation(p types.Planet) (DegreePoint, bool) {
	pt, ok := exaltation[p]
	return pt, ok
}

// Debilitation returns the planet's debilitation point
func Debilitation(p types.Planet) (DegreePoint, bool) {
	pt, ok := debilitation[p]
	return pt, ok
}

// MoolatrikonaRange returns the planet's Moolatrikona span
func MoolatrikonaRange(p types.Planet) (DegreeRange, bool) {
	r, ok := moolatrikona[p]
	return r, ok
}

// signRulers maps each sign to its Vedic lord
var signRulers = [12]types.Planet{
	types.Mars,    // Aries
	types.Venus,   // Taurus
	types.Mercury, // Gemini
	types.Moon,    // Cancer
	types.Sun,     // Leo
	types.Mercury, // Virgo
	types.Venus,   // Libra
	types.Mars,    // Scorpio
	types.Jupiter, // Sagittarius
	types.Saturn,  // Capricorn
	types.Saturn,  // Aquarius
	types.Jupiter, // Pisces
}

// SignRuler returns the lord of a sign
func SignRuler(s types.Sign) types.Planet {
	return signRulers[int(s)%12]
}

// OwnsSign reports whether a planet rules a sign
func OwnsSign(p types.Planet, s types.Sign) bool {
	return SignRuler(s) == p
}

// Saptavarga dignity awards in Virupas. Exalted and Debilitated award
// nothing here: exaltation strength is Uchcha Bala's exclusive domain.
var dignityVirupas = map[types.DignityStatus]decimal.Decimal{
	types.Moolatrikona: decimal.RequireFromString("45"),
	types.OwnSign:      decimal.RequireFromString("30"),
	types.GreatFriend:  decimal.RequireFromString("22.5"),
	types.Friend:       decimal.RequireFromString("15"),
	types.Neutral:      decimal.RequireFromString("7.5"),
	types.Enemy:        decimal.RequireFromString("3.75"),
	types.GreatEnemy:   decimal.RequireFromString("1.875"),
}

// DignityVirupas returns the Saptavarga award for a dignity status
func DignityVirupas(d types.DignityStatus) decimal.Decimal {
	return dignityVirupas[d]
}

// Naisargika Bala constants in Virupas
var naisargika = map[types.Planet]decimal.Decimal{
	types.Sun:     decimal.RequireFromString("60.00"),
	types.Moon:    decimal.RequireFromString("51.43"),
	types.Venus:   decimal.RequireFromString("42.86"),
	types.Jupiter: decimal.RequireFromString("34.29"),
	types.Mercury: decimal.RequireFromString("25.71"),
	types.Mars:    decimal.RequireFromString("17.14"),
	types.Saturn:  decimal.RequireFromString("8.57"),
}

// Naisargika returns the planet's natural strength constant
func Naisargika(p types.Planet) (decimal.Decimal, bool) {
	v, ok := naisargika[p]
	return v, ok
}

// Minimum required strength per planet, in Rupas
var minimumRupas = map[types.Planet]decimal.Decimal{
	types.Sun:     decimal.RequireFromString("5"),
	types.Moon:    decimal.RequireFromString("6"),
	types.Mars:    decimal.RequireFromString("5"),
	types.Mercury: decimal.RequireFromString("7"),
	types.Jupiter: decimal.RequireFromString("6.5"),
	types.Venus:   decimal.RequireFromString("5.5"),
	types.Saturn:  decimal.RequireFromString("5"),
}

// MinimumRupas returns the classical minimum requirement for a planet
func MinimumRupas(p types.Planet) decimal.Decimal {
	return minimumRupas[p]
}

// Mean daily motion per planet, degrees per day
var meanSpeed = map[types.Planet]float64{
	types.Sun:     0.9856,
	types.Moon:    13.1764,
	types.Mars:    0.5242,
	types.Mercury: 1.3833,
	types.Jupiter: 0.0831,
	types.Venus:   1.2021,
	types.Saturn:  0.0334,
}

// MeanSpeed returns the planet's mean daily motion
func MeanSpeed(p types.Planet) float64 {
	return meanSpeed[p]
}

// weekdayLords maps time.Weekday to the Vara lord
var weekdayLords = map[time.Weekday]types.Planet{
	time.Sunday:    types.Sun,
	time.Monday:    types.Moon,
	time.Tuesday:   types.Mars,
	time.Wednesday: types.Mercury,
	time.Thursday:  types.Jupiter,
	time.Friday:    types.Venus,
	time.Saturday:  types.Saturn,
}

// WeekdayLord returns the planetary lord of a weekday
func WeekdayLord(d time.Weekday) types.Planet {
	return weekdayLords[d]
}

// HoraSequence is the fixed planetary-hour sequence. Successive horas follow
// this cycle starting from the Vara lord at sunrise.
var HoraSequence = [7]types.Planet{
	types.Sun, types.Venus, types.Mercury, types.Moon,
	types.Saturn, types.Jupiter, types.Mars,
}

// DayThirdLords rule the three parts of the day for Tribhaga Bala
var DayThirdLords = [3]types.Planet{types.Mercury, types.Sun, types.Saturn}

// NightThirdLords rule the three parts of the night for Tribhaga Bala
var NightThirdLords = [3]types.Planet{types.Moon, types.Venus, types.Mars}

// Graha Drishti Virupa scale per aspect fraction
var (
	FullAspectVirupas         = decimal.RequireFromString("60")
	ThreeQuarterAspectVirupas = decimal.RequireFromString("45")
	HalfAspectVirupas         = decimal.RequireFromString("30")
	QuarterAspectVirupas      = decimal.RequireFromString("15")

	// RashiDrishtiVirupas is the fixed weight of one sign aspect, summed
	// with (never averaged into) the Graha Drishti contribution
	RashiDrishtiVirupas = decimal.RequireFromString("15")
)

// Fixed awards for the time-lord balas, in Virupas
var (
	AbdaBalaVirupas = decimal.RequireFromString("15")
	MasaBalaVirupas = decimal.RequireFromString("30")
	VaraBalaVirupas = decimal.RequireFromString("45")
	HoraBalaVirupas = decimal.RequireFromString("60")
)

// DefaultObliquity is the mean obliquity of the ecliptic in degrees, used
// by Ayana Bala when no override is configured
const DefaultObliquity = 23.43929111
