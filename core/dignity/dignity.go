// Package dignity resolves planetary dignities and friendships. The
// package-level resolver uses only the fixed natural tables; the chart-aware
// Resolver additionally folds in temporal friendship, which depends on where
// the planets stand in the natal chart.
package dignity

import (
	"shadbala/core/tables"
	"shadbala/core/types"
	"shadbala/internal/errors"
)

// temporalFriendHouses are the sign distances (self-inclusive, 1-12) at
// which an occupant is a temporal friend
var temporalFriendHouses = map[int]bool{
	2: true, 3: true, 4: true, 10: true, 11: true, 12: true,
}

// ResolveDignity classifies a planet's standing in a sign using the natural
// friendship table alone. The resolution order is Moolatrikona, own sign,
// exaltation, debilitation, then friendship toward the sign's lord; the
// first match wins. Rahu and Ketu have no dignity.
func ResolveDignity(planet types.Planet, sign types.Sign, degree float64) (types.DignityStatus, error) {
	if err := validate(planet, sign, degree); err != nil {
		return "", err
	}
	if status, ok := fixedDignity(planet, sign, degree); ok {
		return status, nil
	}
	switch tables.NaturalFriendship(planet, tables.SignRuler(sign)) {
	case tables.RelationFriend:
		return types.Friend, nil
	case tables.RelationEnemy:
		return types.Enemy, nil
	}
	return types.Neutral, nil
}

// fixedDignity applies the chart-independent part of the resolution order
func fixedDignity(planet types.Planet, sign types.Sign, degree float64) (types.DignityStatus, bool) {
	if r, ok := tables.MoolatrikonaRange(planet); ok && r.Contains(sign, degree) {
		return types.Moolatrikona, true
	}
	if tables.OwnsSign(planet, sign) {
		return types.OwnSign, true
	}
	if pt, ok := tables.Exaltation(planet); ok && pt.Sign == sign {
		return types.Exalted, true
	}
	if pt, ok := tables.Debilitation(planet); ok && pt.Sign == sign {
		return types.Debilitated, true
	}
	return "", false
}

func validate(planet types.Planet, sign types.Sign, degree float64) error {
	if !planet.Valid() {
		return errors.Input("unknown planet %q", planet)
	}
	if planet.IsNode() {
		return errors.UnsupportedPlanet("dignity resolution", planet)
	}
	if !sign.Valid() {
		return errors.Input("sign index %d out of range", int(sign))
	}
	if degree < 0 || degree >= 30 {
		return errors.Input("degree %v outside [0, 30)", degree)
	}
	return nil
}

// Resolver resolves chart-aware dignities. It is built once per chart from
// the natal sign positions and is safe for concurrent use afterwards.
type Resolver struct {
	signs map[types.Planet]types.Sign
}

// NewResolver builds a Resolver from the natal planet states. Only the
// seven true planets participate in temporal friendship.
func NewResolver(states map[types.Planet]types.PlanetState) *Resolver {
	signs := make(map[types.Planet]types.Sign, len(states))
	for _, p := range types.TruePlanets() {
		if st, ok := states[p]; ok {
			signs[p] = st.Sign()
		}
	}
	return &Resolver{signs: signs}
}

// TemporalFriendship returns the chart-dependent relationship of planet a
// toward planet b: friend when b occupies the 2nd, 3rd, 4th, 10th, 11th or
// 12th sign counted from a's natal sign, neutral toward itself, enemy
// otherwise.
func (r *Resolver) TemporalFriendship(a, b types.Planet) (tables.Relation, error) {
	if a == b {
		return tables.RelationNeutral, nil
	}
	from, ok := r.signs[a]
	if !ok {
		return 0, errors.MissingChartData("natal position of " + string(a))
	}
	to, ok := r.signs[b]
	if !ok {
		return 0, errors.MissingChartData("natal position of " + string(b))
	}
	dist := (int(to)-int(from)+12)%12 + 1
	if temporalFriendHouses[dist] {
		return tables.RelationFriend, nil
	}
	return tables.RelationEnemy, nil
}

// CombinedFriendship joins natural and temporal friendship on the five-level
// scale. Each friendly verdict moves the level up one step from neutral,
// each inimical verdict down one step; the two verdicts cancel when mixed.
func (r *Resolver) CombinedFriendship(a, b types.Planet) (types.FriendshipLevel, error) {
	if !a.Valid() || !b.Valid() {
		return 0, errors.Input("unknown planet in friendship pair (%q, %q)", a, b)
	}
	if a.IsNode() || b.IsNode() {
		return 0, errors.UnsupportedPlanet("combined friendship", nodeOf(a, b))
	}
	temporal, err := r.TemporalFriendship(a, b)
	if err != nil {
		return 0, err
	}
	natural := tables.NaturalFriendship(a, b)
	return types.LevelNeutral + types.FriendshipLevel(int(natural)+int(temporal)), nil
}

func nodeOf(a, b types.Planet) types.Planet {
	if a.IsNode() {
		return a
	}
	return b
}

// Resolve classifies a planet's standing in a sign using the combined
// friendship scale. The fixed resolution order matches ResolveDignity; only
// the friendship fallback differs.
func (r *Resolver) Resolve(planet types.Planet, sign types.Sign, degree float64) (types.DignityStatus, error) {
	if err := validate(planet, sign, degree); err != nil {
		return "", err
	}
	if status, ok := fixedDignity(planet, sign, degree); ok {
		return status, nil
	}
	level, err := r.CombinedFriendship(planet, tables.SignRuler(sign))
	if err != nil {
		return "", err
	}
	switch level {
	case types.LevelGreatFriend:
		return types.GreatFriend, nil
	case types.LevelFriend:
		return types.Friend, nil
	case types.LevelEnemy:
		return types.Enemy, nil
	case types.LevelGreatEnemy:
		return types.GreatEnemy, nil
	}
	return types.Neutral, nil
}
