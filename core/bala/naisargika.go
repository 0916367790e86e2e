package bala

import (
	"shadbala/core/tables"
	"shadbala/core/types"
	"shadbala/internal/errors"
)

// TermNaisargika names the single natural sub-term
const TermNaisargika = "Natural"

// Naisargika returns the planet's fixed natural strength, the luminosity
// ordering from the Sun down to Saturn.
func Naisargika(planet types.Planet) (types.BalaComponent, error) {
	if !planet.Valid() {
		return types.BalaComponent{}, errors.Input("unknown planet %q", planet)
	}
	value, ok := tables.Naisargika(planet)
	if !ok {
		return types.BalaComponent{}, errors.UnsupportedPlanet("Naisargika Bala", planet)
	}
	return types.NewComponent(types.ComponentNaisargika,
		types.SubTerm{Name: TermNaisargika, Value: value},
	), nil
}
