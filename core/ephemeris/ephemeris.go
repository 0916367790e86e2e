// Package ephemeris defines the external data sources a Shadbala run needs:
// planetary positions, the day-and-night almanac, and divisional chart
// placements. The library computes nothing astronomical itself; callers
// plug in an ephemeris backend and the memoizing wrappers keep repeated
// lookups cheap.
//
// All sources must be referentially transparent: the same arguments always
// name the same answer. The memoizing wrappers rely on this and never
// invalidate.
package ephemeris

import (
	"context"
	"sync"

	"shadbala/core/types"
)

// Source supplies planetary ephemeris states at a julian day
type Source interface {
	// PlanetState returns the state of one planet at the julian day
	PlanetState(ctx context.Context, jd float64, planet types.Planet) (types.PlanetState, error)
}

// Almanac supplies the per-chart context: sun times, houses, time lords
type Almanac interface {
	// ChartContext returns the chart context for a birth moment and place
	ChartContext(ctx context.Context, jd, geoLat, geoLon float64) (*types.ChartContext, error)
}

// VargaSource supplies divisional chart placements
type VargaSource interface {
	// Placements returns one planet's placements across the divisional
	// charts it knows, at least the Saptavarga set
	Placements(ctx context.Context, jd float64, planet types.Planet) ([]types.VargaPlacement, error)
}

type stateKey struct {
	jd     float64
	planet types.Planet
}

// MemoSource caches Source lookups for the life of the wrapper. Safe for
// concurrent use.
type MemoSource struct {
	src Source

	mu    sync.Mutex
	cache map[stateKey]types.PlanetState
}

// Memoize wraps a Source with a permanent lookup cache
func Memoize(src Source) *MemoSource {
	return &MemoSource{src: src, cache: make(map[stateKey]types.PlanetState)}
}

// PlanetState returns the cached state, consulting the underlying source
// once per (julian day, planet). Errors are not cached.
func (m *MemoSource) PlanetState(ctx context.Context, jd float64, planet types.Planet) (types.PlanetState, error) {
	key := stateKey{jd: jd, planet: planet}

	m.mu.Lock()
	if state, ok := m.cache[key]; ok {
		m.mu.Unlock()
		return state, nil
	}
	m.mu.Unlock()

	state, err := m.src.PlanetState(ctx, jd, planet)
	if err != nil {
		return types.PlanetState{}, err
	}

	m.mu.Lock()
	m.cache[key] = state
	m.mu.Unlock()
	return state, nil
}

// MemoVargaSource caches VargaSource lookups for the life of the wrapper.
// Safe for concurrent use.
type MemoVargaSource struct {
	src VargaSource

	mu    sync.Mutex
	cache map[stateKey][]types.VargaPlacement
}

// MemoizeVargas wraps a VargaSource with a permanent lookup cache
func MemoizeVargas(src VargaSource) *MemoVargaSource {
	return &MemoVargaSource{src: src, cache: make(map[stateKey][]types.VargaPlacement)}
}

// Placements returns the cached placements, consulting the underlying
// source once per (julian day, planet). Errors are not cached.
func (m *MemoVargaSource) Placements(ctx context.Context, jd float64, planet types.Planet) ([]types.VargaPlacement, error) {
	key := stateKey{jd: jd, planet: planet}

	m.mu.Lock()
	if placements, ok := m.cache[key]; ok {
		m.mu.Unlock()
		return placements, nil
	}
	m.mu.Unlock()

	placements, err := m.src.Placements(ctx, jd, planet)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.cache[key] = placements
	m.mu.Unlock()
	return placements, nil
}
