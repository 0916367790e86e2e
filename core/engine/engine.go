// Package engine runs the Shadbala pipeline. A run has two phases: first
// the collaborators are consulted for the chart context, the planetary
// states and the divisional placements; then the six strength components
// are computed per planet, concurrently, with the aspectual component and
// the planetary-war correction joining after the rest have settled.
//
// A planet whose required chart data is absent yields a partial result:
// the computable components are kept, the missing ones are listed, and the
// planet stays out of the ranking. Only collaborator failures abort a run.
package engine

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"shadbala/core/aspects"
	"shadbala/core/bala"
	"shadbala/core/dignity"
	"shadbala/core/ephemeris"
	"shadbala/core/tables"
	"shadbala/core/types"
	"shadbala/internal/errors"
	"shadbala/internal/logging"
)

// Options tunes a run. The zero value takes the classical defaults.
type Options struct {
	// Obliquity is the ecliptic obliquity in degrees for Ayana Bala
	Obliquity float64

	// WarOrbDegrees is the separation within which two star planets are
	// at war
	WarOrbDegrees float64

	// Winner decides planetary wars
	Winner WinnerStrategy
}

func (o Options) withDefaults() Options {
	if o.Obliquity == 0 {
		o.Obliquity = tables.DefaultObliquity
	}
	if o.WarOrbDegrees == 0 {
		o.WarOrbDegrees = 1.0
	}
	if o.Winner == nil {
		o.Winner = LatitudeStrategy{}
	}
	return o
}

// Engine computes Shadbala against a set of ephemeris collaborators. The
// sources are memoized internally, so an Engine reused across runs of the
// same chart does not repeat lookups. Safe for concurrent use.
type Engine struct {
	source  ephemeris.Source
	almanac ephemeris.Almanac
	vargas  ephemeris.VargaSource
	opts    Options
}

// New builds an Engine over the given collaborators
func New(source ephemeris.Source, almanac ephemeris.Almanac, vargas ephemeris.VargaSource, opts Options) *Engine {
	return &Engine{
		source:  ephemeris.Memoize(source),
		almanac: almanac,
		vargas:  ephemeris.MemoizeVargas(vargas),
		opts:    opts.withDefaults(),
	}
}

// Compute runs the full pipeline for a birth moment and place
func (e *Engine) Compute(ctx context.Context, jd, geoLat, geoLon float64) (*Report, error) {
	logging.Info("starting shadbala run",
		zap.Float64("julian_day", jd),
		zap.Float64("geo_lat", geoLat),
		zap.Float64("geo_lon", geoLon))

	chart, err := e.almanac.ChartContext(ctx, jd, geoLat, geoLon)
	if err != nil {
		return nil, errors.Internal("almanac lookup failed", err)
	}

	states := make(map[types.Planet]types.PlanetState, len(types.TruePlanets()))
	var placements []types.VargaPlacement
	for _, p := range types.TruePlanets() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		st, err := e.source.PlanetState(ctx, jd, p)
		if err != nil {
			return nil, errors.Internal("ephemeris lookup failed for "+string(p), err)
		}
		states[p] = st

		pl, err := e.vargas.Placements(ctx, jd, p)
		if err != nil {
			return nil, errors.Internal("varga lookup failed for "+string(p), err)
		}
		placements = append(placements, pl...)
	}
	vargaIdx := types.BuildVargaIndex(placements)
	resolver := dignity.NewResolver(states)

	outcomes := e.computeLocalPhase(states, chart, vargaIdx, resolver)
	subtotals := nonAspectualSubtotals(outcomes)
	e.computeDrigPhase(outcomes, states, subtotals)

	e.finalize(outcomes, states)

	report := &Report{
		Chart:    chart,
		Outcomes: outcomes,
		Wars:     DetectWars(states, e.opts.WarOrbDegrees),
		Aspects:  aspects.AllAspects(states),
	}

	complete := len(report.Ranked())
	logging.Info("shadbala run finished",
		zap.Int("complete", complete),
		zap.Int("partial", len(outcomes)-complete),
		zap.Int("wars", len(report.Wars)))
	return report, nil
}

// computeLocalPhase computes the five non-aspectual components per planet,
// concurrently
func (e *Engine) computeLocalPhase(states map[types.Planet]types.PlanetState,
	chart *types.ChartContext, vargaIdx types.VargaIndex, resolver *dignity.Resolver) map[types.Planet]Outcome {

	outcomes := make(map[types.Planet]Outcome, len(types.TruePlanets()))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, p := range types.TruePlanets() {
		wg.Add(1)
		go func(p types.Planet) {
			defer wg.Done()
			outcome := e.computeLocal(p, states, chart, vargaIdx, resolver)
			mu.Lock()
			outcomes[p] = outcome
			mu.Unlock()
		}(p)
	}
	wg.Wait()
	return outcomes
}

func (e *Engine) computeLocal(p types.Planet, states map[types.Planet]types.PlanetState,
	chart *types.ChartContext, vargaIdx types.VargaIndex, resolver *dignity.Resolver) Outcome {

	result := &types.ShadbalaResult{Planet: p}

	// a missing-data failure disables the component; anything else fails
	// the planet
	miss := func(name string, err error) error {
		if errors.IsType(err, errors.TypeMissingChartData) {
			logging.Debug("component unavailable",
				zap.String("planet", string(p)),
				zap.String("component", name),
				zap.Error(err))
			result.Unavailable = append(result.Unavailable, name)
			return nil
		}
		return err
	}

	if c, err := bala.Sthana(p, states, chart, vargaIdx, resolver); err != nil {
		if err = miss(types.ComponentSthana, err); err != nil {
			return Outcome{Err: err}
		}
	} else {
		result.Sthana = c
	}
	if c, err := bala.Dig(p, states, chart); err != nil {
		if err = miss(types.ComponentDig, err); err != nil {
			return Outcome{Err: err}
		}
	} else {
		result.Dig = c
	}
	if c, err := bala.Kala(p, states, chart, e.opts.Obliquity); err != nil {
		if err = miss(types.ComponentKala, err); err != nil {
			return Outcome{Err: err}
		}
	} else {
		result.Kala = c
	}
	if c, err := bala.Cheshta(p, states, e.opts.Obliquity); err != nil {
		if err = miss(types.ComponentCheshta, err); err != nil {
			return Outcome{Err: err}
		}
	} else {
		result.Cheshta = c
	}
	if c, err := bala.Naisargika(p); err != nil {
		return Outcome{Err: err}
	} else {
		result.Naisargika = c
	}

	var err error
	if len(result.Unavailable) > 0 {
		err = errors.MissingChartData(result.Unavailable[0] + " inputs")
	}
	return Outcome{Result: result, Err: err}
}

// nonAspectualSubtotals sums the five settled components per fully
// computed planet, the weight input for sign aspects
func nonAspectualSubtotals(outcomes map[types.Planet]Outcome) map[types.Planet]decimal.Decimal {
	subtotals := make(map[types.Planet]decimal.Decimal)
	for p, o := range outcomes {
		if o.Result == nil || len(o.Result.Unavailable) > 0 {
			continue
		}
		r := o.Result
		subtotals[p] = r.Sthana.Value.
			Add(r.Dig.Value).
			Add(r.Kala.Value).
			Add(r.Cheshta.Value).
			Add(r.Naisargika.Value)
	}
	return subtotals
}

// computeDrigPhase joins the aspectual component onto each surviving
// planet, concurrently
func (e *Engine) computeDrigPhase(outcomes map[types.Planet]Outcome,
	states map[types.Planet]types.PlanetState, subtotals map[types.Planet]decimal.Decimal) {

	var mu sync.Mutex
	var wg sync.WaitGroup
	for p, o := range outcomes {
		if o.Result == nil {
			continue
		}
		wg.Add(1)
		go func(p types.Planet, o Outcome) {
			defer wg.Done()
			c, err := bala.Drig(p, states, subtotals)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				o.Result.Drig = c
			case errors.IsType(err, errors.TypeMissingChartData):
				o.Result.Unavailable = append(o.Result.Unavailable, types.ComponentDrig)
				if o.Err == nil {
					o.Err = err
				}
			default:
				o = Outcome{Err: err}
			}
			outcomes[p] = o
		}(p, o)
	}
	wg.Wait()
}

// finalize aggregates totals, applies the war correction, ranks and fills
// in the phala pair
func (e *Engine) finalize(outcomes map[types.Planet]Outcome, states map[types.Planet]types.PlanetState) {
	var complete []*types.ShadbalaResult
	for _, o := range outcomes {
		if o.Result != nil && o.Err == nil && o.Result.Complete() {
			complete = append(complete, o.Result)
		}
	}
	byPlanet := make(map[types.Planet]*types.ShadbalaResult, len(complete))
	for _, r := range complete {
		r.TotalPinda = r.Sthana.Value.
			Add(r.Dig.Value).
			Add(r.Kala.Value).
			Add(r.Cheshta.Value).
			Add(r.Naisargika.Value).
			Add(r.Drig.Value)
		r.YuddhaDelta = decimal.Zero
		byPlanet[r.Planet] = r
	}

	// war corrections move strength from the loser to the winner
	for _, war := range DetectWars(states, e.opts.WarOrbDegrees) {
		first, second := byPlanet[war.First], byPlanet[war.Second]
		if first == nil || second == nil {
			continue
		}
		diff, _ := first.TotalPinda.Sub(second.TotalPinda).Abs().Float64()
		delta := decimal.NewFromFloat(math.Sqrt(diff))
		winner := e.opts.Winner.Winner(states[war.First], states[war.Second])
		loser := war.First
		if winner == war.First {
			loser = war.Second
		}
		byPlanet[winner].YuddhaDelta = byPlanet[winner].YuddhaDelta.Add(delta)
		byPlanet[loser].YuddhaDelta = byPlanet[loser].YuddhaDelta.Sub(delta)
		logging.Debug("planetary war",
			zap.String("winner", string(winner)),
			zap.String("loser", string(loser)),
			zap.String("delta", delta.String()))
	}

	for _, r := range complete {
		r.CorrectedPinda = r.TotalPinda.Add(r.YuddhaDelta)
		r.Rupas = r.CorrectedPinda.Div(sixtyD)
		r.MinimumRequired = tables.MinimumRupas(r.Planet)
		r.RelativeRatio = r.Rupas.Div(r.MinimumRequired)
		r.IsSufficient = r.Rupas.GreaterThanOrEqual(r.MinimumRequired)
		ishtaKashta(r)
	}

	sort.Slice(complete, func(i, j int) bool {
		if !complete[i].Rupas.Equal(complete[j].Rupas) {
			return complete[i].Rupas.GreaterThan(complete[j].Rupas)
		}
		return complete[i].Planet.Precedence() < complete[j].Planet.Precedence()
	})
	for i, r := range complete {
		r.Rank = i + 1
	}
}
