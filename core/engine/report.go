package engine

import (
	"sort"

	"shadbala/core/aspects"
	"shadbala/core/types"
)

// Outcome is the per-planet result of a run. Err is set when the planet
// could not be fully computed; Result may still carry the components that
// were computable.
type Outcome struct {
	Result *types.ShadbalaResult `json:"result,omitempty"`
	Err    error                 `json:"-"`
}

// Report is the outcome of one chart run
type Report struct {
	// Chart is the context the run was computed against
	Chart *types.ChartContext `json:"chart"`

	// Outcomes holds one entry per true planet
	Outcomes map[types.Planet]Outcome `json:"outcomes"`

	// Wars lists the planetary wars found in the chart
	Wars []War `json:"wars,omitempty"`

	// Aspects lists every aspect among the seven planets
	Aspects []aspects.Record `json:"aspects,omitempty"`
}

// Result returns the result for one planet, nil when absent or failed
func (r *Report) Result(p types.Planet) *types.ShadbalaResult {
	return r.Outcomes[p].Result
}

// Ranked returns the complete results ordered by rank
func (r *Report) Ranked() []*types.ShadbalaResult {
	var ranked []*types.ShadbalaResult
	for _, o := range r.Outcomes {
		if o.Result != nil && o.Result.Complete() {
			ranked = append(ranked, o.Result)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].Rank < ranked[j].Rank
	})
	return ranked
}

// Strongest returns the top-ranked result, nil when no planet completed
func (r *Report) Strongest() *types.ShadbalaResult {
	ranked := r.Ranked()
	if len(ranked) == 0 {
		return nil
	}
	return ranked[0]
}

// Weakest returns the bottom-ranked result, nil when no planet completed
func (r *Report) Weakest() *types.ShadbalaResult {
	ranked := r.Ranked()
	if len(ranked) == 0 {
		return nil
	}
	return ranked[len(ranked)-1]
}

// Insufficient lists the complete results below their classical minimum,
// in rank order
func (r *Report) Insufficient() []*types.ShadbalaResult {
	var weak []*types.ShadbalaResult
	for _, res := range r.Ranked() {
		if !res.IsSufficient {
			weak = append(weak, res)
		}
	}
	return weak
}
