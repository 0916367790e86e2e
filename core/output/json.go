package output

import (
	"encoding/json"
	"io"

	"shadbala/core/aspects"
	"shadbala/core/engine"
	"shadbala/core/types"
)

// JSONFormatter renders a report as indented JSON
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// document is the stable JSON shape of a report. Results appear in rank
// order; partial results follow with their missing components listed.
type document struct {
	Chart   *types.ChartContext     `json:"chart"`
	Results []*types.ShadbalaResult `json:"results"`
	Partial []*types.ShadbalaResult `json:"partial,omitempty"`
	Wars    []engine.War            `json:"wars,omitempty"`
	Aspects []aspects.Record        `json:"aspects,omitempty"`
}

// Render writes the report as JSON. The breakdown option is ignored here:
// the JSON document always carries the full breakdowns.
func (f *JSONFormatter) Render(w io.Writer, report *engine.Report, _ Options) error {
	doc := document{
		Chart:   report.Chart,
		Results: report.Ranked(),
		Wars:    report.Wars,
		Aspects: report.Aspects,
	}
	for _, p := range types.TruePlanets() {
		if o, ok := report.Outcomes[p]; ok && o.Result != nil && !o.Result.Complete() {
			doc.Partial = append(doc.Partial, o.Result)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
