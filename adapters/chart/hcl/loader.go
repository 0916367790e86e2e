// Package hcl loads chart definitions written in HCL. A chart file carries
// the birth context, the planetary ephemeris states and the divisional
// placements; the loaded bundle plugs straight into the engine as its
// ephemeris collaborators.
package hcl

import (
	"context"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"shadbala/core/angle"
	"shadbala/core/types"
	"shadbala/internal/errors"
)

// Bundle is a fully loaded chart definition. It implements the engine's
// Source, Almanac and VargaSource collaborators over static data.
type Bundle struct {
	Context *types.ChartContext
	States  map[types.Planet]types.PlanetState
	Vargas  []types.VargaPlacement
}

// PlanetState serves a planet's state from the file
func (b *Bundle) PlanetState(_ context.Context, _ float64, planet types.Planet) (types.PlanetState, error) {
	st, ok := b.States[planet]
	if !ok {
		return types.PlanetState{}, errors.MissingChartData("ephemeris state of " + string(planet))
	}
	return st, nil
}

// ChartContext serves the chart context from the file
func (b *Bundle) ChartContext(_ context.Context, _, _, _ float64) (*types.ChartContext, error) {
	c := *b.Context
	return &c, nil
}

// Placements serves a planet's divisional placements from the file
func (b *Bundle) Placements(_ context.Context, _ float64, planet types.Planet) ([]types.VargaPlacement, error) {
	var out []types.VargaPlacement
	for _, p := range b.Vargas {
		if p.Planet == planet {
			out = append(out, p)
		}
	}
	return out, nil
}

// Loader parses chart definition files
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a chart loader
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load reads and parses a chart definition file
func (l *Loader) Load(path string) (*Bundle, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Parsing("failed to read chart file "+path, err)
	}
	return l.Parse(src, path)
}

var chartSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "chart"},
		{Type: "planet", LabelNames: []string{"name"}},
		{Type: "placement", LabelNames: []string{"planet", "varga"}},
	},
}

// Parse parses chart definition source
func (l *Loader) Parse(src []byte, filename string) (*Bundle, error) {
	file, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("invalid chart definition", diags)
	}

	content, diags := file.Body.Content(chartSchema)
	if diags.HasErrors() {
		return nil, errors.Parsing("invalid chart structure", diags)
	}

	bundle := &Bundle{States: make(map[types.Planet]types.PlanetState)}
	for _, block := range content.Blocks {
		switch block.Type {
		case "chart":
			if bundle.Context != nil {
				return nil, errors.Parsing("multiple chart blocks", nil)
			}
			chart, err := decodeChart(block)
			if err != nil {
				return nil, err
			}
			bundle.Context = chart
		case "planet":
			state, err := decodePlanet(block)
			if err != nil {
				return nil, err
			}
			bundle.States[state.ID] = state
		case "placement":
			placement, err := decodePlacement(block)
			if err != nil {
				return nil, err
			}
			bundle.Vargas = append(bundle.Vargas, placement)
		}
	}
	if bundle.Context == nil {
		return nil, errors.Parsing("chart definition has no chart block", nil)
	}
	return bundle, nil
}

func decodeChart(block *hcl.Block) (*types.ChartContext, error) {
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, errors.Parsing("invalid chart block", diags)
	}

	chart := &types.ChartContext{}
	if err := requireFloat(attrs, "julian_day", &chart.JulianDay); err != nil {
		return nil, err
	}
	if err := optionalFloat(attrs, "geo_lat", &chart.GeoLat); err != nil {
		return nil, err
	}
	if err := optionalFloat(attrs, "geo_lon", &chart.GeoLon); err != nil {
		return nil, err
	}
	if err := optionalFloat(attrs, "ayanamsa", &chart.AyanamsaValue); err != nil {
		return nil, err
	}

	var haveAsc, haveSunrise, haveSunset, haveNext bool
	var err error
	if haveAsc, err = maybeFloat(attrs, "ascendant", &chart.AscendantLongitude); err != nil {
		return nil, err
	}
	if haveSunrise, err = maybeFloat(attrs, "sunrise", &chart.Sunrise); err != nil {
		return nil, err
	}
	if haveSunset, err = maybeFloat(attrs, "sunset", &chart.Sunset); err != nil {
		return nil, err
	}
	if haveNext, err = maybeFloat(attrs, "next_sunrise", &chart.NextSunrise); err != nil {
		return nil, err
	}
	chart.HasSunTimes = haveSunrise && haveSunset && haveNext
	chart.HasHouses = haveAsc

	cusps, haveCusps, err := floatList(attrs, "house_cusps")
	if err != nil {
		return nil, err
	}
	switch {
	case haveCusps && len(cusps) != 12:
		return nil, errors.Input("house_cusps has %d entries, want 12", len(cusps))
	case haveCusps:
		copy(chart.HouseCusps[:], cusps)
	case haveAsc:
		// whole-sign cusps derived from the ascendant
		for i := range chart.HouseCusps {
			chart.HouseCusps[i] = angle.Norm(chart.AscendantLongitude + float64(i)*30)
		}
	}

	if lord, ok, err := stringAttr(attrs, "weekday_lord"); err != nil {
		return nil, err
	} else if ok {
		planet := types.Planet(lord)
		if !planet.Valid() || planet.IsNode() {
			return nil, errors.Input("weekday_lord %q is not a weekday lord", lord)
		}
		chart.WeekdayLord = planet
	}
	if paksha, ok, err := stringAttr(attrs, "paksha"); err != nil {
		return nil, err
	} else if ok {
		switch types.Paksha(paksha) {
		case types.Shukla, types.Krishna:
			chart.Paksha = types.Paksha(paksha)
		default:
			return nil, errors.Input("paksha %q must be Shukla or Krishna", paksha)
		}
	}
	if chart.YearStartWeekday, err = weekdayAttr(attrs, "year_start_weekday"); err != nil {
		return nil, err
	}
	if chart.MonthStartWeekday, err = weekdayAttr(attrs, "month_start_weekday"); err != nil {
		return nil, err
	}
	return chart, nil
}

func decodePlanet(block *hcl.Block) (types.PlanetState, error) {
	planet := types.Planet(block.Labels[0])
	if !planet.Valid() {
		return types.PlanetState{}, errors.Input("unknown planet %q", block.Labels[0])
	}
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return types.PlanetState{}, errors.Parsing("invalid planet block for "+string(planet), diags)
	}

	state := types.PlanetState{ID: planet}
	if err := requireFloat(attrs, "longitude", &state.TrueLongitude); err != nil {
		return types.PlanetState{}, err
	}
	state.MeanLongitude = state.TrueLongitude
	if _, err := maybeFloat(attrs, "mean_longitude", &state.MeanLongitude); err != nil {
		return types.PlanetState{}, err
	}
	if err := optionalFloat(attrs, "latitude", &state.Latitude); err != nil {
		return types.PlanetState{}, err
	}
	if err := optionalFloat(attrs, "speed", &state.Speed); err != nil {
		return types.PlanetState{}, err
	}
	if err := optionalFloat(attrs, "declination", &state.Declination); err != nil {
		return types.PlanetState{}, err
	}
	if state.TrueLongitude < 0 || state.TrueLongitude >= 360 {
		return types.PlanetState{}, errors.Input("longitude %v of %s outside [0, 360)", state.TrueLongitude, planet)
	}
	return state, nil
}

func decodePlacement(block *hcl.Block) (types.VargaPlacement, error) {
	planet := types.Planet(block.Labels[0])
	if !planet.Valid() {
		return types.VargaPlacement{}, errors.Input("unknown planet %q", block.Labels[0])
	}
	varga := types.Varga(block.Labels[1])
	valid := false
	for _, v := range types.SaptavargaSet() {
		if v == varga {
			valid = true
			break
		}
	}
	if !valid {
		return types.VargaPlacement{}, errors.Input("unknown varga %q", block.Labels[1])
	}

	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return types.VargaPlacement{}, errors.Parsing("invalid placement block", diags)
	}

	placement := types.VargaPlacement{Planet: planet, Varga: varga}
	signName, ok, err := stringAttr(attrs, "sign")
	if err != nil {
		return types.VargaPlacement{}, err
	}
	if !ok {
		return types.VargaPlacement{}, errors.Input("placement %s %s has no sign", planet, varga)
	}
	sign, err := signByName(signName)
	if err != nil {
		return types.VargaPlacement{}, err
	}
	placement.Sign = sign
	if err := optionalFloat(attrs, "degree", &placement.Degree); err != nil {
		return types.VargaPlacement{}, err
	}
	if placement.Degree < 0 || placement.Degree >= 30 {
		return types.VargaPlacement{}, errors.Input("placement degree %v outside [0, 30)", placement.Degree)
	}
	return placement, nil
}

func signByName(name string) (types.Sign, error) {
	for s := types.Aries; s <= types.Pisces; s++ {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, errors.Input("unknown sign %q", name)
}

var weekdays = map[string]time.Weekday{
	"Sunday": time.Sunday, "Monday": time.Monday, "Tuesday": time.Tuesday,
	"Wednesday": time.Wednesday, "Thursday": time.Thursday,
	"Friday": time.Friday, "Saturday": time.Saturday,
}

func weekdayAttr(attrs hcl.Attributes, name string) (time.Weekday, error) {
	value, ok, err := stringAttr(attrs, name)
	if err != nil || !ok {
		return time.Sunday, err
	}
	day, known := weekdays[value]
	if !known {
		return time.Sunday, errors.Input("%s %q is not a weekday", name, value)
	}
	return day, nil
}

func attrValue(attrs hcl.Attributes, name string, want cty.Type) (cty.Value, bool, error) {
	attr, ok := attrs[name]
	if !ok {
		return cty.NilVal, false, nil
	}
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, false, errors.Parsing("invalid value for "+name, diags)
	}
	val, err := convert.Convert(val, want)
	if err != nil {
		return cty.NilVal, false, errors.Parsing("invalid value for "+name, err)
	}
	return val, true, nil
}

func requireFloat(attrs hcl.Attributes, name string, out *float64) error {
	ok, err := maybeFloat(attrs, name, out)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Input("missing required attribute %s", name)
	}
	return nil
}

func optionalFloat(attrs hcl.Attributes, name string, out *float64) error {
	_, err := maybeFloat(attrs, name, out)
	return err
}

func maybeFloat(attrs hcl.Attributes, name string, out *float64) (bool, error) {
	val, ok, err := attrValue(attrs, name, cty.Number)
	if err != nil || !ok {
		return ok, err
	}
	if err := gocty.FromCtyValue(val, out); err != nil {
		return false, errors.Parsing("invalid number for "+name, err)
	}
	return true, nil
}

func stringAttr(attrs hcl.Attributes, name string) (string, bool, error) {
	val, ok, err := attrValue(attrs, name, cty.String)
	if err != nil || !ok {
		return "", ok, err
	}
	return val.AsString(), true, nil
}

func floatList(attrs hcl.Attributes, name string) ([]float64, bool, error) {
	val, ok, err := attrValue(attrs, name, cty.List(cty.Number))
	if err != nil || !ok {
		return nil, ok, err
	}
	var out []float64
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		var f float64
		if err := gocty.FromCtyValue(elem, &f); err != nil {
			return nil, false, errors.Parsing("invalid number in "+name, err)
		}
		out = append(out, f)
	}
	return out, true, nil
}
