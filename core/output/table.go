package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"shadbala/core/engine"
	"shadbala/core/types"
)

// TableFormatter renders a report as aligned text tables
type TableFormatter struct{}

// NewTableFormatter creates a table formatter
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{}
}

// Format returns the format type
func (f *TableFormatter) Format() Format {
	return FormatTable
}

// Render writes the ranked strength table, the war and partial-result
// notes, and optionally the per-component breakdowns
func (f *TableFormatter) Render(w io.Writer, report *engine.Report, opts Options) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "RANK\tPLANET\tSTHANA\tDIG\tKALA\tCHESHTA\tNAISARGIKA\tDRIG\tTOTAL\tRUPAS\tREQUIRED\tRATIO\tSUFFICIENT")
	for _, r := range report.Ranked() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Rank, r.Planet,
			two(r.Sthana.Value), two(r.Dig.Value), two(r.Kala.Value),
			two(r.Cheshta.Value), two(r.Naisargika.Value), two(r.Drig.Value),
			two(r.CorrectedPinda), two(r.Rupas),
			two(r.MinimumRequired), two(r.RelativeRatio),
			yesNo(r.IsSufficient))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(report.Wars) > 0 {
		fmt.Fprintln(w)
		for _, war := range report.Wars {
			fmt.Fprintf(w, "planetary war: %s vs %s\n", war.First, war.Second)
		}
	}

	var partial []types.Planet
	for _, p := range types.TruePlanets() {
		if o, ok := report.Outcomes[p]; ok && o.Result != nil && !o.Result.Complete() {
			partial = append(partial, p)
		}
	}
	if len(partial) > 0 {
		fmt.Fprintln(w)
		for _, p := range partial {
			r := report.Outcomes[p].Result
			fmt.Fprintf(w, "%s: incomplete, missing %s\n", p, strings.Join(r.Unavailable, ", "))
		}
	}

	if opts.ShowBreakdown {
		if err := f.renderBreakdowns(w, report); err != nil {
			return err
		}
	}
	return nil
}

func (f *TableFormatter) renderBreakdowns(w io.Writer, report *engine.Report) error {
	for _, r := range report.Ranked() {
		fmt.Fprintf(w, "\n%s\n", r.Planet)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, name := range []string{
			types.ComponentSthana, types.ComponentDig, types.ComponentKala,
			types.ComponentCheshta, types.ComponentNaisargika, types.ComponentDrig,
		} {
			component, _ := r.Component(name)
			fmt.Fprintf(tw, "  %s\t%s\t\n", component.Name, two(component.Value))
			for _, term := range component.Breakdown {
				fmt.Fprintf(tw, "    %s\t%s\t\n", term.Name, two(term.Value))
			}
		}
		fmt.Fprintf(tw, "  Ishta Phala\t%s\t%s\n", two(r.IshtaPhala), engine.PhalaGrade(r.IshtaPhala))
		fmt.Fprintf(tw, "  Kashta Phala\t%s\t%s\n", two(r.KashtaPhala), engine.PhalaGrade(r.KashtaPhala))
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func two(v decimal.Decimal) string {
	return v.StringFixed(2)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
