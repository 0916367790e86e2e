// Package cmd - aspects command
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// aspectsCmd lists every aspect in a chart
var aspectsCmd = &cobra.Command{
	Use:   "aspects [chart file]",
	Short: "List the planetary and sign aspects in a chart",
	Args:  cobra.ExactArgs(1),
	RunE:  runAspects,
}

func runAspects(cmd *cobra.Command, args []string) error {
	report, err := computeReport(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FROM\tTO\tFORM\tHOUSE\tVIRUPAS\tSIGNED")
	for _, r := range report.Aspects {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
			r.From, r.To, r.Form, r.HouseDistance,
			r.Virupas.StringFixed(2), r.Signed.StringFixed(2))
	}
	return tw.Flush()
}
