package cmd

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/edgesim/edgesim/sim/sweep"
)

var (
	// CLI flags for plotting swept results
	plotInput string // Results CSV produced by the sweep subcommand
	plotOut   string // Output image path
)

// plotCmd renders hit-ratio curves from a sweep results file
var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot hit ratio versus the swept parameter, one line per policy",
	Run: func(cmd *cobra.Command, args []string) {
		table, err := sweep.ReadResults(plotInput)
		if err != nil {
			logrus.Fatalf("Unable to read results: %v", err)
		}
		if err := renderHitRatioPlot(table, plotOut); err != nil {
			logrus.Fatalf("Unable to render plot: %v", err)
		}
		fmt.Printf("Plot written to %s\n", plotOut)
	},
}

// renderHitRatioPlot groups rows by policy and draws one hit-ratio line per
// policy against the swept parameter.
func renderHitRatioPlot(table *sweep.ResultTable, out string) error {
	p := plot.New()
	p.Title.Text = "Hit Ratio vs " + table.SweptColumn
	p.X.Label.Text = table.SweptColumn
	p.Y.Label.Text = "Hit Ratio"
	p.Legend.Top = true

	// Group rows by policy, preserving first-seen order so the legend is stable.
	var order []string
	groups := make(map[string]plotter.XYs)
	for _, row := range table.Rows {
		x, err := strconv.ParseFloat(row.SweptValue, 64)
		if err != nil {
			return fmt.Errorf("swept value %q is not numeric: %w", row.SweptValue, err)
		}
		if _, ok := groups[row.Policy]; !ok {
			order = append(order, row.Policy)
		}
		groups[row.Policy] = append(groups[row.Policy], plotter.XY{X: x, Y: row.HitRatio})
	}

	args := make([]interface{}, 0, 2*len(order))
	for _, policy := range order {
		args = append(args, policy, groups[policy])
	}
	if err := plotutil.AddLinePoints(p, args...); err != nil {
		return fmt.Errorf("failed to add hit-ratio lines: %w", err)
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, out)
}

// init sets up CLI flags for the plot subcommand
func init() {
	plotCmd.Flags().StringVar(&plotInput, "input", "results/cache_size_results.csv", "Sweep results CSV to plot")
	plotCmd.Flags().StringVar(&plotOut, "out", "results/hit_ratio.png", "Output image path (png, svg, pdf by extension)")

	rootCmd.AddCommand(plotCmd)
}
