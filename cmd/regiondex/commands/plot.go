package commands

import (
	"fmt"
	"os"
	"slices"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/regiondex/pkg/regionio"
)

// PlotCommand holds flags for the plot command.
type PlotCommand struct {
	regionsPath string
	configPath  string
	outPath     string
}

// NewPlotCommand creates the plot command.
func NewPlotCommand() *cobra.Command {
	pc := &PlotCommand{}

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render per-reference region counts as an HTML chart",
		RunE: func(_ *cobra.Command, _ []string) error {
			return pc.run()
		},
	}

	cmd.Flags().StringVarP(&pc.regionsPath, "regions", "r", "", "region file (TSV/BED, optionally .lz4)")
	cmd.Flags().StringVarP(&pc.configPath, "config", "c", "", "config file")
	cmd.Flags().StringVarP(&pc.outPath, "out", "o", "regions.html", "output HTML file")

	_ = cmd.MarkFlagRequired("regions")

	return cmd
}

// run counts records per reference and renders a bar chart.
func (pc *PlotCommand) run() error {
	_, records, _, err := loadIndex(pc.configPath, pc.regionsPath)
	if err != nil {
		return err
	}

	references, counts := countByReference(records)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Regions per reference",
			Subtitle: pc.regionsPath,
		}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "regiondex"}),
	)

	data := make([]opts.BarData, len(counts))
	for i, c := range counts {
		data[i] = opts.BarData{Value: c}
	}

	bar.SetXAxis(references)
	bar.AddSeries("regions", data)

	f, createErr := os.Create(pc.outPath)
	if createErr != nil {
		return fmt.Errorf("creating %s: %w", pc.outPath, createErr)
	}
	defer f.Close()

	renderErr := bar.Render(f)
	if renderErr != nil {
		return fmt.Errorf("rendering chart: %w", renderErr)
	}

	return nil
}

// countByReference tallies records per reference, sorted by name.
func countByReference(records []regionio.Record) ([]string, []int) {
	tally := make(map[string]int)

	for _, rec := range records {
		tally[rec.Region.Reference]++
	}

	references := make([]string, 0, len(tally))
	for ref := range tally {
		references = append(references, ref)
	}

	slices.Sort(references)

	counts := make([]int, len(references))
	for i, ref := range references {
		counts[i] = tally[ref]
	}

	return references, counts
}
