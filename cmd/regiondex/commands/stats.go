package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// IndexStats summarizes an indexed region file.
type IndexStats struct {
	Records      int    `yaml:"records"`
	DistinctKeys int    `yaml:"distinct_keys"`
	Values       int    `yaml:"values"`
	References   int    `yaml:"references"`
	TotalWidth   int64  `yaml:"total_width"`
	Source       string `yaml:"source"`
}

// StatsCommand holds flags for the stats command.
type StatsCommand struct {
	regionsPath string
	configPath  string
	format      string
}

// NewStatsCommand creates the stats command.
func NewStatsCommand() *cobra.Command {
	sc := &StatsCommand{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize an indexed region file",
		RunE: func(_ *cobra.Command, _ []string) error {
			return sc.run(os.Stdout)
		},
	}

	cmd.Flags().StringVarP(&sc.regionsPath, "regions", "r", "", "region file (TSV/BED, optionally .lz4)")
	cmd.Flags().StringVarP(&sc.configPath, "config", "c", "", "config file")
	cmd.Flags().StringVarP(&sc.format, "format", "f", "", "output format: text or yaml (default from config)")

	_ = cmd.MarkFlagRequired("regions")

	return cmd
}

// run computes and renders index statistics.
func (sc *StatsCommand) run(w io.Writer) error {
	cfg, records, tree, err := loadIndex(sc.configPath, sc.regionsPath)
	if err != nil {
		return err
	}

	stats := IndexStats{
		Records:      len(records),
		DistinctKeys: tree.CountNodes(),
		Values:       tree.Size(),
		Source:       sc.regionsPath,
	}

	references := make(map[string]struct{})

	for _, rec := range records {
		references[rec.Region.Reference] = struct{}{}
		stats.TotalWidth += rec.Region.Width()
	}

	stats.References = len(references)

	format := sc.format
	if format == "" {
		format = cfg.Output.Format
	}

	if format == "yaml" {
		out, marshalErr := yaml.Marshal(stats)
		if marshalErr != nil {
			return fmt.Errorf("encoding stats: %w", marshalErr)
		}

		_, err = w.Write(out)

		return err
	}

	fmt.Fprintf(w, "source:        %s\n", stats.Source)
	fmt.Fprintf(w, "records:       %s\n", humanize.Comma(int64(stats.Records)))
	fmt.Fprintf(w, "distinct keys: %s\n", humanize.Comma(int64(stats.DistinctKeys)))
	fmt.Fprintf(w, "values:        %s\n", humanize.Comma(int64(stats.Values)))
	fmt.Fprintf(w, "references:    %s\n", humanize.Comma(int64(stats.References)))
	fmt.Fprintf(w, "total width:   %s positions\n", humanize.Comma(stats.TotalWidth))

	return nil
}
