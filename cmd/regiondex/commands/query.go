package commands

import (
	"io"
	"os"
	"slices"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/regiondex/pkg/interval"
	"github.com/Sumatoshi-tech/regiondex/pkg/intervaltree"
)

// QueryCommand holds flags for the query command.
type QueryCommand struct {
	regionsPath string
	configPath  string
	queries     []string
	noColor     bool
}

// NewQueryCommand creates the query command.
func NewQueryCommand() *cobra.Command {
	qc := &QueryCommand{}

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run overlap queries against a region file",
		RunE: func(_ *cobra.Command, _ []string) error {
			return qc.run(os.Stdout)
		},
	}

	cmd.Flags().StringVarP(&qc.regionsPath, "regions", "r", "", "region file (TSV/BED, optionally .lz4)")
	cmd.Flags().StringArrayVarP(&qc.queries, "query", "q", nil, "query region, e.g. chr1:100-200 (repeatable)")
	cmd.Flags().StringVarP(&qc.configPath, "config", "c", "", "config file")
	cmd.Flags().BoolVar(&qc.noColor, "no-color", false, "disable colored output")

	_ = cmd.MarkFlagRequired("regions")
	_ = cmd.MarkFlagRequired("query")

	return cmd
}

// run executes all queries and renders one result table per query.
func (qc *QueryCommand) run(w io.Writer) error {
	_, _, tree, err := loadIndex(qc.configPath, qc.regionsPath)
	if err != nil {
		return err
	}

	if qc.noColor {
		color.NoColor = true
	}

	header := color.New(color.FgCyan, color.Bold)
	miss := color.New(color.FgYellow)

	for _, text := range qc.queries {
		query, parseErr := interval.ParseRegion(text)
		if parseErr != nil {
			return parseErr
		}

		pairs := tree.Search(query)

		header.Fprintf(w, "%s: %d overlapping record(s)\n", query, len(pairs))

		if len(pairs) == 0 {
			miss.Fprintln(w, "  no overlaps")

			continue
		}

		renderPairs(w, pairs)
	}

	return nil
}

// renderPairs writes overlap results as a table sorted by region order.
func renderPairs(w io.Writer, pairs []intervaltree.Entry[interval.Region, string]) {
	slices.SortFunc(pairs, func(a, b intervaltree.Entry[interval.Region, string]) int {
		return a.Key.Compare(b.Key)
	})

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Region", "Width", "Name"})

	for _, p := range pairs {
		tbl.AppendRow(table.Row{p.Key.String(), p.Key.Width(), p.Value})
	}

	tbl.Render()
}
