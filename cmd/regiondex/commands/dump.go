package commands

import (
	"io"
	"os"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/regiondex/pkg/interval"
	"github.com/Sumatoshi-tech/regiondex/pkg/intervaltree"
)

// DumpCommand holds flags for the dump command.
type DumpCommand struct {
	regionsPath string
	configPath  string
	raw         bool
}

// NewDumpCommand creates the dump command.
func NewDumpCommand() *cobra.Command {
	dc := &DumpCommand{}

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "List indexed nodes sorted by start position",
		RunE: func(_ *cobra.Command, _ []string) error {
			return dc.run(os.Stdout)
		},
	}

	cmd.Flags().StringVarP(&dc.regionsPath, "regions", "r", "", "region file (TSV/BED, optionally .lz4)")
	cmd.Flags().StringVarP(&dc.configPath, "config", "c", "", "config file")
	cmd.Flags().BoolVar(&dc.raw, "raw", false, "plain one-line-per-node output")

	_ = cmd.MarkFlagRequired("regions")

	return cmd
}

// run renders every node of the index with its value bag.
func (dc *DumpCommand) run(w io.Writer) error {
	_, _, tree, err := loadIndex(dc.configPath, dc.regionsPath)
	if err != nil {
		return err
	}

	if dc.raw {
		return tree.PrintNodes(w)
	}

	grouped := groupByKey(tree.Get())

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Region", "Values"})

	for _, g := range grouped {
		tbl.AppendRow(table.Row{g.key.String(), g.values})
	}

	tbl.Render()

	return nil
}

// keyGroup is one node's key with its collected values, for rendering.
type keyGroup struct {
	key    interval.Region
	values []string
}

// groupByKey folds flat pairs back into per-key groups sorted by key order.
func groupByKey(pairs []intervaltree.Entry[interval.Region, string]) []keyGroup {
	index := make(map[interval.Region]int)

	var grouped []keyGroup

	for _, p := range pairs {
		i, ok := index[p.Key]
		if !ok {
			i = len(grouped)
			index[p.Key] = i

			grouped = append(grouped, keyGroup{key: p.Key})
		}

		grouped[i].values = append(grouped[i].values, p.Value)
	}

	slices.SortFunc(grouped, func(a, b keyGroup) int {
		return a.key.Compare(b.key)
	})

	return grouped
}
