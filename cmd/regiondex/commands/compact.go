package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/regiondex/pkg/regionio"
)

// CompactCommand holds flags for the compact command.
type CompactCommand struct {
	inPath  string
	outPath string
}

// NewCompactCommand creates the compact command.
func NewCompactCommand() *cobra.Command {
	cc := &CompactCommand{}

	cmd := &cobra.Command{
		Use:   "compact",
		Short: "Rewrite a region file LZ4-compressed",
		RunE: func(_ *cobra.Command, _ []string) error {
			return cc.run()
		},
	}

	cmd.Flags().StringVarP(&cc.inPath, "in", "i", "", "input region file")
	cmd.Flags().StringVarP(&cc.outPath, "out", "o", "", "output file; a .lz4 suffix enables compression")

	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

// run reads all records and writes them to the output path.
func (cc *CompactCommand) run() error {
	records, err := regionio.LoadFile(cc.inPath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", cc.inPath, err)
	}

	saveErr := regionio.SaveFile(cc.outPath, records)
	if saveErr != nil {
		return saveErr
	}

	slog.Info("region file rewritten", "in", cc.inPath, "out", cc.outPath, "records", len(records))

	return nil
}
