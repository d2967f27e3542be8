// Package commands implements CLI command handlers for regiondex.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Sumatoshi-tech/regiondex/pkg/config"
	"github.com/Sumatoshi-tech/regiondex/pkg/interval"
	"github.com/Sumatoshi-tech/regiondex/pkg/intervaltree"
	"github.com/Sumatoshi-tech/regiondex/pkg/regionio"
)

// setupLogging installs a text slog handler at the configured level.
func setupLogging(level string) {
	var lvl slog.Level

	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}

// loadIndex loads configuration and a region file and indexes the records
// into an interval tree.
func loadIndex(configPath, regionsPath string) (*config.Config, []regionio.Record, *intervaltree.Tree[interval.Region, string], error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	setupLogging(cfg.Logging.Level)

	records, loadErr := regionio.LoadFile(regionsPath)
	if loadErr != nil {
		return nil, nil, nil, fmt.Errorf("loading %s: %w", regionsPath, loadErr)
	}

	tree := regionio.BuildTree(records,
		intervaltree.WithRebalanceThreshold[interval.Region, string](cfg.Tree.RebalanceThreshold))

	slog.Debug("region index built",
		"records", len(records),
		"nodes", tree.CountNodes(),
		"threshold", cfg.Tree.RebalanceThreshold)

	return cfg, records, tree, nil
}
