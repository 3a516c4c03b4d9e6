package config

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/lifeline-app/lifeline/pkg/domain/interfaces"
	"github.com/lifeline-app/lifeline/pkg/repository/asset"
	"github.com/lifeline-app/lifeline/pkg/utils/logging"
)

// Guide holds CLI flags for the emergency guide dataset
type Guide struct {
	dataDir        string
	dataPath       string
	reloadInterval time.Duration
}

// Flags returns CLI flags for guide dataset configuration
func (g *Guide) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "guide-data-dir",
			Usage:       "Directory holding the guide dataset (default: bundled data)",
			Sources:     cli.EnvVars("LIFELINE_GUIDE_DATA_DIR"),
			Destination: &g.dataDir,
		},
		&cli.StringFlag{
			Name:        "guide-data-path",
			Usage:       "Dataset path within the asset store",
			Value:       asset.DefaultGuidePath,
			Sources:     cli.EnvVars("LIFELINE_GUIDE_DATA_PATH"),
			Destination: &g.dataPath,
		},
		&cli.DurationFlag{
			Name:        "guide-reload-interval",
			Usage:       "Reload interval for directory-backed datasets (0 to disable)",
			Sources:     cli.EnvVars("LIFELINE_GUIDE_RELOAD_INTERVAL"),
			Destination: &g.reloadInterval,
		},
	}
}

// Configure returns the asset store and dataset path
func (g *Guide) Configure(ctx context.Context) (interfaces.AssetStore, string) {
	if g.dataDir != "" {
		logging.From(ctx).Info("Using directory-backed guide dataset",
			"dir", g.dataDir, "path", g.dataPath)
		return asset.NewDir(g.dataDir), g.dataPath
	}

	logging.From(ctx).Info("Using bundled guide dataset", "path", g.dataPath)
	return asset.NewBundle(), g.dataPath
}

// ReloadEnabled reports whether the periodic reload worker should run.
// Reloading only makes sense for directory-backed datasets.
func (g *Guide) ReloadEnabled() bool {
	return g.dataDir != "" && g.reloadInterval > 0
}

// ReloadInterval returns the configured reload interval
func (g *Guide) ReloadInterval() time.Duration {
	return g.reloadInterval
}
