package cmd

import (
	"context"
	"fmt"

	"treeboard/core/config"
	"treeboard/core/database"
	"treeboard/core/logger"
	"treeboard/core/storage"
	"treeboard/core/treecache"
	"treeboard/feature/dashboard"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var forceRefresh bool

// refreshCmd rebuilds the tree once and reports the result.
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Rebuild the inventory tree once and print a summary",
	Long: `Rebuild the inventory tree from the configured sources and print
root and node counts.

Examples:
  # Refresh, using the development cache when enabled
  treeboard refresh

  # Skip the cache and refetch from the upstream sources
  treeboard refresh --force`,
	RunE: runRefresh,
}

func init() {
	refreshCmd.Flags().BoolVar(&forceRefresh, "force", false, "Skip the development cache and refetch")
	RootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	var db *gorm.DB
	if conn, err := database.Connect(cfg.Database); err != nil {
		l.Warn("Optional database connection failed", zap.Error(err))
	} else {
		db = conn
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	var cache dashboard.Cache
	if cfg.Server.IsDevelopment() {
		cache = treecache.NewStore(client, cfg.Cache, l)
	}

	feature := dashboard.NewFeature(client, cfg.Storage.Bucket, cache, db, l)
	svc := feature.Service()

	l.Info("Refreshing inventory tree", zap.Bool("force", forceRefresh))
	svc.Invalidate(ctx, forceRefresh)

	current := svc.CurrentTree()
	l.Info("Refresh finished",
		zap.Int("roots", len(current.Roots)),
		zap.Int("nodes", current.NodeCount()),
		zap.Duration("took", svc.LastLoadDuration()),
	)

	if current.IsEmpty() {
		l.Warn("Tree is empty; check upstream sources and credentials")
	}
	return nil
}
