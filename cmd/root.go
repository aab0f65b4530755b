package cmd

import (
	"fmt"
	"os"

	"treeboard/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "treeboard",
	Short: "Inventory Tree Dashboard",
	Long: `Treeboard aggregates the asset inventory from the emulator database
and object storage into a single merged tree and serves it as a live
dashboard. The tree is rebuilt on demand and survives upstream failures
by serving the last known-good snapshot.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Report through the standard structured logger; console format
		// matches CLI expectations, debug level gives readable timestamps.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare).
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
