package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rvingwithbikes/campground-cli/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "campground-cli",
	Short: "Campground guidebook extraction tool",
	Long:  "Extracts campground entries from the guidebook PDF one at a time, enriches them with Google Places coordinates, and persists verified records to the JSON database.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
