package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emmaderbe/SocialApp/internal/config"
	"github.com/emmaderbe/SocialApp/pkg/logger"
	"github.com/emmaderbe/SocialApp/pkg/snowflake"
)

var (
	cfg      config.Config
	logLevel string
	nodeID   int64
)

var rootCmd = &cobra.Command{
	Use:          "socialfeed",
	Short:        "Paginated social feed sync engine",
	Long:         "Fetches a paginated post feed, keeps it in a local store and serves it over HTTP.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		logger.Init(logger.ParseLevel(cfg.LogLevel))

		if err := snowflake.Init(nodeID); err != nil {
			return err
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); overrides SOCIALFEED_LOG_LEVEL")
	rootCmd.PersistentFlags().Int64Var(&nodeID, "node", 0, "snowflake node id (0-1023)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(postsCmd)
}
