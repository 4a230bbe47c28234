// Package main provides the entry point for the interview agent CLI and HTTP
// API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/omkar-nanda-ditstek/AI/internal/config"
	"github.com/omkar-nanda-ditstek/AI/internal/logger"
)

var (
	configFile string
	debugLog   bool
	jsonLog    bool

	// Set by PersistentPreRunE for every command.
	appConfig *config.Config
	appLogger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "interview_agent",
	Short:         "Resume parsing and AI interview agent",
	Long:          "Interview agent extracts candidate profiles from resumes and runs adaptive technical interviews, over a REST API or interactively.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		opts := []config.Option{
			config.WithFlag("log.debug", cmd.Flags().Lookup("debug")),
			config.WithFlag("log.json", cmd.Flags().Lookup("json")),
		}
		if f := cmd.Flags().Lookup("port"); f != nil {
			opts = append(opts, config.WithFlag("server.port", f))
		}
		if f := cmd.Flags().Lookup("backend"); f != nil {
			opts = append(opts, config.WithFlag("storage.backend", f))
		}
		if f := cmd.Flags().Lookup("provider"); f != nil {
			opts = append(opts, config.WithFlag("llm.provider", f))
		}

		cfg, err := config.Load(configFile, opts...)
		if err != nil {
			return err
		}
		log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
		if err != nil {
			return err
		}
		appConfig, appLogger = cfg, log
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if appLogger != nil {
			_ = appLogger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to a YAML or JSON config file")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json", false, "Write logs as JSON")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
