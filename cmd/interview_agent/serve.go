package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/omkar-nanda-ditstek/AI/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes resume upload, interview and scoring endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 8000, "Port to listen on")
	serveCmd.Flags().String("backend", "memory", "Storage backend (memory, postgres, mongo)")
	serveCmd.Flags().String("provider", "gemini", "Generation provider (gemini, vertex, ollama, openai, simple)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := newApp(ctx, appConfig, appLogger)
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := appConfig
	srv := server.New(a.svc, server.Config{
		Addr:            cfg.Server.Addr(),
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		MaxUploadBytes:  cfg.Upload.MaxBytes,
		RateLimit:       cfg.RateLimit.Limiter(),
	}, appLogger)

	return srv.Start(ctx)
}
