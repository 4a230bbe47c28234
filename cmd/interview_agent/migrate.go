package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omkar-nanda-ditstek/AI/internal/config"
	"github.com/omkar-nanda-ditstek/AI/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply PostgreSQL schema migrations",
	Long:  "Apply the embedded goose migrations to the database at storage.database-url and report the schema version.",
	RunE:  runMigrate,
}

var migrateStatus bool

func init() {
	migrateCmd.Flags().BoolVar(&migrateStatus, "status", false, "Only print the current schema version")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	url := appConfig.Storage.DatabaseURL
	if url == "" {
		return errors.New("database URL is required (set DATABASE_URL or storage.database-url)")
	}
	if appConfig.Storage.Backend != config.BackendPostgres {
		appLogger.Warn("storage backend is not postgres; migrating anyway")
	}

	database, err := db.Connect(ctx, url)
	if err != nil {
		return err
	}
	defer database.Close()

	if !migrateStatus {
		if err := database.Migrate(ctx); err != nil {
			return err
		}
	}

	version, err := database.SchemaVersion(ctx)
	if err != nil {
		return err
	}
	files, err := db.MigrationFiles()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Schema version %d (%d migrations available)\n", version, len(files))
	return nil
}
