package main

import (
	"context"
	"database/sql"
	root "domainchecker"
	"domainchecker/internal/config"
	"domainchecker/pkg/logger"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateSchema applies the embedded domain schema migrations.
func migrateSchema(ctx context.Context, db *sql.DB) error {
	migrations, err := fs.Sub(root.Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("could not open embedded migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		return fmt.Errorf("could not create goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("could not apply schema migrations: %w", err)
	}
	for _, res := range results {
		logger.Info(ctx, "applied schema migration",
			zap.Int64("version", res.Source.Version),
			zap.Duration("duration", res.Duration))
	}

	return nil
}

// migrateQueue brings the River job tables to the latest version.
func migrateQueue(ctx context.Context, db *sql.DB) error {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river queue migrator: %w", err)
	}

	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	if err != nil {
		return fmt.Errorf("could not migrate river queue tables: %w", err)
	}
	for _, v := range res.Versions {
		logger.Info(ctx, "applied river queue migration",
			zap.Int("version", v.Version),
			zap.Duration("duration", v.Duration))
	}

	return nil
}

// migrateCommand constructs the 'migrate' subcommand that applies the domain
// schema and the job queue migrations.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db := strg.DB.(*sql.DB) //nolint: forcetypeassert
			if err := migrateSchema(ctx, db); err != nil {
				logger.Fatal(ctx, "could not migrate database", zap.Error(err))
			}

			if skip, _ := cmd.Flags().GetBool("skip-queue"); skip {
				return
			}
			if err := migrateQueue(ctx, db); err != nil {
				logger.Fatal(ctx, "could not migrate river queue", zap.Error(err))
			}
		},
	}

	cmd.Flags().Bool("skip-queue", false, "Only apply the domain schema migrations")

	return cmd
}
