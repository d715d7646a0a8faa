// servijactl runs database maintenance outside the API process.
//
//	servijactl migrate
//	servijactl seed
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"servija-api/config"
	"servija-api/internal"
	"servija-api/internal/infrastructure/db/postgres"
)

var rootCmd = &cobra.Command{
	Use:           "servijactl",
	Short:         "ServiJá database maintenance",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "servijactl: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDB(cmd.Context(), func(ctx context.Context, _ config.Config, db *pgxpool.Pool, logger *zap.Logger) error {
			n, err := postgres.Migrate(ctx, db, logger)
			if err != nil {
				return err
			}
			fmt.Printf("applied %d migration(s)\n", n)
			return nil
		})
	},
}

// withDB loads the same configuration as the API and hands fn an open pool.
func withDB(
	ctx context.Context,
	fn func(ctx context.Context, cfg config.Config, db *pgxpool.Pool, logger *zap.Logger) error,
) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	logger, err := internal.NewLogger(cfg)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	dsn, err := cfg.DBDSN()
	if err != nil {
		return err
	}
	db, err := postgres.New(ctx, logger, dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(ctx, cfg, db, logger)
}
