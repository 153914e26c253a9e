// Package main is the operator CLI: schema migration, counter reconciliation and organization verification.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/churchserve/backend/config"
	"github.com/churchserve/backend/internal/opportunities"
	"github.com/churchserve/backend/internal/organizations"
	"github.com/churchserve/backend/internal/signups"
	"github.com/churchserve/backend/internal/worker"
	"github.com/churchserve/backend/pkg/database"
)

var (
	dsn    string
	pool   *pgxpool.Pool
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "churchserve-admin",
	Short:         "Administrate the volunteer matching backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if dsn == "" {
			dsn = cfg.Database.DSN()
		}
		pool, err = database.NewPostgresPool(cmd.Context(), dsn, database.PoolOptions{MaxConns: 2}, logger)
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		if pool != nil {
			pool.Close()
		}
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the embedded schema migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := database.Migrate(cmd.Context(), pool); err != nil {
			return fmt.Errorf("migration: %w", err)
		}
		cmd.Println("migrations applied")
		return nil
	},
}

var reconcileOpportunity string

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Recompute current_volunteers from live signups",
	Long:  "Recompute current_volunteers for every opportunity, or for one with --opportunity.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		r := worker.NewReconciler(signups.NewRepository(pool), nil, logger)
		if reconcileOpportunity != "" {
			id, err := uuid.Parse(reconcileOpportunity)
			if err != nil {
				return fmt.Errorf("invalid opportunity id: %w", err)
			}
			repaired, err := r.ReconcileOne(cmd.Context(), id, "admin")
			if err != nil {
				return err
			}
			cmd.Printf("opportunity %s repaired: %t\n", id, repaired)
			return nil
		}
		n, err := r.Sweep(cmd.Context())
		if err != nil {
			return err
		}
		cmd.Printf("%d opportunities repaired\n", n)
		return nil
	},
}

var verifyOrgCmd = &cobra.Command{
	Use:   "verify-org <organization-id>",
	Short: "Mark an organization as verified",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid organization id: %w", err)
		}
		svc := organizations.NewService(organizations.NewRepository(pool), opportunities.NewRepository(pool), logger)
		if err := svc.Verify(cmd.Context(), id); err != nil {
			return err
		}
		cmd.Printf("organization %s verified\n", id)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dsn, "db", "", "PostgreSQL connection string (defaults to DATABASE_URL / DB_* settings)")
	reconcileCmd.Flags().StringVar(&reconcileOpportunity, "opportunity", "", "Reconcile only this opportunity ID")
	rootCmd.AddCommand(migrateCmd, reconcileCmd, verifyOrgCmd)
}

func main() {
	logger = newLogger()
	defer logger.Sync()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
