package main

import (
	"context"
	"os"

	"github.com/betterballot/ballot-api/internal/candidates"
	"github.com/betterballot/ballot-api/internal/config"
	"github.com/betterballot/ballot-api/internal/database"
	"github.com/betterballot/ballot-api/internal/elections"
	"github.com/betterballot/ballot-api/internal/logging"
	"github.com/betterballot/ballot-api/internal/seed"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ballot-seed",
		Short: "Load the bundled Better Ballot dataset into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context())
		},
	}

	config.ApplyDefaults(viper.GetViper())
	defaults := config.NewViper()
	rootCmd.PersistentFlags().String("database-path", defaults.GetString("database.path"), "SQLite database path")
	rootCmd.PersistentFlags().String("log-level", defaults.GetString("log.level"), "Log level (debug, info, warn, error)")
	bindFlag(rootCmd, "database.path", "database-path")
	bindFlag(rootCmd, "log.level", "log-level")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func bindFlag(cmd *cobra.Command, key, flag string) {
	if err := viper.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func runSeed(ctx context.Context) error {
	logger, err := logging.NewLogger(viper.GetString("log.level"))
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	db, err := database.OpenSQLite(viper.GetString("database.path"), logger)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	electionService, err := elections.NewService(elections.ServiceConfig{Database: db, Logger: logger})
	if err != nil {
		return err
	}
	candidateService, err := candidates.NewService(candidates.ServiceConfig{
		Database: db,
		Assigner: electionService,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	return seed.Run(ctx, db, candidateService, logger)
}
