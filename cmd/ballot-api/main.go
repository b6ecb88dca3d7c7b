package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/betterballot/ballot-api/internal/auth"
	"github.com/betterballot/ballot-api/internal/candidates"
	"github.com/betterballot/ballot-api/internal/config"
	"github.com/betterballot/ballot-api/internal/database"
	"github.com/betterballot/ballot-api/internal/elections"
	"github.com/betterballot/ballot-api/internal/geocode"
	"github.com/betterballot/ballot-api/internal/logging"
	"github.com/betterballot/ballot-api/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ballot-api",
		Short: "Better Ballot backend service",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}

	setupFlags(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupFlags(cmd *cobra.Command) {
	config.ApplyDefaults(viper.GetViper())
	defaults := config.NewViper()
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to configuration file")
	cmd.PersistentFlags().String("http-address", defaults.GetString("http.address"), "HTTP listen address")
	cmd.PersistentFlags().String("database-path", defaults.GetString("database.path"), "SQLite database path")
	cmd.PersistentFlags().Int("token-ttl-hours", defaults.GetInt("token.ttl_hours"), "Admin token TTL in hours")
	cmd.PersistentFlags().String("log-level", defaults.GetString("log.level"), "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("admin-username", defaults.GetString("admin.username"), "Admin username")
	cmd.PersistentFlags().String("admin-password", "", "Admin password (overrides env)")
	cmd.PersistentFlags().String("signing-secret", "", "Token signing secret (overrides env)")
	cmd.PersistentFlags().String("places-api-key", "", "Google Places API key (overrides env)")

	bindFlag(cmd, "http.address", "http-address")
	bindFlag(cmd, "database.path", "database-path")
	bindFlag(cmd, "token.ttl_hours", "token-ttl-hours")
	bindFlag(cmd, "log.level", "log-level")
	bindFlag(cmd, "admin.username", "admin-username")
	bindFlag(cmd, "admin.password", "admin-password")
	bindFlag(cmd, "auth.signing_secret", "signing-secret")
	bindFlag(cmd, "places.api_key", "places-api-key")
}

func bindFlag(cmd *cobra.Command, key, flag string) {
	if err := viper.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	if err := viper.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if cfgFile != "" && errors.As(err, &configNotFound) {
			return err
		}
	}

	return nil
}

func runServer(ctx context.Context) error {
	appConfig, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(appConfig.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	db, err := database.OpenSQLite(appConfig.DatabasePath, logger)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	tokenManager := auth.NewTokenIssuer(auth.TokenIssuerConfig{
		SigningSecret: []byte(appConfig.SigningSecret),
		Issuer:        "ballot-auth",
		Audience:      "ballot-api",
		TokenTTL:      appConfig.TokenTTL,
	})

	credentials, err := auth.NewCredentialVerifier(appConfig.AdminUsername, appConfig.AdminPassword)
	if err != nil {
		return err
	}

	electionService, err := elections.NewService(elections.ServiceConfig{
		Database: db,
		Logger:   logger,
	})
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

	var autocomplete server.AutocompleteClient
	if appConfig.PlacesAPIKey != "" {
		client, err := geocode.NewClient(geocode.ClientConfig{
			APIKey:  appConfig.PlacesAPIKey,
			BaseURL: appConfig.PlacesBaseURL,
		})
		if err != nil {
			return err
		}
		autocomplete = client
	} else {
		logger.Warn("places api key not configured, autocomplete disabled")
	}

	handler, err := server.NewHTTPHandler(server.Dependencies{
		Candidates:   candidateService,
		Elections:    electionService,
		TokenManager: tokenManager,
		Credentials:  credentials,
		Autocomplete: autocomplete,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:    appConfig.HTTPAddress,
		Handler: handler,
	}

	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("address", appConfig.HTTPAddress))
		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-signalCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
