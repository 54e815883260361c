package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"planner/config"
	"planner/database"
	"planner/pkg/logger"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:          "planner",
		Short:        "Content planning API for small businesses",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cfgPath)
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "YAML config file (defaults to $CONFIG_FILE)")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cfgPath)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cfgPath)
			if err != nil {
				return err
			}
			defer logger.Close()
			db, err := database.Open(cfg)
			if err != nil {
				return err
			}
			logger.Log.WithField("driver", cfg.DBDriver).Info("schema migrated")
			return database.Close(db)
		},
	})
	return root
}

// setup loads configuration and initialises logging.
func setup(cfgPath string) (config.AppConfig, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return cfg, err
	}
	if err := logger.InitLogger(cfg.LogLevel, cfg.LogFile); err != nil {
		return cfg, err
	}
	logger.Log.Infof("[cfg] %+v", cfg.Redacted())
	return cfg, nil
}

func serve(parent context.Context, cfgPath string) error {
	// 1) Config + logging
	cfg, err := setup(cfgPath)
	if err != nil {
		return err
	}
	defer logger.Close()

	// 2) Datastore + automigrate
	db, err := database.Open(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)

	// 3) Echo
	e := newServer(cfg, db, nil)

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4) Start
	errCh := make(chan error, 1)
	go func() {
		logger.Log.WithFields(logrus.Fields{"port": cfg.Port, "driver": cfg.DBDriver}).Info("listening")
		errCh <- e.Start(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Log.Info("shutting down")
	return e.Shutdown(shutdownCtx)
}
