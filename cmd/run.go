package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jekabolt/affiliate-dashboard/app"
	"github.com/jekabolt/affiliate-dashboard/config"
	"github.com/jekabolt/affiliate-dashboard/log"
)

const shutdownTimeout = 15 * time.Second

// loadConfig reads the config and installs the configured logger as the default.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("cannot load a config %v", err.Error())
	}
	slog.SetDefault(log.New(cfg.Logger))
	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := slog.Default()

	a := app.New(cfg)
	if err := a.Start(ctx); err != nil {
		return fmt.Errorf("cannot start the application %v", err.Error())
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	select {
	case s := <-sigCh:
		logger.With("signal", s.String()).Warn("signal received, exiting")
		stopCtx, stop := context.WithTimeout(ctx, shutdownTimeout)
		defer stop()
		a.Stop(stopCtx)
		logger.Info("application exited")
	case <-a.Done():
		logger.Error("application exited")
	}

	return nil
}
