// Package main is the entry point for the surfview desktop viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/surfview/internal/app"
	"github.com/Faultbox/surfview/internal/config"
	"github.com/Faultbox/surfview/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== surfview ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	surfaces, err := app.DemoSurfaces()
	if err != nil {
		logger.Error("failed to build demo surface", zap.Error(err))
		os.Exit(1)
	}
	if _, err := a.Viewer().Load(surfaces...); err != nil {
		logger.Error("failed to load surface", zap.Error(err))
		os.Exit(1)
	}

	if err := a.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("viewer closed normally")
}
