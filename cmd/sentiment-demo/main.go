package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Adda-Baaj/sentiment-client/internal/app"
	"github.com/Adda-Baaj/sentiment-client/internal/config"
	"github.com/Adda-Baaj/sentiment-client/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sentiment demo failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.InfoObj("sentiment demo starting", "config", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	demo, err := app.NewDemo(ctx, cfg, log)
	if err != nil {
		logger.ErrorObj("failed to initialize demo", "error", err)
		return err
	}
	defer func() {
		if err := demo.Close(); err != nil {
			logger.ErrorObj("demo shutdown failed", "error", err)
		}
	}()

	if _, err := demo.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.InfoObj("sentiment demo interrupted", "reason", err.Error())
			return nil
		}
		return fmt.Errorf("demo run: %w", err)
	}
	return nil
}
