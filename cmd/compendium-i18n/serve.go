package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vttbr/compendium-i18n/internal/config"
	"github.com/vttbr/compendium-i18n/internal/host"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the localization service",
	Long: `Run the localization service: listen for host events, rename
compendium folders on startup, and rewrite panel labels on render.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, stopping")
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	svcs, err := buildServices(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svcs.client.Close(); err != nil {
			slog.Warn("Failed to close redis client", "error", err)
		}
	}()

	runtime, err := host.NewRuntime(&host.RuntimeConfig{
		EventBus:  svcs.bus,
		Localizer: svcs.localizer,
	})
	if err != nil {
		return err
	}

	bridge, err := host.NewBridge(&host.BridgeConfig{
		Client:        svcs.client,
		EventBus:      svcs.bus,
		EventsChannel: cfg.EventsChannel,
		RenderChannel: cfg.RenderChannel,
	})
	if err != nil {
		return err
	}

	runtime.Start()
	defer runtime.Stop()

	slog.Info("Localization service running", "redis", cfg.RedisAddr)

	if err := bridge.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	slog.Info("Localization service stopped")
	return nil
}
