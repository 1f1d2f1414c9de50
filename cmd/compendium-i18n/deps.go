package main

import (
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/vttbr/compendium-i18n/internal/config"
	"github.com/vttbr/compendium-i18n/internal/orchestrators/localization"
	"github.com/vttbr/compendium-i18n/internal/pkg/clock"
	redisclient "github.com/vttbr/compendium-i18n/internal/redis"
	"github.com/vttbr/compendium-i18n/internal/repositories/folders"
	"github.com/vttbr/compendium-i18n/internal/repositories/panels"
	"github.com/vttbr/compendium-i18n/internal/repositories/settings"
)

// services bundles the wired dependencies the commands share.
type services struct {
	client     redisclient.Client
	bus        events.EventBus
	folderRepo folders.Repository
	localizer  localization.Service
}

// buildServices wires the Redis repositories, the event bus, and the
// localization orchestrator from the loaded configuration.
func buildServices(cfg *config.Config) (*services, error) {
	client, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, err
	}

	clk := clock.New()

	folderRepo, err := folders.NewRedisRepository(&folders.Config{
		Client: client,
		Clock:  clk,
	})
	if err != nil {
		return nil, err
	}

	panelRepo, err := panels.NewRedisRepository(&panels.Config{
		Client: client,
		Clock:  clk,
	})
	if err != nil {
		return nil, err
	}

	settingsRepo, err := settings.NewRedisRepository(&settings.Config{
		Client: client,
	})
	if err != nil {
		return nil, err
	}

	bus := events.NewBus()

	localizer, err := localization.NewOrchestrator(&localization.Config{
		FolderRepo: folderRepo,
		PanelRepo:  panelRepo,
		Settings:   settingsRepo,
		EventBus:   bus,
		FlagScope:  cfg.FlagScope,
	})
	if err != nil {
		return nil, err
	}

	return &services{
		client:     client,
		bus:        bus,
		folderRepo: folderRepo,
		localizer:  localizer,
	}, nil
}
