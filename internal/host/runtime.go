// Package host wires the localization orchestrator to the host's
// lifecycle and UI events: the bus-facing runtime and the Redis
// pub/sub bridge that carries events to and from the host process.
package host

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/vttbr/compendium-i18n/internal/errors"
	"github.com/vttbr/compendium-i18n/internal/hostevents"
	"github.com/vttbr/compendium-i18n/internal/orchestrators/localization"
)

// RuntimeConfig holds the dependencies for the host runtime
type RuntimeConfig struct {
	EventBus  events.EventBus
	Localizer localization.Service
}

// Validate ensures all required dependencies are provided
func (c *RuntimeConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.Localizer == nil {
		vb.RequiredField("Localizer")
	}

	return vb.Build()
}

// Runtime subscribes the localization routines to host events. The
// ready notification triggers the folder rename routine exactly once;
// every panel render notification goes through the label routine.
type Runtime struct {
	bus       events.EventBus
	localizer localization.Service

	readyOnce sync.Once
	mu        sync.Mutex
	subs      []string
}

// NewRuntime creates a new host runtime with the provided dependencies
func NewRuntime(cfg *RuntimeConfig) (*Runtime, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Runtime{
		bus:       cfg.EventBus,
		localizer: cfg.Localizer,
	}, nil
}

// Start registers the event subscriptions.
func (r *Runtime) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.subs = append(r.subs,
		r.bus.SubscribeFunc(hostevents.TopicReady, 0, r.handleReady),
		r.bus.SubscribeFunc(hostevents.TopicRenderPanel, 0, r.handleRenderPanel),
	)

	slog.Info("Host runtime started",
		"module", hostevents.ModuleID,
		"subscriptions", len(r.subs),
	)
}

// Stop removes the event subscriptions.
func (r *Runtime) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.subs {
		if err := r.bus.Unsubscribe(id); err != nil {
			slog.Warn("Failed to unsubscribe", "subscription_id", id, "error", err)
		}
	}
	r.subs = nil
}

// handleReady runs the folder rename routine on the host's one-time
// ready notification. Repeat ready events are ignored.
func (r *Runtime) handleReady(ctx context.Context, _ events.Event) error {
	var err error
	r.readyOnce.Do(func() {
		var output *localization.RenameFoldersOutput
		output, err = r.localizer.RenameFolders(ctx, &localization.RenameFoldersInput{})
		if err != nil {
			slog.Error("Folder localization failed", "error", err)
			return
		}

		slog.Info("Folder localization finished",
			"processed", output.Processed,
			"renamed", output.Renamed,
			"refresh_requested", output.RefreshRequested,
		)
	})
	return err
}

// handleRenderPanel runs the label routine for the panel named in the
// event context. Events without a panel identifier are ignored.
func (r *Runtime) handleRenderPanel(ctx context.Context, e events.Event) error {
	v, ok := e.Context().Get(hostevents.CtxKeyPanelID)
	if !ok {
		return nil
	}
	panelID, ok := v.(string)
	if !ok || panelID == "" {
		return nil
	}

	output, err := r.localizer.TranslateLabels(ctx, &localization.TranslateLabelsInput{
		PanelID: panelID,
	})
	if err != nil {
		slog.Error("Label translation failed", "panel_id", panelID, "error", err)
		return err
	}

	if !output.Skipped && output.Replaced > 0 {
		slog.Debug("Panel labels rewritten", "panel_id", panelID, "replaced", output.Replaced)
	}
	return nil
}
