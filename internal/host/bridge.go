package host

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/tidwall/gjson"

	"github.com/vttbr/compendium-i18n/internal/entities/compendium"
	"github.com/vttbr/compendium-i18n/internal/errors"
	"github.com/vttbr/compendium-i18n/internal/hostevents"
	redisclient "github.com/vttbr/compendium-i18n/internal/redis"
)

// Wire event names used on the host channels.
const (
	wireEventReady       = "ready"
	wireEventRenderPanel = "renderCompendiumDirectory"
	wireEventRefresh     = "render"
)

// BridgeConfig holds the dependencies for the host event bridge
type BridgeConfig struct {
	Client   redisclient.Client
	EventBus events.EventBus

	// EventsChannel carries host notifications into the module
	EventsChannel string
	// RenderChannel carries UI refresh requests back to the host
	RenderChannel string
}

// Validate ensures all required dependencies are provided
func (c *BridgeConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.EventsChannel == "" {
		vb.RequiredField("EventsChannel")
	}
	if c.RenderChannel == "" {
		vb.RequiredField("RenderChannel")
	}

	return vb.Build()
}

// Bridge relays host notifications from a Redis channel onto the event
// bus, and relays the module's UI refresh requests back to the host on
// a second channel.
type Bridge struct {
	client        redisclient.Client
	bus           events.EventBus
	eventsChannel string
	renderChannel string
}

// NewBridge creates a new host event bridge with the provided dependencies
func NewBridge(cfg *BridgeConfig) (*Bridge, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Bridge{
		client:        cfg.Client,
		bus:           cfg.EventBus,
		eventsChannel: cfg.EventsChannel,
		renderChannel: cfg.RenderChannel,
	}, nil
}

// Run relays messages in both directions until the context is canceled
// or the inbound subscription closes.
func (b *Bridge) Run(ctx context.Context) error {
	outbound := b.bus.SubscribeFunc(hostevents.TopicRenderRequested, 0, b.publishRefresh)
	defer func() {
		if err := b.bus.Unsubscribe(outbound); err != nil {
			slog.Warn("Failed to unsubscribe bridge", "error", err)
		}
	}()

	pubsub := b.client.Subscribe(ctx, b.eventsChannel)
	defer func() {
		if err := pubsub.Close(); err != nil {
			slog.Warn("Failed to close host subscription", "error", err)
		}
	}()

	// Block until the subscription is live so callers can publish
	// immediately after Run starts consuming.
	if _, err := pubsub.Receive(ctx); err != nil {
		return errors.Wrapf(err, "failed to subscribe to %s", b.eventsChannel)
	}

	slog.Info("Host event bridge running",
		"events_channel", b.eventsChannel,
		"render_channel", b.renderChannel,
	)

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			b.dispatch(ctx, msg.Payload)
		}
	}
}

// dispatch maps one wire message onto a bus event. Unknown events are
// logged and dropped.
func (b *Bridge) dispatch(ctx context.Context, payload string) {
	if !gjson.Valid(payload) {
		slog.Warn("Dropping malformed host message", "payload", payload)
		return
	}

	name := gjson.Get(payload, "event").String()

	var event events.Event
	switch name {
	case wireEventReady:
		event = events.NewGameEvent(hostevents.TopicReady, hostevents.Module, nil)

	case wireEventRenderPanel:
		panelID := gjson.Get(payload, "panel_id").String()
		if panelID == "" {
			panelID = compendium.PanelCompendiumDirectory
		}
		event = events.NewGameEvent(hostevents.TopicRenderPanel, hostevents.Module, nil)
		event.Context().Set(hostevents.CtxKeyPanelID, panelID)

	default:
		slog.Debug("Ignoring host event", "event", name)
		return
	}

	if err := b.bus.Publish(ctx, event); err != nil {
		slog.Error("Failed to publish host event", "event", name, "error", err)
	}
}

// publishRefresh forwards a UI refresh request to the host channel.
func (b *Bridge) publishRefresh(ctx context.Context, _ events.Event) error {
	payload, err := json.Marshal(map[string]string{"event": wireEventRefresh})
	if err != nil {
		return errors.Wrap(err, "failed to encode refresh request")
	}

	if err := b.client.Publish(ctx, b.renderChannel, payload).Err(); err != nil {
		return errors.Wrapf(err, "failed to publish to %s", b.renderChannel)
	}
	return nil
}
