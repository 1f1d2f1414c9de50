// Package hostevents names the host lifecycle and UI events that flow
// over the event bus, and the module entity that sources them.
package hostevents

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Bus topics. Ready and RenderPanel arrive from the host; RenderRequested
// is emitted by this module to ask the host for a UI refresh.
const (
	TopicReady           = "host.ready"
	TopicRenderPanel     = "host.render_panel"
	TopicRenderRequested = "host.render_requested"
)

// Event context keys.
const (
	CtxKeyPanelID = "panel_id"
)

// ModuleID identifies this module to the host; it is also the default
// scope for folder flags.
const ModuleID = "compendium-i18n"

// Module is the core.Entity used as the source of events this module
// publishes.
var Module core.Entity = &moduleEntity{}

type moduleEntity struct{}

func (m *moduleEntity) GetID() string   { return ModuleID }
func (m *moduleEntity) GetType() string { return "module" }
