package compendium

import "time"

// PanelCompendiumDirectory is the identifier of the only panel whose
// labels this module rewrites.
const PanelCompendiumDirectory = "compendium-directory"

// Panel is a snapshot of a rendered host UI panel: its identifier and
// the visible section labels, in display order.
type Panel struct {
	ID        string    `json:"id"`
	Labels    []string  `json:"labels"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy of the panel.
func (p *Panel) Clone() *Panel {
	out := *p
	out.Labels = append([]string(nil), p.Labels...)
	return &out
}
