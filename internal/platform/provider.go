package platform

import (
	"github.com/mj1618/a11ytree/internal/config"
	"github.com/mj1618/a11ytree/internal/uitree"
)

// Provider bundles the collaborators a tree host needs.
type Provider struct {
	Window        *Window
	Events        *EventLog
	Screenshotter Screenshotter
}

// NewProvider returns a headless Provider whose window is placed according
// to cfg. Events are recorded only while listening is true.
func NewProvider(cfg config.ViewportConfig, listening bool) *Provider {
	return &Provider{
		Window:        NewWindow(uitree.Point{X: cfg.X, Y: cfg.Y}, cfg.Width, cfg.Height),
		Events:        NewEventLog(listening),
		Screenshotter: NewRenderer(LabelNames),
	}
}
