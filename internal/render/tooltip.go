package render

import (
	"sync"

	"github.com/gomarkdown/markdown"

	"chartcore/ports"
)

// Tooltip owns one floating surface appended under a chart container,
// hidden until the first Show.
type Tooltip struct {
	mu        sync.Mutex
	surface   ports.TooltipSurface
	destroyed bool
}

// NewTooltip wraps a surface and hides it.
func NewTooltip(surface ports.TooltipSurface) *Tooltip {
	surface.SetVisible(false)
	return &Tooltip{surface: surface}
}

// Show updates content and position and makes the tooltip visible.
func (t *Tooltip) Show(html string, x, y float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.destroyed {
		return
	}
	t.surface.SetHTML(html)
	t.surface.Move(x, y)
	t.surface.SetVisible(true)
}

// ShowMarkdown renders a markdown body to HTML and shows it. Charts use
// this for rich drill-down tooltips without hand-building markup.
func (t *Tooltip) ShowMarkdown(md string, x, y float64) {
	html := markdown.ToHTML([]byte(md), nil, nil)
	t.Show(string(html), x, y)
}

// Hide makes the tooltip invisible without removing it.
func (t *Tooltip) Hide() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.destroyed {
		return
	}
	t.surface.SetVisible(false)
}

// Destroy removes the surface from its container. A second call is a
// no-op, not an error, including after external removal of the surface.
func (t *Tooltip) Destroy() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.destroyed {
		return
	}
	t.destroyed = true
	t.surface.Remove()
}
