package ports

// Size is a container's current layout size in pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Layout reports the current size of a chart's container. A container
// may legitimately report zero size right after insertion, before
// layout settles.
type Layout interface {
	Size() Size
}

// SizeObserver wraps the host's element-size-observation mechanism.
// Observe registers a callback for raw size-change notifications and
// Disconnect stops them; both are safe to call repeatedly.
type SizeObserver interface {
	Observe(fn func(Size))
	Disconnect()
}

// TooltipSurface is the single floating element a tooltip lifecycle
// owns, appended under the chart container and hidden by default.
type TooltipSurface interface {
	SetHTML(html string)
	Move(x, y float64)
	SetVisible(visible bool)
	// Remove detaches the surface from its container. The surface may
	// already have been removed externally; Remove must tolerate that.
	Remove()
}
