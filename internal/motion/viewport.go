package motion

import "fmt"

// Viewport configures when an element counts as in view. Margin shrinks the
// viewport on every side, so an element must be Margin units inside before
// it triggers.
type Viewport struct {
	Once   bool    `json:"once"`
	Margin float64 `json:"margin,omitempty"`
}

// RootMargin returns the IntersectionObserver rootMargin for v
func (v Viewport) RootMargin() string {
	if v.Margin == 0 {
		return "0px"
	}
	return fmt.Sprintf("-%spx", formatFloat(v.Margin))
}

// ViewportTrigger decides when an entrance animation starts for one mounted
// element. It is not safe for concurrent use.
type ViewportTrigger struct {
	viewport Viewport
	inView   bool
	fired    int
	detached bool
}

// NewViewportTrigger creates a trigger for a freshly mounted element
func NewViewportTrigger(v Viewport) *ViewportTrigger {
	return &ViewportTrigger{viewport: v}
}

// Observe records an intersection change and reports whether the entrance
// animation starts now. It only fires on an out-of-view to in-view edge, and
// at most once when the viewport is Once.
func (t *ViewportTrigger) Observe(visible bool) bool {
	if t.detached {
		return false
	}
	wasInView := t.inView
	t.inView = visible
	if !visible || wasInView {
		return false
	}
	if t.viewport.Once && t.fired > 0 {
		return false
	}
	t.fired++
	return true
}

// Fired returns how many times the animation has started
func (t *ViewportTrigger) Fired() int {
	return t.fired
}

// Detach discards any further intersection callbacks
func (t *ViewportTrigger) Detach() {
	t.detached = true
}
