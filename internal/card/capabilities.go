package card

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// PreviewRenderer draws the preview surface for a project
type PreviewRenderer interface {
	RenderPreview(url, title string) g.Node
}

// Magnet wraps content so it is pulled toward the pointer while the pointer
// is within radius, proportionally to strength
type Magnet interface {
	Wrap(child g.Node, strength, radius float64) g.Node
}

// Navigator renders a link to href, opened in the browsing context target
type Navigator interface {
	Link(href, target, class string, children ...g.Node) g.Node
}

// Capabilities are the collaborators a card renders through
type Capabilities struct {
	Preview   PreviewRenderer
	Magnet    Magnet
	Navigator Navigator
}

// DefaultCapabilities returns the browser-backed collaborators
func DefaultCapabilities() Capabilities {
	return Capabilities{
		Preview:   BrowserPreview{},
		Magnet:    MagneticWrapper{},
		Navigator: AnchorNavigator{},
	}
}

func (c Capabilities) withDefaults() Capabilities {
	def := DefaultCapabilities()
	if c.Preview == nil {
		c.Preview = def.Preview
	}
	if c.Magnet == nil {
		c.Magnet = def.Magnet
	}
	if c.Navigator == nil {
		c.Navigator = def.Navigator
	}
	return c
}

// BrowserPreview shows the demo inside a mock browser window. The frame is
// lazily loaded and sandboxed.
type BrowserPreview struct{}

// RenderPreview implements PreviewRenderer
func (BrowserPreview) RenderPreview(url, title string) g.Node {
	return h.Div(h.Class("browser-preview rounded-t-lg border-b bg-muted"),
		h.Div(h.Class("browser-chrome flex items-center gap-1.5 px-3 py-2"),
			h.Span(h.Class("dot bg-red-400")),
			h.Span(h.Class("dot bg-yellow-400")),
			h.Span(h.Class("dot bg-green-400")),
			h.Span(h.Class("browser-address ml-2 truncate text-xs text-muted-foreground"), g.Text(url)),
		),
		h.Div(h.Class("browser-viewport aspect-video overflow-hidden"),
			g.El("iframe",
				h.Src(url),
				h.Title(title),
				g.Attr("loading", "lazy"),
				g.Attr("sandbox", "allow-scripts allow-same-origin"),
				g.Attr("tabindex", "-1"),
				h.Class("pointer-events-none h-full w-full border-0"),
			),
		),
	)
}

// MagneticWrapper marks content for the client script's magnetic effect
type MagneticWrapper struct{}

// Wrap implements Magnet
func (MagneticWrapper) Wrap(child g.Node, strength, radius float64) g.Node {
	return h.Div(
		h.Class("magnetic w-full"),
		h.Data("magnetic", ""),
		h.Data("strength", formatFloat(strength)),
		h.Data("radius", formatFloat(radius)),
		child,
	)
}

// AnchorNavigator renders plain anchors
type AnchorNavigator struct{}

// Link implements Navigator. The href is passed through unchanged.
func (AnchorNavigator) Link(href, target, class string, children ...g.Node) g.Node {
	return h.A(
		h.Href(href),
		g.If(target != "", h.Target(target)),
		g.If(target == NewBrowsingContext, h.Rel("noopener noreferrer")),
		g.If(class != "", h.Class(class)),
		g.Group(children),
	)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
