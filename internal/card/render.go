package card

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"dconn.dev/showcase/internal/i18n"
	"dconn.dev/showcase/internal/models"
	"dconn.dev/showcase/internal/motion"
	"dconn.dev/showcase/internal/ui"
)

const (
	cardClass = "overflow-hidden h-full flex flex-col bg-background/50 backdrop-blur-sm border border-primary/10 " +
		"dark:bg-gray-900/50 transition-all duration-300 hover:shadow-xl hover:shadow-black/5"
	badgeClass      = "bg-primary/10 transition-all duration-300 hover:bg-primary/20"
	demoButtonClass = "w-full bg-primary hover:bg-primary/90 text-white"
	codeButtonClass = "w-full border-primary/20 hover:border-primary/50"
)

// Render mounts a card for p and renders it
func Render(p models.Project, caps Capabilities, labels i18n.CardLabels) g.Node {
	return NewInstance(p, caps, labels).Render()
}

// Render produces the card's HTML in its current state
func (c *Instance) Render() g.Node {
	v := c.View()

	return h.Div(
		h.Class("project-card h-full"),
		g.If(c.project.ID != "", h.ID("project-"+c.project.ID)),
		g.If(c.project.HasImage(), h.Data("image", v.Image)),
		h.Data("hover-scope", ""),
		g.If(v.Hovered, h.Data("hovered", "")),
		motionAttrs(v.Root, ""),
		ui.Card(cardClass,
			h.Div(h.Class("relative overflow-hidden"),
				h.Div(
					h.Class("project-preview"),
					h.Aria("label", c.labels.PreviewOf(v.Title)),
					motionAttrs(v.PreviewSpec, v.Preview.CSS()),
					c.caps.Preview.RenderPreview(v.PreviewURL, v.Title),
				),
			),
			ui.CardHeader(
				ui.CardTitle(v.Title),
				ui.CardDescription(v.Description),
			),
			ui.CardContent("flex-grow",
				h.Div(
					h.Class("badge-row flex flex-wrap gap-2 mt-2"),
					motionAttrs(v.BadgeRow, ""),
					g.Group(renderBadges(v.Badges)),
				),
			),
			ui.CardFooter("flex justify-between gap-2",
				g.Group(c.renderActions(v.Actions)),
			),
		),
	)
}

func renderBadges(badges []Badge) []g.Node {
	nodes := make([]g.Node, 0, len(badges))
	for _, b := range badges {
		nodes = append(nodes, h.Div(
			h.Class("tech-badge"),
			h.Data("badge-index", strconv.Itoa(b.Index)),
			motionAttrs(b.Motion, ""),
			ui.Badge(ui.VariantSecondary, badgeClass, g.Text(b.Text)),
		))
	}
	return nodes
}

func (c *Instance) renderActions(actions []Action) []g.Node {
	nodes := make([]g.Node, 0, len(actions))
	for _, a := range actions {
		icon, class := ui.IconExternalLink("h-4 w-4 mr-2"), demoButtonClass
		if a.Kind == ActionCode {
			icon, class = ui.IconRepository("h-4 w-4 mr-2"), codeButtonClass
		}
		button := ui.Button(a.Variant, class, icon, g.Text(a.Label))
		nodes = append(nodes, c.caps.Navigator.Link(a.Href, a.Target, "flex-1 action-"+a.Kind,
			c.caps.Magnet.Wrap(button, a.Strength, a.Radius),
		))
	}
	return nodes
}

// motionAttrs attaches spec for the client script. Only state-driven styles
// are inlined; the script applies initial styles itself, so the card stays
// visible when it never runs.
func motionAttrs(spec motion.Spec, style string) g.Node {
	return g.Group{
		h.Data("motion", spec.JSON()),
		g.If(spec.Viewport != nil, h.Data("root-margin", rootMargin(spec.Viewport))),
		g.If(style != "", h.Style(style)),
	}
}

func rootMargin(v *motion.Viewport) string {
	if v == nil {
		return ""
	}
	return v.RootMargin()
}
