package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// LocaleLink is one entry in the language switcher
type LocaleLink struct {
	Locale string
	URL    string
	Active bool
}

// PageData is everything the projects page shows
type PageData struct {
	Lang     string
	Title    string
	Subtitle string
	Empty    string
	Cards    []g.Node
	Locales  []LocaleLink
}

// Node adapts a gomponents node to a templ component
func Node(n g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// Page renders the full projects page
func Page(d PageData) templ.Component {
	return Node(page(d))
}

// Fragment renders nodes without the page layout, for HTMX swaps
func Fragment(nodes ...g.Node) templ.Component {
	return Node(g.Group(nodes))
}

func page(d PageData) g.Node {
	return h.Doctype(
		h.HTML(h.Lang(d.Lang),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(d.Title)),
				h.Link(h.Rel("stylesheet"), h.Href("/static/css/showcase.css")),
				h.Script(h.Src("/static/js/motion.js"), h.Defer()),
			),
			h.Body(h.Class("min-h-screen bg-background text-foreground"),
				h.Header(h.Class("container mx-auto px-4 pt-16 pb-8"),
					g.If(len(d.Locales) > 0,
						h.Nav(h.Class("locale-switcher flex gap-2 text-sm"), g.Group(localeLinks(d.Locales))),
					),
					h.H1(h.Class("text-4xl font-bold"), g.Text(d.Title)),
					h.P(h.Class("mt-2 text-muted-foreground"), g.Text(d.Subtitle)),
				),
				h.Main(h.Class("container mx-auto px-4 pb-16"),
					g.If(len(d.Cards) == 0, h.P(h.Class("empty-state"), g.Text(d.Empty))),
					g.If(len(d.Cards) > 0,
						h.Div(h.ID("projects"), h.Class("grid gap-6 md:grid-cols-2 lg:grid-cols-3"), g.Group(d.Cards)),
					),
				),
			),
		),
	)
}

func localeLinks(links []LocaleLink) []g.Node {
	nodes := make([]g.Node, 0, len(links))
	for _, l := range links {
		nodes = append(nodes, h.A(
			h.Href(l.URL),
			h.Lang(l.Locale),
			g.If(l.Active, h.Aria("current", "true")),
			g.Text(l.Locale),
		))
	}
	return nodes
}
