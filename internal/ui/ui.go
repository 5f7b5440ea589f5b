package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Variant is a style token understood by badges and buttons
type Variant string

const (
	VariantDefault   Variant = "default"
	VariantSecondary Variant = "secondary"
	VariantOutline   Variant = "outline"
)

var badgeClasses = map[Variant]string{
	VariantDefault:   "badge bg-primary text-primary-foreground",
	VariantSecondary: "badge bg-secondary text-secondary-foreground",
	VariantOutline:   "badge border text-foreground",
}

var buttonClasses = map[Variant]string{
	VariantDefault:   "btn bg-primary text-primary-foreground hover:bg-primary/90",
	VariantSecondary: "btn bg-secondary text-secondary-foreground hover:bg-secondary/80",
	VariantOutline:   "btn border border-input bg-background hover:bg-accent",
}

// Classes joins non-empty class lists
func Classes(lists ...string) string {
	parts := make([]string, 0, len(lists))
	for _, l := range lists {
		if l = strings.TrimSpace(l); l != "" {
			parts = append(parts, l)
		}
	}
	return strings.Join(parts, " ")
}

// Card renders the outer card surface
func Card(class string, children ...g.Node) g.Node {
	return h.Div(h.Class(Classes("card rounded-lg border bg-card text-card-foreground shadow-sm", class)), g.Group(children))
}

// CardHeader renders the card's heading block
func CardHeader(children ...g.Node) g.Node {
	return h.Div(h.Class("card-header flex flex-col space-y-1.5 p-6"), g.Group(children))
}

// CardTitle renders the primary heading
func CardTitle(title string) g.Node {
	return h.H3(h.Class("card-title text-2xl font-semibold leading-none tracking-tight"), g.Text(title))
}

// CardDescription renders the secondary text
func CardDescription(text string) g.Node {
	return h.P(h.Class("card-description text-sm text-muted-foreground"), g.Text(text))
}

// CardContent renders the card body
func CardContent(class string, children ...g.Node) g.Node {
	return h.Div(h.Class(Classes("card-content p-6 pt-0", class)), g.Group(children))
}

// CardFooter renders the card's action row
func CardFooter(class string, children ...g.Node) g.Node {
	return h.Div(h.Class(Classes("card-footer flex items-center p-6 pt-0", class)), g.Group(children))
}

// Badge renders a small label. Unknown variants fall back to the default.
func Badge(variant Variant, class string, children ...g.Node) g.Node {
	base, ok := badgeClasses[variant]
	if !ok {
		base = badgeClasses[VariantDefault]
	}
	return h.Span(h.Class(Classes(base, class)), h.Data("variant", string(variant)), g.Group(children))
}

// Button renders a non-submitting button. Unknown variants fall back to the
// default.
func Button(variant Variant, class string, children ...g.Node) g.Node {
	base, ok := buttonClasses[variant]
	if !ok {
		base = buttonClasses[VariantDefault]
	}
	return h.Button(h.Type("button"), h.Class(Classes(base, class)), h.Data("variant", string(variant)), g.Group(children))
}
