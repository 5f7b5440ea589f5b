// Package card renders the portfolio project card.
//
// An Instance is one mounted card. It owns the card's hover state and its
// entrance trigger; nothing else reads or writes them. View returns the
// card as plain data and Render turns it into HTML through the card's
// Capabilities, so both can be exercised with fakes.
package card

import (
	"dconn.dev/showcase/internal/i18n"
	"dconn.dev/showcase/internal/models"
	"dconn.dev/showcase/internal/motion"
	"dconn.dev/showcase/internal/ui"
)

// Action kinds
const (
	ActionDemo = "demo"
	ActionCode = "code"
)

// Instance is a single mounted card. It is not safe for concurrent use.
type Instance struct {
	project  models.Project
	caps     Capabilities
	labels   i18n.CardLabels
	hover    motion.HoverFlag
	entrance *motion.ViewportTrigger
	mounted  bool
}

// NewInstance mounts a card for p. Nil capabilities fall back to the
// defaults.
func NewInstance(p models.Project, caps Capabilities, labels i18n.CardLabels) *Instance {
	return &Instance{
		project:  p,
		caps:     caps.withDefaults(),
		labels:   labels,
		entrance: motion.NewViewportTrigger(entranceViewport),
		mounted:  true,
	}
}

// Handle applies a pointer event to the card's hover state
func (c *Instance) Handle(e motion.PointerEvent) {
	if !c.mounted {
		return
	}
	c.hover = c.hover.Next(e)
}

// PointerEnter marks the card as hovered
func (c *Instance) PointerEnter() { c.Handle(motion.PointerEnter) }

// PointerLeave clears the hover state
func (c *Instance) PointerLeave() { c.Handle(motion.PointerLeave) }

// Hovered reports the current hover state
func (c *Instance) Hovered() bool {
	return bool(c.hover)
}

// PreviewStyle returns the preview's style for the current hover state
func (c *Instance) PreviewStyle() motion.Style {
	return previewTable().Lookup(c.hover)
}

// ObserveViewport records a visibility change and reports whether the
// entrance animation starts
func (c *Instance) ObserveViewport(visible bool) bool {
	return c.entrance.Observe(visible)
}

// EntranceCount returns how many times the entrance animation has started
func (c *Instance) EntranceCount() int {
	return c.entrance.Fired()
}

// Unmount discards the card's state and any pending viewport callbacks
func (c *Instance) Unmount() {
	c.mounted = false
	c.hover = false
	c.entrance.Detach()
}

// Mounted reports whether the card is still mounted
func (c *Instance) Mounted() bool {
	return c.mounted
}

// Badge is one technology label
type Badge struct {
	Text   string
	Index  int
	Delay  float64
	Motion motion.Spec
}

// Action is one navigable button in the action row
type Action struct {
	Kind     string
	Label    string
	Href     string
	Target   string
	Variant  ui.Variant
	Strength float64
	Radius   float64
}

// View is the card as data, before any HTML is produced
type View struct {
	Title       string
	Description string
	Image       string
	PreviewURL  string
	Preview     motion.Style
	Hovered     bool
	Badges      []Badge
	Actions     []Action
	Root        motion.Spec
	PreviewSpec motion.Spec
	BadgeRow    motion.Spec
}

// View returns the card's current view model
func (c *Instance) View() View {
	p := c.project

	badges := make([]Badge, len(p.Technologies))
	for i, tech := range p.Technologies {
		badges[i] = Badge{
			Text:   tech,
			Index:  i,
			Delay:  motion.StaggerDelay(i, BadgeStagger),
			Motion: badgeMotion(i),
		}
	}

	return View{
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		PreviewURL:  p.DemoURL,
		Preview:     c.PreviewStyle(),
		Hovered:     c.Hovered(),
		Badges:      badges,
		Actions: []Action{
			{
				Kind:     ActionDemo,
				Label:    c.labels.Demo,
				Href:     p.DemoURL,
				Target:   NewBrowsingContext,
				Variant:  ui.VariantDefault,
				Strength: MagnetStrength,
				Radius:   MagnetRadius,
			},
			{
				Kind:     ActionCode,
				Label:    c.labels.Code,
				Href:     p.RepoURL,
				Target:   NewBrowsingContext,
				Variant:  ui.VariantOutline,
				Strength: MagnetStrength,
				Radius:   MagnetRadius,
			},
		},
		Root:        rootMotion(),
		PreviewSpec: previewMotion(),
		BadgeRow:    badgeRowMotion(),
	}
}
