package card

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"dconn.dev/showcase/internal/i18n"
	"dconn.dev/showcase/internal/models"
	"dconn.dev/showcase/internal/ui"
)

type previewCall struct{ url, title string }

type fakePreview struct{ calls []previewCall }

func (f *fakePreview) RenderPreview(url, title string) g.Node {
	f.calls = append(f.calls, previewCall{url, title})
	return h.Div(h.Class("fake-preview"))
}

type magnetCall struct{ strength, radius float64 }

type fakeMagnet struct{ calls []magnetCall }

func (f *fakeMagnet) Wrap(child g.Node, strength, radius float64) g.Node {
	f.calls = append(f.calls, magnetCall{strength, radius})
	return h.Div(h.Class("fake-magnet"), child)
}

type linkCall struct{ href, target string }

type fakeNavigator struct{ calls []linkCall }

func (f *fakeNavigator) Link(href, target, class string, children ...g.Node) g.Node {
	f.calls = append(f.calls, linkCall{href, target})
	return h.A(h.Href(href), g.Group(children))
}

type fakes struct {
	preview   *fakePreview
	magnet    *fakeMagnet
	navigator *fakeNavigator
}

func newFakes() (fakes, Capabilities) {
	f := fakes{preview: &fakePreview{}, magnet: &fakeMagnet{}, navigator: &fakeNavigator{}}
	return f, Capabilities{Preview: f.preview, Magnet: f.magnet, Navigator: f.navigator}
}

var labels = mustLabels("pt-BR")

func mustLabels(locale string) i18n.CardLabels {
	catalog, err := i18n.LoadEmbedded()
	if err != nil {
		panic(err)
	}
	return catalog.CardLabels(locale)
}

func sampleProject() models.Project {
	return models.Project{
		ID:           "atlas",
		Title:        "Atlas",
		Description:  "A map of everything.",
		DemoURL:      "https://atlas.example.com",
		RepoURL:      "https://github.com/example/atlas",
		Technologies: []string{"Go", "HTMX", "SQLite"},
	}
}

func renderString(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestBadgesFollowTechnologyOrder(t *testing.T) {
	v := NewInstance(sampleProject(), Capabilities{}, labels).View()

	require.Len(t, v.Badges, 3)
	for i, want := range []string{"Go", "HTMX", "SQLite"} {
		assert.Equal(t, want, v.Badges[i].Text)
		assert.Equal(t, i, v.Badges[i].Index)
	}
	assert.Equal(t, []float64{0, 0.05, 0.1}, []float64{v.Badges[0].Delay, v.Badges[1].Delay, v.Badges[2].Delay})
	assert.Equal(t, 0.1, v.Badges[2].Motion.Transition.Delay)
	assert.Equal(t, 0.3, v.Badges[2].Motion.Transition.Duration)
}

func TestRenderedBadgesAppearInOrder(t *testing.T) {
	_, caps := newFakes()
	out := renderString(t, Render(sampleProject(), caps, labels))

	assert.Equal(t, 3, strings.Count(out, "data-badge-index="))
	goAt := strings.Index(out, ">Go</span>")
	htmxAt := strings.Index(out, ">HTMX</span>")
	sqliteAt := strings.Index(out, ">SQLite</span>")
	require.True(t, goAt >= 0 && htmxAt >= 0 && sqliteAt >= 0)
	assert.Less(t, goAt, htmxAt)
	assert.Less(t, htmxAt, sqliteAt)
}

func TestDuplicateTechnologiesAreNotMerged(t *testing.T) {
	p := sampleProject()
	p.Technologies = []string{"React", "React"}
	_, caps := newFakes()

	v := NewInstance(p, caps, labels).View()
	require.Len(t, v.Badges, 2)
	assert.Equal(t, "React", v.Badges[0].Text)
	assert.Equal(t, "React", v.Badges[1].Text)

	out := renderString(t, Render(p, caps, labels))
	assert.Equal(t, 2, strings.Count(out, ">React</span>"))
}

func TestEmptyTechnologiesRenderEmptyRow(t *testing.T) {
	for _, techs := range [][]string{nil, {}} {
		p := sampleProject()
		p.Technologies = techs
		_, caps := newFakes()

		assert.Empty(t, NewInstance(p, caps, labels).View().Badges)
		out := renderString(t, Render(p, caps, labels))
		assert.Contains(t, out, "badge-row")
		assert.NotContains(t, out, "data-badge-index=")
	}
}

func TestHoverScalesPreview(t *testing.T) {
	c := NewInstance(sampleProject(), Capabilities{}, labels)
	assert.False(t, c.Hovered())
	assert.Equal(t, 1.0, c.PreviewStyle().ScaleOr(0))

	c.PointerEnter()
	assert.True(t, c.Hovered())
	assert.Equal(t, PreviewHoverScale, c.PreviewStyle().ScaleOr(0))
	assert.Contains(t, renderString(t, c.Render()), "scale(1.05)")

	c.PointerLeave()
	assert.False(t, c.Hovered())
	assert.Equal(t, 1.0, c.PreviewStyle().ScaleOr(0))
	assert.Contains(t, renderString(t, c.Render()), "scale(1)")
}

func TestPreviewTransitionDuration(t *testing.T) {
	v := NewInstance(sampleProject(), Capabilities{}, labels).View()
	require.NotNil(t, v.PreviewSpec.States)
	assert.Equal(t, 0.5, v.PreviewSpec.Transition.Duration)
	assert.Equal(t, 1.05, v.PreviewSpec.States.Hover.ScaleOr(0))
}

func TestRootMotion(t *testing.T) {
	root := NewInstance(sampleProject(), Capabilities{}, labels).View().Root

	assert.Equal(t, 0.0, *root.Initial.Opacity)
	assert.Equal(t, 30.0, *root.Initial.Y)
	assert.Equal(t, 1.0, *root.InView.Opacity)
	assert.Equal(t, 0.0, *root.InView.Y)
	assert.Equal(t, -10.0, *root.Hover.Y)
	assert.Equal(t, 0.3, root.Hover.Transition.Duration)
	assert.Equal(t, 0.5, root.Transition.Duration)
	assert.True(t, root.Viewport.Once)
	assert.Equal(t, 50.0, root.Viewport.Margin)
}

func TestActionsLinkToProjectURLs(t *testing.T) {
	f, caps := newFakes()
	p := sampleProject()
	c := NewInstance(p, caps, labels)

	actions := c.View().Actions
	require.Len(t, actions, 2)
	assert.Equal(t, Action{
		Kind: ActionDemo, Label: "Demo", Href: p.DemoURL, Target: NewBrowsingContext,
		Variant: ui.VariantDefault, Strength: 20, Radius: 100,
	}, actions[0])
	assert.Equal(t, Action{
		Kind: ActionCode, Label: "Código", Href: p.RepoURL, Target: NewBrowsingContext,
		Variant: ui.VariantOutline, Strength: 20, Radius: 100,
	}, actions[1])

	out := renderString(t, c.Render())
	assert.Equal(t, []linkCall{{p.DemoURL, "_blank"}, {p.RepoURL, "_blank"}}, f.navigator.calls)
	assert.Equal(t, []magnetCall{{20, 100}, {20, 100}}, f.magnet.calls)
	assert.Equal(t, []previewCall{{p.DemoURL, p.Title}}, f.preview.calls)
	assert.Contains(t, out, "fake-preview")
	assert.Contains(t, out, "Código")
}

func TestDefaultCapabilitiesRender(t *testing.T) {
	p := sampleProject()
	out := renderString(t, Render(p, Capabilities{}, labels))

	assert.Contains(t, out, `href="https://atlas.example.com"`)
	assert.Contains(t, out, `href="https://github.com/example/atlas"`)
	assert.Equal(t, 2, strings.Count(out, `target="_blank"`))
	assert.Equal(t, 2, strings.Count(out, `rel="noopener noreferrer"`))
	assert.Equal(t, 2, strings.Count(out, `data-strength="20"`))
	assert.Equal(t, 2, strings.Count(out, `data-radius="100"`))
	assert.Contains(t, out, `data-root-margin="-50px"`)
	assert.Contains(t, out, "browser-preview")
	assert.Contains(t, out, `aria-label="Prévia de Atlas"`)
	assert.Contains(t, out, `id="project-atlas"`)
}

func TestMalformedURLsPassThrough(t *testing.T) {
	p := sampleProject()
	p.DemoURL = "not a url"
	p.RepoURL = ""
	f, caps := newFakes()

	_ = renderString(t, Render(p, caps, labels))
	assert.Equal(t, []linkCall{{"not a url", "_blank"}, {"", "_blank"}}, f.navigator.calls)
}

func TestImageIsOptional(t *testing.T) {
	p := sampleProject()
	out := renderString(t, Render(p, Capabilities{}, labels))
	assert.NotContains(t, out, "data-image")
	assert.NotContains(t, out, "<img")

	p.Image = "/static/img/atlas.png"
	out = renderString(t, Render(p, Capabilities{}, labels))
	assert.Contains(t, out, `data-image="/static/img/atlas.png"`)
}

func TestEmptyProjectRenders(t *testing.T) {
	out := renderString(t, Render(models.Project{}, Capabilities{}, i18n.CardLabels{}))
	assert.Contains(t, out, "project-card")
	assert.NotContains(t, out, `id="project-`)
}

func TestTextIsEscapedVerbatim(t *testing.T) {
	p := sampleProject()
	p.Title = "<script>alert(1)</script>"
	p.Description = strings.Repeat("long ", 200)

	out := renderString(t, Render(p, Capabilities{}, labels))
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, p.Description)
}

func TestEntranceFiresOncePerMount(t *testing.T) {
	c := NewInstance(sampleProject(), Capabilities{}, labels)

	assert.True(t, c.ObserveViewport(true))
	assert.False(t, c.ObserveViewport(false))
	assert.False(t, c.ObserveViewport(true))
	assert.Equal(t, 1, c.EntranceCount())

	again := NewInstance(sampleProject(), Capabilities{}, labels)
	assert.True(t, again.ObserveViewport(true), "a new mount animates again")
}

func TestUnmountDiscardsState(t *testing.T) {
	c := NewInstance(sampleProject(), Capabilities{}, labels)
	c.PointerEnter()
	c.Unmount()

	assert.False(t, c.Mounted())
	assert.False(t, c.Hovered())
	assert.False(t, c.ObserveViewport(true))
	c.PointerEnter()
	assert.False(t, c.Hovered())
}

func TestSiblingCardsDoNotShareHover(t *testing.T) {
	a := NewInstance(sampleProject(), Capabilities{}, labels)
	b := NewInstance(sampleProject(), Capabilities{}, labels)

	a.PointerEnter()
	assert.True(t, a.Hovered())
	assert.False(t, b.Hovered())
}

func TestRenderStaysVisibleWithoutScript(t *testing.T) {
	out := renderString(t, Render(sampleProject(), Capabilities{}, labels))

	assert.NotContains(t, out, "opacity:0")
	assert.NotContains(t, out, "translateY(30px)")
	assert.NotContains(t, out, "translateY(10px)")
	assert.Equal(t, 3, strings.Count(out, "data-badge-index="))
	assert.Contains(t, out, "transform:scale(1)", "state-driven preview style is still inlined")
}
