package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestClasses(t *testing.T) {
	assert.Equal(t, "a b", Classes("a", "", "  ", " b "))
	assert.Empty(t, Classes())
}

func TestBadgeVariants(t *testing.T) {
	got := render(t, Badge(VariantSecondary, "extra", g.Text("Go")))
	assert.Contains(t, got, `data-variant="secondary"`)
	assert.Contains(t, got, "bg-secondary")
	assert.Contains(t, got, "extra")
	assert.Contains(t, got, ">Go</span>")

	got = render(t, Badge(Variant("sparkly"), ""))
	assert.Contains(t, got, "bg-primary", "unknown variant falls back to default")
}

func TestButtonIsNotSubmit(t *testing.T) {
	got := render(t, Button(VariantOutline, "w-full", g.Text("Code")))
	assert.Contains(t, got, `type="button"`)
	assert.Contains(t, got, "border-input")
	assert.Contains(t, got, `data-variant="outline"`)
}

func TestCardEscapesText(t *testing.T) {
	got := render(t, Card("", CardHeader(CardTitle("<b>x</b>"), CardDescription("a & b"))))
	assert.Contains(t, got, "&lt;b&gt;x&lt;/b&gt;")
	assert.Contains(t, got, "a &amp; b")
}

func TestIcons(t *testing.T) {
	got := render(t, IconExternalLink("h-4 w-4"))
	assert.True(t, strings.HasPrefix(got, "<svg"))
	assert.Contains(t, got, `aria-hidden="true"`)
	assert.Contains(t, got, "icon-external-link h-4 w-4")
	assert.Contains(t, render(t, IconRepository("")), "icon-repository")
}
