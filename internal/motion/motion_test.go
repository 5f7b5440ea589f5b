package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoverFlagTransitions(t *testing.T) {
	var f HoverFlag
	assert.False(t, bool(f), "initial state")

	f = f.Next(PointerEnter)
	assert.True(t, bool(f))
	f = f.Next(PointerEnter)
	assert.True(t, bool(f), "repeated enter stays hovered")

	f = f.Next(PointerLeave)
	assert.False(t, bool(f))
	f = f.Next(PointerEvent(42))
	assert.False(t, bool(f), "unknown events keep the state")
}

func TestStyleTableLookup(t *testing.T) {
	table := StyleTable{
		Rest:  Style{}.WithScale(1),
		Hover: Style{}.WithScale(1.05),
	}

	assert.Equal(t, 1.0, table.Lookup(false).ScaleOr(0))
	assert.Equal(t, 1.05, table.Lookup(true).ScaleOr(0))
}

func TestStaggerDelay(t *testing.T) {
	tests := []struct {
		index int
		want  float64
	}{
		{-1, 0},
		{0, 0},
		{1, 0.05},
		{3, 0.15},
		{10, 0.5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StaggerDelay(tt.index, 0.05), "index %d", tt.index)
	}
	assert.Equal(t, 0.0, StaggerDelay(4, 0))
}

func TestViewportTriggerOnceFiresAtMostOnce(t *testing.T) {
	trigger := NewViewportTrigger(Viewport{Once: true, Margin: 50})

	assert.False(t, trigger.Observe(false))
	assert.True(t, trigger.Observe(true))
	assert.False(t, trigger.Observe(true), "still in view")
	assert.False(t, trigger.Observe(false))
	assert.False(t, trigger.Observe(true), "re-entry must not fire")
	assert.Equal(t, 1, trigger.Fired())
}

func TestViewportTriggerRepeatsWithoutOnce(t *testing.T) {
	trigger := NewViewportTrigger(Viewport{})

	assert.True(t, trigger.Observe(true))
	assert.False(t, trigger.Observe(false))
	assert.True(t, trigger.Observe(true))
	assert.Equal(t, 2, trigger.Fired())
}

func TestViewportTriggerDetachDiscardsCallbacks(t *testing.T) {
	trigger := NewViewportTrigger(Viewport{Once: true})
	trigger.Detach()

	assert.False(t, trigger.Observe(true))
	assert.Zero(t, trigger.Fired())
}

func TestViewportRootMargin(t *testing.T) {
	assert.Equal(t, "-50px", Viewport{Margin: 50}.RootMargin())
	assert.Equal(t, "0px", Viewport{}.RootMargin())
}

func TestStyleCSS(t *testing.T) {
	s := Style{}.WithOpacity(0).WithY(30)
	assert.Equal(t, "opacity:0;transform:translateY(30px)", s.CSS())

	s = Style{}.WithScale(1.1).WithRotate(-1, 1, -1, 0).WithTransition(Over(0.3))
	assert.Equal(t, "transform:scale(1.1) rotate(0deg);transition-duration:0.3s", s.CSS())

	assert.Empty(t, Style{}.CSS())
}

func TestWithRotateCopiesKeyframes(t *testing.T) {
	frames := []float64{-1, 1}
	s := Style{}.WithRotate(frames...)
	frames[0] = 99

	assert.Equal(t, []float64{-1, 1}, s.Rotate)
}

func TestSpecJSON(t *testing.T) {
	initial := Style{}.WithOpacity(0).WithY(30)
	inView := Style{}.WithOpacity(1).WithY(0)
	spec := Spec{
		Initial:    &initial,
		InView:     &inView,
		Transition: Over(0.5),
		Viewport:   &Viewport{Once: true, Margin: 50},
	}

	require.JSONEq(t, `{
		"initial": {"opacity": 0, "y": 30},
		"inView": {"opacity": 1, "y": 0},
		"transition": {"duration": 0.5},
		"viewport": {"once": true, "margin": 50}
	}`, spec.JSON())
}
