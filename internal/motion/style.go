// Package motion models the animations a rendered component asks the browser
// to perform. Triggers (hover, viewport entry) are explicit state; what a
// change looks like lives in plain Style values, so both can be tested
// without a browser.
package motion

import (
	"fmt"
	"strconv"
	"strings"
)

// Transition describes how a style change is animated, in seconds
type Transition struct {
	Duration        float64 `json:"duration,omitempty"`
	Delay           float64 `json:"delay,omitempty"`
	StaggerChildren float64 `json:"staggerChildren,omitempty"`
	DelayChildren   float64 `json:"delayChildren,omitempty"`
}

// Over returns a transition of the given duration
func Over(duration float64) *Transition {
	return &Transition{Duration: duration}
}

// Style is a set of animatable properties. Nil fields are left untouched.
type Style struct {
	Opacity    *float64    `json:"opacity,omitempty"`
	Y          *float64    `json:"y,omitempty"`
	Scale      *float64    `json:"scale,omitempty"`
	Rotate     []float64   `json:"rotate,omitempty"`
	Transition *Transition `json:"transition,omitempty"`
}

// WithOpacity returns a copy of s with opacity set
func (s Style) WithOpacity(v float64) Style {
	s.Opacity = &v
	return s
}

// WithY returns a copy of s with the vertical offset set
func (s Style) WithY(v float64) Style {
	s.Y = &v
	return s
}

// WithScale returns a copy of s with the scale factor set
func (s Style) WithScale(v float64) Style {
	s.Scale = &v
	return s
}

// WithRotate returns a copy of s with rotation keyframes in degrees
func (s Style) WithRotate(keyframes ...float64) Style {
	s.Rotate = append([]float64(nil), keyframes...)
	return s
}

// WithTransition returns a copy of s that animates with t
func (s Style) WithTransition(t *Transition) Style {
	s.Transition = t
	return s
}

// ScaleOr returns the scale factor, or def when unset
func (s Style) ScaleOr(def float64) float64 {
	if s.Scale == nil {
		return def
	}
	return *s.Scale
}

// CSS renders the resting point of s as inline CSS. Rotation uses the last
// keyframe.
func (s Style) CSS() string {
	var decls []string
	if s.Opacity != nil {
		decls = append(decls, "opacity:"+formatFloat(*s.Opacity))
	}

	var transforms []string
	if s.Y != nil {
		transforms = append(transforms, fmt.Sprintf("translateY(%spx)", formatFloat(*s.Y)))
	}
	if s.Scale != nil {
		transforms = append(transforms, fmt.Sprintf("scale(%s)", formatFloat(*s.Scale)))
	}
	if n := len(s.Rotate); n > 0 {
		transforms = append(transforms, fmt.Sprintf("rotate(%sdeg)", formatFloat(s.Rotate[n-1])))
	}
	if len(transforms) > 0 {
		decls = append(decls, "transform:"+strings.Join(transforms, " "))
	}
	if s.Transition != nil && s.Transition.Duration > 0 {
		decls = append(decls, "transition-duration:"+formatFloat(s.Transition.Duration)+"s")
	}
	return strings.Join(decls, ";")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
