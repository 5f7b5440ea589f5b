package motion

// PointerEvent is a pointer transition observed on an element
type PointerEvent int

const (
	PointerEnter PointerEvent = iota
	PointerLeave
)

// HoverFlag records whether the pointer rests over an element.
// The zero value is the initial state.
type HoverFlag bool

// Next returns the state after e. Repeated events are idempotent.
func (f HoverFlag) Next(e PointerEvent) HoverFlag {
	switch e {
	case PointerEnter:
		return true
	case PointerLeave:
		return false
	}
	return f
}

// StyleTable maps each hover state to the style it shows
type StyleTable struct {
	Rest  Style `json:"rest"`
	Hover Style `json:"hover"`
}

// Lookup returns the style for f
func (t StyleTable) Lookup(f HoverFlag) Style {
	if f {
		return t.Hover
	}
	return t.Rest
}
