package motion

import "encoding/json"

// Spec is the declarative animation attached to one element. The client
// script reads it from the element's data-motion attribute.
type Spec struct {
	Initial    *Style      `json:"initial,omitempty"`
	InView     *Style      `json:"inView,omitempty"`
	Hover      *Style      `json:"hover,omitempty"`
	States     *StyleTable `json:"states,omitempty"`
	Transition *Transition `json:"transition,omitempty"`
	Viewport   *Viewport   `json:"viewport,omitempty"`
}

// JSON encodes s for an HTML attribute
func (s Spec) JSON() string {
	data, err := json.Marshal(s)
	if err != nil {
		return "{}"
	}
	return string(data)
}
