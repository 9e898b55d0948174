package rvec

// openAttributed is implemented by vectors that carry an open, dynamically
// enumerable attribute list.
type openAttributed interface {
	openComponents() []Component
}

// slotAttributed is implemented by vectors that declare a closed set of
// fixed slots on top of their open storage.
type slotAttributed interface {
	slotComponents() []Component
}

// AllAttributes merges whatever open attributes v carries with whatever
// fixed-slot attributes it carries into one ordered name/value view, open
// attributes first. It exists for introspection and display; arithmetic
// never consults it.
func AllAttributes(v Vector) []Component {
	var out []Component
	if o, ok := v.(openAttributed); ok {
		out = append(out, o.openComponents()...)
	}
	if s, ok := v.(slotAttributed); ok {
		out = append(out, s.slotComponents()...)
	}
	if out == nil {
		out = v.Components()
	}
	return out
}
