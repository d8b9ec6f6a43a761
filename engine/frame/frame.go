package frame

import (
	"github.com/npillmayer/cssval/engine/dom/style/css"
)

// For padding, margins, etc. 4-way values always start at the top and travel
// clockwise.
const (
	Top int = iota
	Right
	Bottom
	Left
)

// Frame holds all the properties of a rectangular frame, grouped into
// layout properties and visual properties.
type Frame struct {
	Layout RectLayout
	Style  RectStyle
}

// Apply stores properties into their fields. A property overwrites a
// previously applied property of the same type. Apply returns true if one
// of the properties may change the layout of the frame (see
// css.PropertyType.CanTriggerRelayout).
func (f *Frame) Apply(props ...css.Property) (relayout bool) {
	for _, p := range props {
		if !f.Layout.apply(p) && !f.Style.apply(p) {
			tracer().Errorf("property %s has no place in a frame", p.Type())
			continue
		}
		relayout = relayout || p.Type().CanTriggerRelayout()
	}
	return relayout
}

// valueOf extracts the value of p and converts its payload with f. The
// payload of p has to be of type T, which is guaranteed for properties
// created by package css; for the zero Property a value `none` is returned.
func valueOf[T, U any](p css.Property, f func(T) U) css.Value[U] {
	v, ok := css.ValueOf[T](p)
	if !ok {
		tracer().Debugf("property %s does not hold a value of the expected type", p.Type())
		return css.NoneValue[U]()
	}
	return css.Map(v, f)
}

// plain extracts the value of p without converting it.
func plain[T any](p css.Property) css.Value[T] {
	return valueOf(p, func(x T) T { return x })
}
