package style

import (
	"fmt"
	"math"

	"github.com/npillmayer/cssval/core/color"
	"github.com/npillmayer/cssval/core/dimen"
	"github.com/npillmayer/cssval/core/percent"
)

// ExtendMode tells whether a gradient is repeated or clamped to the edges.
type ExtendMode uint8

// Extend modes. Clamp is the default.
const (
	ExtendClamp ExtendMode = iota
	ExtendRepeat
)

func (m ExtendMode) String() string {
	return keywords{"clamp", "repeat"}.name(uint8(m))
}

// Shape is the shape of a radial gradient.
type Shape uint8

// Shapes of radial gradients. Ellipse is the default.
const (
	ShapeEllipse Shape = iota
	ShapeCircle
)

var shapeKeywords = keywords{"ellipse", "circle"}

func (s Shape) String() string {
	return shapeKeywords.name(uint8(s))
}

// ParseShape looks up a gradient shape keyword.
func ParseShape(s string) (Shape, bool) {
	return parseKeyword[Shape](shapeKeywords, s)
}

// LinearColorStop is a color stop of a linear or radial gradient.
// Offset is nil if no offset has been given.
type LinearColorStop struct {
	Offset *percent.Percent
	Color  color.U
}

func (st LinearColorStop) String() string {
	if st.Offset == nil {
		return st.Color.String()
	}
	return st.Color.String() + " " + st.Offset.String()
}

// RadialColorStop is a color stop of a conic gradient.
// Offset is nil if no offset has been given.
type RadialColorStop struct {
	Offset *dimen.AngleValue
	Color  color.U
}

func (st RadialColorStop) String() string {
	if st.Offset == nil {
		return st.Color.String()
	}
	return st.Color.String() + " " + st.Offset.String()
}

// LinearGradient is the value of `linear-gradient(…)`.
type LinearGradient struct {
	Direction  Direction
	ExtendMode ExtendMode
	Stops      []LinearColorStop
}

func (g LinearGradient) String() string {
	return fmt.Sprintf("%s(%s, %s)", gradientFunc("linear", g.ExtendMode), g.Direction,
		joinList(g.Stops))
}

// RadialGradient is the value of `radial-gradient(…)`.
type RadialGradient struct {
	Shape      Shape
	ExtendMode ExtendMode
	Stops      []LinearColorStop
}

func (g RadialGradient) String() string {
	return fmt.Sprintf("%s(%s, %s)", gradientFunc("radial", g.ExtendMode), g.Shape,
		joinList(g.Stops))
}

// ConicGradient is the value of `conic-gradient(…)`.
// Use NewConicGradient for a gradient with the usual defaults.
type ConicGradient struct {
	ExtendMode ExtendMode
	CenterX    dimen.PixelValue
	CenterY    dimen.PixelValue
	Angle      dimen.AngleValue
	Stops      []RadialColorStop
}

// NewConicGradient creates a conic gradient centered at 50% 50%,
// starting at 0deg.
func NewConicGradient(stops ...RadialColorStop) ConicGradient {
	return ConicGradient{
		CenterX: dimen.ConstPercent(50),
		CenterY: dimen.ConstPercent(50),
		Angle:   dimen.ZeroAngle(),
		Stops:   stops,
	}
}

func (g ConicGradient) String() string {
	return fmt.Sprintf("%s(from %s at %s %s, %s)", gradientFunc("conic", g.ExtendMode),
		g.Angle, g.CenterX, g.CenterY, joinList(g.Stops))
}

func gradientFunc(name string, mode ExtendMode) string {
	if mode == ExtendRepeat {
		return "repeating-" + name + "-gradient"
	}
	return name + "-gradient"
}

// --- Directions ------------------------------------------------------------

// DirectionCorner is a side or corner of a rectangle, as used in
// `to top right`.
type DirectionCorner uint8

// Sides and corners
const (
	DirRight DirectionCorner = iota
	DirLeft
	DirTop
	DirBottom
	DirTopRight
	DirTopLeft
	DirBottomRight
	DirBottomLeft
)

var directionKeywords = keywords{"right", "left", "top", "bottom", "top right",
	"top left", "bottom right", "bottom left"}

func (d DirectionCorner) String() string {
	return directionKeywords.name(uint8(d))
}

// Opposite returns the side or corner across the rectangle.
func (d DirectionCorner) Opposite() DirectionCorner {
	switch d {
	case DirRight:
		return DirLeft
	case DirLeft:
		return DirRight
	case DirTop:
		return DirBottom
	case DirBottom:
		return DirTop
	case DirTopRight:
		return DirBottomLeft
	case DirBottomLeft:
		return DirTopRight
	case DirTopLeft:
		return DirBottomRight
	}
	return DirTopLeft
}

// Combine joins a horizontal and a vertical side to a corner, in either
// order. Other combinations return false.
func (d DirectionCorner) Combine(other DirectionCorner) (DirectionCorner, bool) {
	switch {
	case d == DirRight && other == DirTop, d == DirTop && other == DirRight:
		return DirTopRight, true
	case d == DirLeft && other == DirTop, d == DirTop && other == DirLeft:
		return DirTopLeft, true
	case d == DirRight && other == DirBottom, d == DirBottom && other == DirRight:
		return DirBottomRight, true
	case d == DirLeft && other == DirBottom, d == DirBottom && other == DirLeft:
		return DirBottomLeft, true
	}
	return d, false
}

// ToPoint returns the point of a side or corner, relative to the top left
// corner of r. Only the size of r is considered.
func (d DirectionCorner) ToPoint(r dimen.Rect) dimen.Point {
	w, h := r.Size.Width, r.Size.Height
	switch d {
	case DirRight:
		return dimen.Point{X: w, Y: h / 2}
	case DirLeft:
		return dimen.Point{X: 0, Y: h / 2}
	case DirTop:
		return dimen.Point{X: w / 2, Y: 0}
	case DirBottom:
		return dimen.Point{X: w / 2, Y: h}
	case DirTopRight:
		return dimen.Point{X: w, Y: 0}
	case DirBottomRight:
		return dimen.Point{X: w, Y: h}
	case DirBottomLeft:
		return dimen.Point{X: 0, Y: h}
	}
	return dimen.Point{X: 0, Y: 0}
}

// DirectionCorners is a direction given as `from` and `to` sides or corners.
type DirectionCorners struct {
	From, To DirectionCorner
}

// DirectionKind tells how a gradient direction has been specified.
type DirectionKind uint8

// Kinds of directions
const (
	DirectionAngle DirectionKind = iota
	DirectionFromTo
)

// Direction is the direction of a linear gradient, either an angle or a
// pair of sides/corners.
type Direction struct {
	Kind    DirectionKind
	Angle   dimen.AngleValue
	Corners DirectionCorners
}

// AngleDirection creates a direction from an angle.
func AngleDirection(a dimen.AngleValue) Direction {
	return Direction{Kind: DirectionAngle, Angle: a}
}

// FromToDirection creates a direction from two sides or corners.
func FromToDirection(from, to DirectionCorner) Direction {
	return Direction{Kind: DirectionFromTo, Corners: DirectionCorners{From: from, To: to}}
}

func (d Direction) String() string {
	if d.Kind == DirectionFromTo {
		return "to " + d.Corners.To.String()
	}
	return d.Angle.String()
}

// ToPoints calculates start and end point of a gradient line within r.
// Points are relative to the top left corner of r.
//
// For angles, the gradient line runs through the center of r. Its length is
// approximated by projecting the center-to-corner line of the quadrant the
// angle points into; for angles not pointing to a corner the result is not
// exact. r must have positive sides, otherwise both points are the origin.
func (d Direction) ToPoints(r dimen.Rect) (start, end dimen.Point) {
	if d.Kind == DirectionFromTo {
		return d.Corners.From.ToPoint(r), d.Corners.To.ToPoint(r)
	}
	if r.Size.Width <= 0 || r.Size.Height <= 0 {
		tracer().Debugf("gradient direction in empty rectangle %s", r)
		return dimen.Origin, dimen.Origin
	}
	deg := -d.Angle.ToDegrees() // negate winding direction
	wh := float32(r.Size.Width) / 2.0
	hh := float32(r.Size.Height) / 2.0
	hypotenuse := sqrt32(wh*wh + hh*hh)
	toTopLeft := radToDeg(float32(math.Atan(float64(hh / wh))))
	var ending float32
	switch {
	case deg < 90:
		ending = 90 - toTopLeft
	case deg < 180:
		ending = 90 + toTopLeft
	case deg < 270:
		ending = 270 - toTopLeft
	default:
		ending = 270 + toTopLeft
	}
	length := abs32(hypotenuse * cos32(degToRad(ending-deg)))
	dx := sin32(degToRad(deg)) * length
	dy := cos32(degToRad(deg)) * length
	start = dimen.Point{X: round32(wh + dx), Y: round32(hh + dy)}
	end = dimen.Point{X: round32(wh - dx), Y: round32(hh - dy)}
	return start, end
}

// Gradient geometry is computed in float32 throughout. Results are rounded
// to float32 after every call into package math.

func degToRad(d float32) float32 { return d * (math.Pi / 180.0) }
func radToDeg(r float32) float32 { return r * (180.0 / math.Pi) }
func sqrt32(x float32) float32   { return float32(math.Sqrt(float64(x))) }
func sin32(x float32) float32    { return float32(math.Sin(float64(x))) }
func cos32(x float32) float32    { return float32(math.Cos(float64(x))) }
func abs32(x float32) float32    { return float32(math.Abs(float64(x))) }
func round32(x float32) int      { return int(math.Round(float64(x))) }
