package dimen

import "fmt"

// Point is a coordinate in layout space.
type Point struct {
	X, Y int
}

// Origin is origin
var Origin = Point{0, 0}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Size is an extent in layout space.
type Size struct {
	Width, Height int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Rect is an axis-aligned rectangle in layout space, given by its top left
// corner and its size.
type Rect struct {
	Origin Point
	Size   Size
}

// R is a shortcut for creating a rectangle.
func R(x, y, w, h int) Rect {
	return Rect{Origin: Point{x, y}, Size: Size{w, h}}
}

func (r Rect) String() string {
	return fmt.Sprintf("%s @ %s", r.Size, r.Origin)
}

func (r Rect) MinX() int { return r.Origin.X }
func (r Rect) MaxX() int { return r.Origin.X + r.Size.Width }
func (r Rect) MinY() int { return r.Origin.Y }
func (r Rect) MaxY() int { return r.Origin.Y + r.Size.Height }

// Contains returns true if p is inside r. The far edges are not part of r.
func (r Rect) Contains(p Point) bool {
	return r.MinX() <= p.X && p.X < r.MaxX() &&
		r.MinY() <= p.Y && p.Y < r.MaxY()
}

// ContainsF is Contains for fractional coordinates.
func (r Rect) ContainsF(x, y float32) bool {
	return float32(r.MinX()) <= x && x < float32(r.MaxX()) &&
		float32(r.MinY()) <= y && y < float32(r.MaxY())
}

// HitTest checks if p is strictly inside r, i.e. not on any of the edges.
// If it is, the offset of p from the top left corner of r is returned.
func (r Rect) HitTest(p Point) (Point, bool) {
	dxLeft := p.X - r.MinX()
	dxRight := r.MaxX() - p.X
	dyTop := p.Y - r.MinY()
	dyBottom := r.MaxY() - p.Y
	if dxLeft > 0 && dxRight > 0 && dyTop > 0 && dyBottom > 0 {
		return Point{dxLeft, dyTop}, true
	}
	return Point{}, false
}

// Union returns the minimal bounding rectangle of rects. For an empty
// argument list, false is returned.
func Union(rects ...Rect) (Rect, bool) {
	if len(rects) == 0 {
		tracer().Debugf("union of empty list of rectangles")
		return Rect{}, false
	}
	first := rects[0]
	minX, minY := first.Origin.X, first.Origin.Y
	maxX, maxY := first.MaxX(), first.MaxY()
	for _, r := range rects[1:] {
		minX = min(minX, r.Origin.X)
		minY = min(minY, r.Origin.Y)
		maxX = max(maxX, r.MaxX())
		maxY = max(maxY, r.MaxY())
	}
	return Rect{Origin: Point{minX, minY}, Size: Size{maxX - minX, maxY - minY}}, true
}

// ScrollRect returns the union of r with the union of its children, i.e. the
// area a scroll container has to cover. If children is empty, false is
// returned.
func (r Rect) ScrollRect(children ...Rect) (Rect, bool) {
	u, ok := Union(children...)
	if !ok {
		return Rect{}, false
	}
	return Union(r, u)
}

// ContainsRect returns true if b lies completely within r. Edges are
// inclusive, i.e. r contains itself.
func (r Rect) ContainsRect(b Rect) bool {
	return b.Origin.X >= r.Origin.X &&
		b.Origin.Y >= r.Origin.Y &&
		b.Origin.X+b.Size.Width <= r.Origin.X+r.Size.Width &&
		b.Origin.Y+b.Size.Height <= r.Origin.Y+r.Size.Height
}
