package dimen

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestRectUnion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.dimen")
	defer teardown()
	//
	u, ok := Union(R(0, 0, 10, 10), R(5, 5, 10, 10))
	assert.True(t, ok)
	assert.Equal(t, R(0, 0, 15, 15), u)
	//
	u, ok = Union(R(3, 4, 1, 1))
	assert.True(t, ok)
	assert.Equal(t, R(3, 4, 1, 1), u)
	//
	_, ok = Union()
	assert.False(t, ok, "union of nothing should not exist")
}

func TestRectUnionUnordered(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.dimen")
	defer teardown()
	//
	first := R(5, 5, 10, 10)
	u, ok := Union(first, R(0, 0, 1, 1))
	assert.True(t, ok)
	assert.Equal(t, R(0, 0, 15, 15), u)
	assert.True(t, u.ContainsRect(first))
	//
	rects := []Rect{R(20, 3, 5, 5), R(-4, 10, 2, 30), R(7, -2, 1, 1)}
	u, _ = Union(rects...)
	assert.Equal(t, R(-4, -2, 29, 42), u)
	for _, r := range rects {
		assert.True(t, u.ContainsRect(r), "union should contain %s", r)
	}
}

func TestRectContains(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.dimen")
	defer teardown()
	//
	r := R(10, 10, 20, 20)
	assert.True(t, r.Contains(Point{10, 10}), "top left corner is inside")
	assert.True(t, r.Contains(Point{29, 29}))
	assert.False(t, r.Contains(Point{30, 15}), "right edge is outside")
	assert.False(t, r.Contains(Point{15, 30}), "bottom edge is outside")
	assert.True(t, r.ContainsF(29.5, 10.0))
	assert.False(t, r.ContainsF(9.99, 15.0))
	//
	assert.True(t, r.ContainsRect(r))
	assert.True(t, r.ContainsRect(R(12, 12, 5, 5)))
	assert.False(t, r.ContainsRect(R(12, 12, 50, 5)))
}

func TestRectHitTest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.dimen")
	defer teardown()
	//
	r := R(10, 10, 20, 20)
	p, ok := r.HitTest(Point{15, 12})
	assert.True(t, ok)
	assert.Equal(t, Point{5, 2}, p)
	_, ok = r.HitTest(Point{10, 15})
	assert.False(t, ok, "point on left edge is not a hit")
	_, ok = r.HitTest(Point{30, 15})
	assert.False(t, ok, "point on right edge is not a hit")
	_, ok = r.HitTest(Point{0, 0})
	assert.False(t, ok)
}

func TestScrollRect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.dimen")
	defer teardown()
	//
	parent := R(0, 0, 100, 100)
	_, ok := parent.ScrollRect()
	assert.False(t, ok)
	s, ok := parent.ScrollRect(R(10, 10, 20, 20), R(50, 80, 10, 70))
	assert.True(t, ok)
	assert.Equal(t, R(0, 0, 100, 150), s)
	//
	inner := R(10, 10, 10, 10)
	s, _ = inner.ScrollRect(R(0, 0, 5, 5))
	assert.Equal(t, R(0, 0, 20, 20), s)
	assert.True(t, s.ContainsRect(inner))
}

func TestGeometryString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.dimen")
	defer teardown()
	//
	assert.Equal(t, "(1, 2)", Point{1, 2}.String())
	assert.Equal(t, "3x4", Size{3, 4}.String())
	assert.Equal(t, "3x4 @ (1, 2)", R(1, 2, 3, 4).String())
	assert.Equal(t, 4, R(1, 2, 3, 4).MaxX())
	assert.Equal(t, 6, R(1, 2, 3, 4).MaxY())
}
