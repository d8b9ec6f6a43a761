package css

import (
	"testing"

	douceur "github.com/aymerick/douceur/css"
	"github.com/npillmayer/cssval/core"
	"github.com/npillmayer/cssval/core/color"
	"github.com/npillmayer/cssval/core/option"
	"github.com/npillmayer/cssval/engine/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"
)

func TestKeyTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.css")
	defer teardown()
	//
	assert.NoError(t, CheckTables())
	km := GetKeyMap()
	assert.Len(t, km.Keys(), 72)
	assert.Len(t, AllShorthandTypes(), 10)
	for _, pt := range AllPropertyTypes() {
		key := km.Key(pt)
		assert.Equal(t, pt.String(), key)
		back, ok := km.PropertyType(key)
		assert.True(t, ok, key)
		assert.Equal(t, pt, back)
	}
	for _, st := range AllShorthandTypes() {
		key := km.ShorthandKey(st)
		assert.Equal(t, st.String(), key)
		back, ok := km.ShorthandType(key)
		assert.True(t, ok, key)
		assert.Equal(t, st, back)
	}
	assert.Equal(t, "display", km.Keys()[0])
	assert.Equal(t, "backface-visibility", km.Keys()[71])
}

func TestKeyLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.css")
	defer teardown()
	//
	km := GetKeyMap()
	pt, ok := km.PropertyType("  width\t")
	assert.True(t, ok)
	assert.Equal(t, Width, pt)
	pt, ok = km.PropertyType("justify-content")
	assert.True(t, ok)
	assert.Equal(t, JustifyContent, pt)
	_, ok = km.PropertyType("asdfasdfasdf")
	assert.False(t, ok)
	_, ok = km.PropertyType("margin")
	assert.False(t, ok, "shorthands are not properties")
	st, ok := km.ShorthandType(" border ")
	assert.True(t, ok)
	assert.Equal(t, Border, st)
	_, ok = km.ShorthandType("border-top-width")
	assert.False(t, ok)
	assert.Equal(t, "color", TextColor.String())
	assert.Equal(t, "box-shadow", BoxShadow.String())
	assert.Equal(t, "?", PropertyType(200).String())
}

func TestKeysWithPrefix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.css")
	defer teardown()
	//
	km := GetKeyMap()
	assert.Equal(t, []string{"overflow", "overflow-x", "overflow-y"}, km.KeysWithPrefix("overflow"))
	assert.Equal(t, []string{"min-height", "min-width"}, km.KeysWithPrefix("min-"))
	assert.Empty(t, km.KeysWithPrefix("colour"))
}

func TestPredicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.css")
	defer teardown()
	//
	var inheritable, gpu, visual int
	for _, pt := range AllPropertyTypes() {
		if pt.IsInheritable() {
			inheritable++
		}
		if pt.IsGPUOnly() {
			gpu++
		}
		if !pt.CanTriggerRelayout() {
			visual++
		}
	}
	assert.Equal(t, 5, inheritable)
	assert.Equal(t, 2, gpu)
	assert.Equal(t, 24, visual)
	assert.True(t, FontFamily.IsInheritable())
	assert.False(t, Width.IsInheritable())
	assert.True(t, Opacity.IsGPUOnly())
	assert.True(t, Transform.IsGPUOnly())
	assert.False(t, TextColor.CanTriggerRelayout())
	assert.False(t, BoxShadowLeft.CanTriggerRelayout())
	assert.False(t, BackgroundColor.CanTriggerRelayout())
	assert.False(t, BackgroundImage.CanTriggerRelayout())
	assert.True(t, Width.CanTriggerRelayout())
	assert.True(t, BorderTopWidth.CanTriggerRelayout())
	assert.True(t, FontSize.CanTriggerRelayout())
}

func TestKeywordPropertiesForAllTypes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.css")
	defer teardown()
	//
	ctors := map[ValueTag]func(PropertyType) Property{
		None:    NoneOf,
		Auto:    AutoOf,
		Initial: InitialOf,
		Inherit: InheritOf,
	}
	for _, pt := range AllPropertyTypes() {
		for tag, ctor := range ctors {
			var p Property
			assert.NotPanics(t, func() { p = ctor(pt) }, pt.String())
			assert.Equal(t, pt, p.Type())
			assert.Equal(t, tag, p.Tag())
			assert.Equal(t, pt.String()+": "+tag.String(), p.String())
		}
	}
	assert.Panics(t, func() { NoneOf(PropertyType(200)) })
}

func TestExactProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.css")
	defer teardown()
	//
	p := SomeWidth(style.Px[style.Width](100))
	assert.Equal(t, Width, p.Type())
	assert.Equal(t, Exact, p.Tag())
	assert.Equal(t, "width: 100px", p.String())
	w, ok := ValueOf[style.Width](p)
	assert.True(t, ok)
	assert.Equal(t, float32(100), w.GetOr(style.Width{}).ToPixels(0))
	_, ok = ValueOf[style.Height](p)
	assert.False(t, ok)
	//
	p = SomeOverflowY(style.OverflowHidden)
	assert.Equal(t, "overflow-y: hidden", p.String())
	o, ok := ValueOf[style.Overflow](AutoOf(OverflowX))
	assert.True(t, ok)
	assert.True(t, o.IsAuto())
	//
	red := SomeBackgroundColor(style.BackgroundContents{style.ColorContent(color.Red)})
	assert.Equal(t, BackgroundColor, red.Type())
	assert.True(t, red.Equals(SomeBackgroundColor(style.BackgroundContents{style.ColorContent(color.Red)})))
	assert.False(t, red.Equals(SomeBackgroundColor(style.BackgroundContents{style.ColorContent(color.Blue)})))
	assert.False(t, red.Equals(SomeBackground(style.BackgroundContents{style.ColorContent(color.Red)})))
	assert.False(t, red.Equals(InheritOf(BackgroundColor)))
	assert.True(t, InheritOf(Cursor).Equals(InheritOf(Cursor)))
}

func TestValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.css")
	defer teardown()
	//
	var v Value[int]
	assert.True(t, v.IsNone())
	_, ok := v.Get()
	assert.False(t, ok)
	assert.Equal(t, 7, v.GetOr(7))
	v = Some(3)
	x, ok := v.Get()
	assert.True(t, ok)
	assert.Equal(t, 3, x)
	assert.True(t, v.Equals(3))
	assert.False(t, v.Equals(4))
	assert.True(t, v.Equals(Exact))
	assert.Equal(t, "3", v.String())
	s := Map(v, func(i int) string { return "#" + style.Percent[style.Width](float32(i)).String() })
	assert.Equal(t, "#3%", s.GetOr(""))
	assert.True(t, Map(InheritValue[int](), func(i int) int { return i + 1 }).IsInherit())
	assert.Equal(t, "initial", InitialValue[style.Cursor]().String())
}

func TestValueMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.css")
	defer teardown()
	//
	choices := option.Of{
		option.None: "unset",
		Auto:        "auto",
		Inherit:     "from parent",
		option.Some: "exact",
	}
	for _, c := range []struct {
		v    Value[style.Width]
		want string
	}{
		{NoneValue[style.Width](), "unset"},
		{AutoValue[style.Width](), "auto"},
		{InheritValue[style.Width](), "from parent"},
		{InitialValue[style.Width](), "exact"},
		{Some(style.Px[style.Width](10)), "exact"},
	} {
		s, err := option.MatchAs[string](c.v, choices)
		assert.NoError(t, err)
		assert.Equal(t, c.want, s, c.v.String())
	}
	overflow := Some(style.OverflowVisible)
	s, err := option.MatchAs[string](overflow, option.Of{
		style.OverflowVisible: "visible",
		option.Some:           "clipped",
	})
	assert.NoError(t, err)
	assert.Equal(t, "visible", s)
	_, err = AutoValue[style.Overflow]().Match(option.Of{Inherit: 1})
	assert.ErrorIs(t, err, option.ErrCannotMatchValue)
}

func TestResolveDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.css")
	defer teardown()
	//
	km := GetKeyMap()
	k, ok := km.Resolve(&douceur.Declaration{Property: "Border-Top-Width", Value: "2px"})
	assert.True(t, ok)
	assert.False(t, k.IsShort)
	assert.Equal(t, BorderTopWidth, k.Property)
	k, ok = km.Resolve(&douceur.Declaration{Property: " margin ", Value: "0", Important: true})
	assert.True(t, ok)
	assert.True(t, k.IsShort)
	assert.True(t, k.Important)
	assert.Equal(t, Margin, k.Shorthand)
	assert.Equal(t, "margin", k.String())
	//
	keys, err := km.ResolveAll([]*douceur.Declaration{
		{Property: "width", Value: "10px"},
		{Property: "colour", Value: "red"},
		{Property: "padding", Value: "0"},
		{Property: "border-top-colour", Value: "red"},
	})
	assert.Len(t, keys, 2)
	errs := multierr.Errors(err)
	if assert.Len(t, errs, 2) {
		assert.Equal(t, core.EMISSING, core.Code(errs[0]))
		assert.Contains(t, core.UserMessage(errs[1]), "border-top-color")
	}
}

func TestKeywordProperty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.css")
	defer teardown()
	//
	tag, ok := KeywordTag(" Inherit ")
	assert.True(t, ok)
	assert.Equal(t, Inherit, tag)
	_, ok = KeywordTag("10px")
	assert.False(t, ok)
	p, ok := KeywordProperty(Height, "auto")
	assert.True(t, ok)
	assert.Equal(t, "height: auto", p.String())
	_, ok = KeywordProperty(Height, "tall")
	assert.False(t, ok)
}
