package style

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cssval/core/dimen"
	"github.com/npillmayer/cssval/core/percent"
)

// TransformKind is the kind of a transform function.
type TransformKind uint8

// Transform functions
const (
	TransformMatrix TransformKind = iota
	TransformMatrix3D
	TransformTranslate
	TransformTranslate3D
	TransformTranslateX
	TransformTranslateY
	TransformTranslateZ
	TransformRotate
	TransformRotate3D
	TransformRotateX
	TransformRotateY
	TransformRotateZ
	TransformScale
	TransformScale3D
	TransformScaleX
	TransformScaleY
	TransformScaleZ
	TransformSkew
	TransformSkewX
	TransformSkewY
	TransformPerspective
)

var transformFuncs = keywords{"matrix", "matrix3d", "translate", "translate3d",
	"translateX", "translateY", "translateZ", "rotate", "rotate3d", "rotateX",
	"rotateY", "rotateZ", "scale", "scale3d", "scaleX", "scaleY", "scaleZ",
	"skew", "skewX", "skewY", "perspective"}

func (k TransformKind) String() string {
	return transformFuncs.name(uint8(k))
}

// Matrix2D holds the arguments of `matrix(a, b, c, d, tx, ty)`.
type Matrix2D struct {
	A, B, C, D, TX, TY dimen.PixelValue
}

// Matrix3D holds the arguments of `matrix3d(…)`, in row-major order.
type Matrix3D struct {
	M11, M12, M13, M14 dimen.PixelValue
	M21, M22, M23, M24 dimen.PixelValue
	M31, M32, M33, M34 dimen.PixelValue
	M41, M42, M43, M44 dimen.PixelValue
}

// Translate2D holds the arguments of `translate(x, y)`.
type Translate2D struct {
	X, Y dimen.PixelValue
}

// Translate3D holds the arguments of `translate3d(x, y, z)`.
type Translate3D struct {
	X, Y, Z dimen.PixelValue
}

// Rotate3D holds the arguments of `rotate3d(x, y, z, angle)`.
type Rotate3D struct {
	X, Y, Z percent.Percent
	Angle   dimen.AngleValue
}

// Scale2D holds the arguments of `scale(x, y)`.
type Scale2D struct {
	X, Y percent.Percent
}

// Scale3D holds the arguments of `scale3d(x, y, z)`.
type Scale3D struct {
	X, Y, Z percent.Percent
}

// Skew2D holds the arguments of `skew(x, y)`.
type Skew2D struct {
	X, Y percent.Percent
}

// Transform is a single transform function. The type of its arguments
// depends on its kind:
//
//	Matrix                  Matrix2D
//	Matrix3D                Matrix3D
//	Translate               Translate2D
//	Translate3D             Translate3D
//	TranslateX/Y/Z          dimen.PixelValue
//	Rotate, RotateX/Y/Z     dimen.AngleValue
//	Rotate3D                Rotate3D
//	Scale                   Scale2D
//	Scale3D                 Scale3D
//	ScaleX/Y/Z              percent.Percent
//	Skew                    Skew2D
//	SkewX/Y                 percent.Percent
//	Perspective             dimen.PixelValue
//
// Use TransformArgs to get the arguments.
type Transform struct {
	kind TransformKind
	args any
}

// Kind returns the transform function of t.
func (t Transform) Kind() TransformKind {
	return t.kind
}

// TransformArgs returns the arguments of t, if they are of type T.
func TransformArgs[T any](t Transform) (T, bool) {
	a, ok := t.args.(T)
	return a, ok
}

func Matrix(m Matrix2D) Transform               { return Transform{TransformMatrix, m} }
func Matrix3DTransform(m Matrix3D) Transform    { return Transform{TransformMatrix3D, m} }
func Translate(x, y dimen.PixelValue) Transform { return Transform{TransformTranslate, Translate2D{x, y}} }
func TranslateX(x dimen.PixelValue) Transform   { return Transform{TransformTranslateX, x} }
func TranslateY(y dimen.PixelValue) Transform   { return Transform{TransformTranslateY, y} }
func TranslateZ(z dimen.PixelValue) Transform   { return Transform{TransformTranslateZ, z} }
func Rotate(a dimen.AngleValue) Transform       { return Transform{TransformRotate, a} }
func RotateX(a dimen.AngleValue) Transform      { return Transform{TransformRotateX, a} }
func RotateY(a dimen.AngleValue) Transform      { return Transform{TransformRotateY, a} }
func RotateZ(a dimen.AngleValue) Transform      { return Transform{TransformRotateZ, a} }
func Scale(x, y percent.Percent) Transform      { return Transform{TransformScale, Scale2D{x, y}} }
func ScaleX(x percent.Percent) Transform        { return Transform{TransformScaleX, x} }
func ScaleY(y percent.Percent) Transform        { return Transform{TransformScaleY, y} }
func ScaleZ(z percent.Percent) Transform        { return Transform{TransformScaleZ, z} }
func Skew(x, y percent.Percent) Transform       { return Transform{TransformSkew, Skew2D{x, y}} }
func SkewX(x percent.Percent) Transform         { return Transform{TransformSkewX, x} }
func SkewY(y percent.Percent) Transform         { return Transform{TransformSkewY, y} }
func Perspective(d dimen.PixelValue) Transform  { return Transform{TransformPerspective, d} }

// Translate3DTransform creates a `translate3d(x, y, z)` transform.
func Translate3DTransform(x, y, z dimen.PixelValue) Transform {
	return Transform{TransformTranslate3D, Translate3D{x, y, z}}
}

// Rotate3DTransform creates a `rotate3d(x, y, z, angle)` transform.
func Rotate3DTransform(x, y, z percent.Percent, a dimen.AngleValue) Transform {
	return Transform{TransformRotate3D, Rotate3D{x, y, z, a}}
}

// Scale3DTransform creates a `scale3d(x, y, z)` transform.
func Scale3DTransform(x, y, z percent.Percent) Transform {
	return Transform{TransformScale3D, Scale3D{x, y, z}}
}

func (t Transform) String() string {
	var args []fmt.Stringer
	switch a := t.args.(type) {
	case Matrix2D:
		args = []fmt.Stringer{a.A, a.B, a.C, a.D, a.TX, a.TY}
	case Matrix3D:
		args = []fmt.Stringer{a.M11, a.M12, a.M13, a.M14, a.M21, a.M22, a.M23, a.M24,
			a.M31, a.M32, a.M33, a.M34, a.M41, a.M42, a.M43, a.M44}
	case Translate2D:
		args = []fmt.Stringer{a.X, a.Y}
	case Translate3D:
		args = []fmt.Stringer{a.X, a.Y, a.Z}
	case Rotate3D:
		args = []fmt.Stringer{a.X, a.Y, a.Z, a.Angle}
	case Scale2D:
		args = []fmt.Stringer{a.X, a.Y}
	case Scale3D:
		args = []fmt.Stringer{a.X, a.Y, a.Z}
	case Skew2D:
		args = []fmt.Stringer{a.X, a.Y}
	case fmt.Stringer:
		args = []fmt.Stringer{a}
	}
	return t.kind.String() + "(" + joinList(args) + ")"
}

// Transforms is the value of the `transform` property, applied in order.
type Transforms []Transform

func (ts Transforms) String() string {
	if len(ts) == 0 {
		return "none"
	}
	s := make([]string, len(ts))
	for i, t := range ts {
		s[i] = t.String()
	}
	return strings.Join(s, " ")
}

// TransformOrigin is the value of `transform-origin`. The default is 0px 0px.
type TransformOrigin struct {
	X, Y dimen.PixelValue
}

func (o TransformOrigin) String() string {
	return o.X.String() + " " + o.Y.String()
}

// PerspectiveOrigin is the value of `perspective-origin`. The default is
// 0px 0px.
type PerspectiveOrigin struct {
	X, Y dimen.PixelValue
}

func (o PerspectiveOrigin) String() string {
	return o.X.String() + " " + o.Y.String()
}

// BackfaceVisibility is the value of `backface-visibility`.
type BackfaceVisibility uint8

// Backface visibilities. Visible is the default.
const (
	BackfaceVisible BackfaceVisibility = iota
	BackfaceHidden
)

var backfaceKeywords = keywords{"visible", "hidden"}

func (b BackfaceVisibility) String() string {
	return backfaceKeywords.name(uint8(b))
}

// ParseBackfaceVisibility looks up a backface-visibility keyword.
func ParseBackfaceVisibility(s string) (BackfaceVisibility, bool) {
	return parseKeyword[BackfaceVisibility](backfaceKeywords, s)
}
