package option

import (
	"errors"
	"fmt"
)

var ErrNoSuchMatchPattern = errors.New("no such match pattern")
var ErrCannotMatchUnsetValue = errors.New("cannot match unset value")
var ErrCannotMatchValue = errors.New("cannot match value")

type MaybeOption int

const (
	None MaybeOption = iota
	Some
	Error
)

func (m MaybeOption) String() string {
	switch m {
	case None:
		return "None"
	case Some:
		return "Some"
	}
	return "Error"
}

// Maybe is a type used for matching of optional types.
// It will match `Some` if a value is set, `None` if it is unset, or `Error`
// if an error occurs.
type Maybe map[MaybeOption]any

// Of is a type used for matching of optional types.
// It will first try to match concrete values, and in case of no match will
// then try a Maybe match.
type Of map[any]any

// Type is a type for optional values.
type Type interface {
	Match(choices any) (any, error)
	Equals(other any) bool
	IsNone() bool
}

// Match will do a standard matching of o against choices.
// It may be used to implement Type.Match for a new optional type.
//
// choices are expected to be of type Of or Maybe. Keys of an Of are either
// concrete values for o, or of type MaybeOption. Values of the map may be
// of any type.
//
// If choices is of unknown kind, nil and ErrNoSuchMatchPattern are returned.
func Match(o Type, choices any) (value any, err error) {
	switch c := choices.(type) {
	case Of:
		return c.Match(o)
	case Maybe:
		return c.Match(o)
	}
	return nil, ErrNoSuchMatchPattern
}

// MatchAs matches o against choices and asserts the result to be of type T.
func MatchAs[T any](o Type, choices any) (T, error) {
	var zero T
	v, err := Match(o, choices)
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("match result is of type %T, expected %T", v, zero)
	}
	return t, nil
}

func (of Of) Match(o Type) (value any, err error) {
	tracer().Debugf("match %T against option.Of", o)
	if o.IsNone() {
		if expr, ok := of[None]; ok {
			value, err = valueOrExpr(expr, o, None)
		} else {
			err = ErrCannotMatchUnsetValue
		}
		return value, err
	}
	err = ErrCannotMatchValue
	matched := false
	for k, expr := range of {
		if _, isOpt := k.(MaybeOption); isOpt {
			continue
		}
		if o.Equals(k) {
			matched = true
			value, err = valueOrExpr(expr, o, Some)
			break
		}
	}
	if !matched {
		if expr, ok := of[Some]; ok {
			value, err = valueOrExpr(expr, o, Some)
		}
	}
	if err != nil {
		tracer().Debugf("option: %v", err)
		if expr, ok := of[Error]; ok {
			value, err = valueOrExpr(expr, o, Error)
		}
	}
	return value, err
}

func (maybe Maybe) Match(o Type) (value any, err error) {
	tracer().Debugf("match %T against option.Maybe", o)
	if o.IsNone() {
		if expr, ok := maybe[None]; ok {
			value, err = valueOrExpr(expr, o, None)
		} else {
			err = ErrCannotMatchUnsetValue
		}
		return value, err
	}
	if expr, ok := maybe[Some]; ok {
		value, err = valueOrExpr(expr, o, Some)
	} else {
		err = ErrCannotMatchValue
	}
	if err != nil {
		tracer().Debugf("option: %v", err)
		if expr, ok := maybe[Error]; ok {
			value, err = valueOrExpr(expr, o, Error)
		}
	}
	return value, err
}

func valueOrExpr(op any, value Type, t MaybeOption) (any, error) {
	switch x := op.(type) {
	case func(any, MaybeOption) (any, error):
		return x(value, t)
	case func(any) (any, error):
		return x(value)
	}
	return op, nil
}

// Fail may be used as an option case, causing a Match to fail with an error.
// The error will be returned by Match(…), unless caught with an option.Error
// label.
//
//	_, err := o.Match(option.Of{
//	     option.None: …,
//	     99:          option.Fail(errors.New("99 is illegal")),
//	     option.Some: …,
//	})
func Fail(err error) func(any) (any, error) {
	return func(any) (any, error) {
		return nil, err
	}
}

// Safe wraps a Match's return values and drops the error value.
func Safe(x any, err error) any {
	return x
}

// --- Ref -------------------------------------------------------------------

// Ref is an optional value of a comparable type T.
type Ref[T comparable] struct {
	x   T
	set bool
}

// Something creates an optional value which is set to x.
func Something[T comparable](x T) Ref[T] {
	return Ref[T]{x: x, set: true}
}

// Nothing creates an unset optional value.
func Nothing[T comparable]() Ref[T] {
	return Ref[T]{}
}

// Equals is part of interface Type.
func (o Ref[T]) Equals(other any) bool {
	if !o.set {
		return false
	}
	if x, ok := other.(T); ok {
		return x == o.x
	}
	return false
}

// IsNone returns true if o is unset.
func (o Ref[T]) IsNone() bool {
	return !o.set
}

// Unwrap returns the value of o, which is T's zero value if o is unset.
func (o Ref[T]) Unwrap() T {
	return o.x
}

func (o Ref[T]) Match(choices any) (value any, err error) {
	return Match(o, choices)
}

func (o Ref[T]) String() string {
	if !o.set {
		return "None"
	}
	return fmt.Sprintf("%v", o.x)
}

var _ Type = Ref[int]{}
