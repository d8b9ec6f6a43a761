package css

import (
	"fmt"
	"reflect"

	"github.com/npillmayer/cssval/core/option"
)

// ValueTag tells the cascade how a property value has been specified.
// Only Exact values carry a payload.
type ValueTag uint8

// Auto, Initial and Inherit may be used for option-matching:
//
//	option.Of{
//	     css.Auto:    …,   // will match a value `auto`
//	     option.Some: …,   // will match any other value
//	}
const (
	None ValueTag = iota
	Auto
	Initial
	Inherit
	Exact
)

var tagKeywords = [...]string{"none", "auto", "initial", "inherit", "exact"}

func (tag ValueTag) String() string {
	if int(tag) >= len(tagKeywords) {
		return "?"
	}
	return tagKeywords[tag]
}

// Value is a cascaded property value of type T. The zero value is None.
type Value[T any] struct {
	tag ValueTag
	v   T
}

// Some creates an exact value x.
func Some[T any](x T) Value[T] {
	return Value[T]{tag: Exact, v: x}
}

// NoneValue creates a value `none`.
func NoneValue[T any]() Value[T] {
	return Value[T]{tag: None}
}

// AutoValue creates a value `auto`.
func AutoValue[T any]() Value[T] {
	return Value[T]{tag: Auto}
}

// InitialValue creates a value `initial`.
func InitialValue[T any]() Value[T] {
	return Value[T]{tag: Initial}
}

// InheritValue creates a value `inherit`.
func InheritValue[T any]() Value[T] {
	return Value[T]{tag: Inherit}
}

// TaggedValue creates a value with a keyword tag. For tag Exact it
// returns an exact zero value of T.
func TaggedValue[T any](tag ValueTag) Value[T] {
	return Value[T]{tag: tag}
}

func (o Value[T]) Tag() ValueTag { return o.tag }

// Get returns the payload of an exact value. For any other tag it
// returns false.
func (o Value[T]) Get() (T, bool) {
	if o.tag != Exact {
		var zero T
		return zero, false
	}
	return o.v, true
}

// GetOr returns the payload of an exact value, or def for any other tag.
func (o Value[T]) GetOr(def T) T {
	if o.tag != Exact {
		return def
	}
	return o.v
}

func (o Value[T]) IsAuto() bool    { return o.tag == Auto }
func (o Value[T]) IsInitial() bool { return o.tag == Initial }
func (o Value[T]) IsInherit() bool { return o.tag == Inherit }
func (o Value[T]) IsExact() bool   { return o.tag == Exact }

// IsNone is part of interface option.Type.
func (o Value[T]) IsNone() bool { return o.tag == None }

// Match is part of interface option.Type.
func (o Value[T]) Match(choices any) (any, error) {
	return option.Match(o, choices)
}

// Equals is part of interface option.Type. other may be a ValueTag, another
// Value[T] or a payload of type T.
func (o Value[T]) Equals(other any) bool {
	switch x := other.(type) {
	case ValueTag:
		return o.tag == x
	case Value[T]:
		if o.tag != x.tag {
			return false
		}
		return o.tag != Exact || equalPayloads(o.v, x.v)
	case T:
		return o.tag == Exact && equalPayloads(o.v, x)
	}
	return false
}

// equalPayloads compares a and b if T is comparable, and deeply otherwise
// (slice-valued payloads like BackgroundContents).
func equalPayloads[T any](a, b T) bool {
	if t := reflect.TypeOf(a); t != nil && t.Comparable() {
		return any(a) == any(b)
	}
	return reflect.DeepEqual(a, b)
}

// Map applies f to the payload of an exact value, keeping any other tag.
func Map[T, U any](o Value[T], f func(T) U) Value[U] {
	if o.tag != Exact {
		return Value[U]{tag: o.tag}
	}
	return Some(f(o.v))
}

func (o Value[T]) String() string {
	if o.tag != Exact {
		return o.tag.String()
	}
	if s, ok := any(o.v).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", o.v)
}

var _ option.Type = Value[int]{}
