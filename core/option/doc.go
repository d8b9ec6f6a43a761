/*
Package option implements matching on optional values.

A value which may be unset, or which may carry one of a handful of keyword
states besides a concrete value, implements option.Type. Clients then match
on it with either a Maybe (None/Some/Error) or an Of, which first tries
concrete values and keywords and falls back to Some:

    w, err := width.Match(option.Of{
        option.None: 0,
        css.Auto:    autoWidth,
        option.Some: resolve,
    })

Functions of type func(any) (any, error) and func(any, MaybeOption) (any, error)
found as match results are called with the matched value.
*/
package option

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssval.option'.
func tracer() tracing.Trace {
	return tracing.Select("cssval.option")
}
