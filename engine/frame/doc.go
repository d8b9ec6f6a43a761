/*
Package frame groups the CSS properties of a rectangular frame.

Layout engines and renderers are interested in different subsets of the
properties of a box. RectLayout holds the properties which determine the
geometry of a frame, i.e. everything the box model and flex layout need.
RectStyle holds the properties which determine what a frame looks like.
Frame holds both and sorts properties into the right group:

    var f frame.Frame
    relayout := f.Apply(
        css.SomeWidth(style.Px[style.Width](200)),
        css.SomeTextColor(style.TextColor{U: color.Red}),
    )

For padding, margins, etc., 4-way values always start at the top and travel
clockwise, i.e. they are indexed with Top, Right, Bottom and Left.

After cascading, a RectLayout may be resolved against the dimensions of
its containing block, yielding a Box with dimensions in pixels.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package frame

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssval.frame'.
func tracer() tracing.Trace {
	return tracing.Select("cssval.frame")
}
