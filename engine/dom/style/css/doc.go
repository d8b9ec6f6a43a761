/*
Package css holds the property types of the CSS value model and the
cascaded values bound to them.

Every property key, e.g. "border-top-width", maps to exactly one
PropertyType; shorthand keys, e.g. "border", map to a ShorthandType. Both
tables are accessible through the KeyMap:

    km := css.GetKeyMap()
    t, ok := km.PropertyType("border-top-width")   // css.BorderTopWidth, true

A Property binds a property type to a value of type Value[T], where T is
the payload type for the property type (see package style). Values are
tagged as either none, auto, initial, inherit or exact. Expansion of
shorthands and cascading are left to clients.

Properties are immutable values and may be shared between goroutines.
*/
package css
