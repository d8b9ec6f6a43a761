package css

import (
	"sort"
	"strings"
	"sync"

	"github.com/derekparker/trie"
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/cssval/core"
	"github.com/npillmayer/schuko/tracing"
	"go.uber.org/multierr"
)

// tracer traces with key 'cssval.css'.
func tracer() tracing.Trace {
	return tracing.Select("cssval.css")
}

// KeyMap maps CSS keys to property types and vice versa. There are two
// disjoint tables, one for regular properties and one for shorthands.
// A KeyMap is read-only and may be shared between goroutines.
type KeyMap struct {
	longhands  *linkedhashmap.Map // string -> PropertyType
	shorthands *linkedhashmap.Map // string -> ShorthandType
	prefixes   *trie.Trie         // all keys, for prefix search
}

var theKeyMap *KeyMap
var keyMapOnce sync.Once

// GetKeyMap returns the key map. It is built on first use.
func GetKeyMap() *KeyMap {
	keyMapOnce.Do(func() {
		theKeyMap = newKeyMap()
	})
	return theKeyMap
}

func newKeyMap() *KeyMap {
	km := &KeyMap{
		longhands:  linkedhashmap.New(),
		shorthands: linkedhashmap.New(),
		prefixes:   trie.New(),
	}
	for i, key := range propertyKeys {
		km.longhands.Put(key, PropertyType(i))
		km.prefixes.Add(key, PropertyType(i))
	}
	for i, key := range shorthandKeys {
		km.shorthands.Put(key, ShorthandType(i))
		km.prefixes.Add(key, ShorthandType(i))
	}
	tracer().Debugf("CSS key map holds %d properties and %d shorthands",
		km.longhands.Size(), km.shorthands.Size())
	return km
}

// PropertyType looks up a property key, e.g. "width". Leading and trailing
// white space is ignored. Shorthand keys are not found by this method.
func (km *KeyMap) PropertyType(key string) (PropertyType, bool) {
	v, ok := km.longhands.Get(strings.TrimSpace(key))
	if !ok {
		return 0, false
	}
	return v.(PropertyType), true
}

// ShorthandType looks up a shorthand key, e.g. "margin". Leading and
// trailing white space is ignored.
func (km *KeyMap) ShorthandType(key string) (ShorthandType, bool) {
	v, ok := km.shorthands.Get(strings.TrimSpace(key))
	if !ok {
		return 0, false
	}
	return v.(ShorthandType), true
}

// Key returns the key a property type has been registered with.
func (km *KeyMap) Key(t PropertyType) string {
	k, _ := km.longhands.Find(func(_ interface{}, v interface{}) bool {
		return v.(PropertyType) == t
	})
	if k == nil {
		panic("CSS property type without key")
	}
	return k.(string)
}

// ShorthandKey returns the key a shorthand type has been registered with.
func (km *KeyMap) ShorthandKey(t ShorthandType) string {
	k, _ := km.shorthands.Find(func(_ interface{}, v interface{}) bool {
		return v.(ShorthandType) == t
	})
	if k == nil {
		panic("CSS shorthand type without key")
	}
	return k.(string)
}

// Keys returns all property keys, not including shorthands, in table order.
func (km *KeyMap) Keys() []string {
	keys := make([]string, 0, km.longhands.Size())
	km.longhands.Each(func(k interface{}, _ interface{}) {
		keys = append(keys, k.(string))
	})
	return keys
}

// KeysWithPrefix returns all keys, shorthands included, starting with
// prefix, in alphabetical order. This is useful for suggestions in
// diagnostic messages, e.g. for a mistyped key "border-top-colour".
func (km *KeyMap) KeysWithPrefix(prefix string) []string {
	keys := km.prefixes.PrefixSearch(strings.TrimSpace(prefix))
	sort.Strings(keys)
	return keys
}

// CheckTables verifies that every property type and every shorthand type
// has exactly one key, and that no key is used by both tables. All defects
// found are reported.
func CheckTables() error {
	km := GetKeyMap()
	var err error
	if km.longhands.Size() != propertyTypeCount {
		err = multierr.Append(err, core.Error(core.EINTERNAL,
			"%d property keys for %d property types", km.longhands.Size(), propertyTypeCount))
	}
	if km.shorthands.Size() != shorthandTypeCount {
		err = multierr.Append(err, core.Error(core.EINTERNAL,
			"%d shorthand keys for %d shorthand types", km.shorthands.Size(), shorthandTypeCount))
	}
	seen := make(map[PropertyType]string, propertyTypeCount)
	km.longhands.Each(func(k interface{}, v interface{}) {
		t := v.(PropertyType)
		if other, dup := seen[t]; dup {
			err = multierr.Append(err, core.Error(core.EINTERNAL,
				"property type %d has keys %q and %q", t, other, k))
		}
		seen[t] = k.(string)
		if _, clash := km.shorthands.Get(k); clash {
			err = multierr.Append(err, core.Error(core.EINTERNAL,
				"key %q is both a property and a shorthand", k))
		}
	})
	for _, t := range AllPropertyTypes() {
		if _, ok := seen[t]; !ok {
			err = multierr.Append(err, core.Error(core.EINTERNAL,
				"property type %d has no key", t))
		}
	}
	seenShort := make(map[ShorthandType]string, shorthandTypeCount)
	km.shorthands.Each(func(k interface{}, v interface{}) {
		t := v.(ShorthandType)
		if other, dup := seenShort[t]; dup {
			err = multierr.Append(err, core.Error(core.EINTERNAL,
				"shorthand type %d has keys %q and %q", t, other, k))
		}
		seenShort[t] = k.(string)
	})
	for _, t := range AllShorthandTypes() {
		if _, ok := seenShort[t]; !ok {
			err = multierr.Append(err, core.Error(core.EINTERNAL,
				"shorthand type %d has no key", t))
		}
	}
	return err
}
