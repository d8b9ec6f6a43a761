package css

import (
	"strings"

	douceur "github.com/aymerick/douceur/css"
	"github.com/npillmayer/cssval/core"
	"go.uber.org/multierr"
	"golang.org/x/text/cases"
)

// Key is a resolved CSS key: either a property type or a shorthand type.
type Key struct {
	Property  PropertyType
	Shorthand ShorthandType
	IsShort   bool // Shorthand is valid, Property is not
	Important bool // declaration has been flagged `!important`
}

func (k Key) String() string {
	if k.IsShort {
		return k.Shorthand.String()
	}
	return k.Property.String()
}

// Resolve classifies the key of a CSS declaration, as produced by a CSS
// parser. Keys are matched case-insensitively. The value of the declaration
// is not inspected.
func (km *KeyMap) Resolve(decl *douceur.Declaration) (Key, bool) {
	if decl == nil {
		return Key{}, false
	}
	key := cases.Fold().String(strings.TrimSpace(decl.Property))
	if t, ok := km.PropertyType(key); ok {
		return Key{Property: t, Important: decl.Important}, true
	}
	if t, ok := km.ShorthandType(key); ok {
		return Key{Shorthand: t, IsShort: true, Important: decl.Important}, true
	}
	tracer().Debugf("unknown CSS key %q", decl.Property)
	return Key{}, false
}

// ResolveAll resolves the keys of a block of declarations. Keys which
// cannot be resolved are skipped and reported as errors with code
// core.EMISSING; the error returned will hold all of them (see
// go.uber.org/multierr.Errors).
func (km *KeyMap) ResolveAll(decls []*douceur.Declaration) ([]Key, error) {
	keys := make([]Key, 0, len(decls))
	var err error
	for _, decl := range decls {
		k, ok := km.Resolve(decl)
		if !ok {
			prop := "<nil>"
			if decl != nil {
				prop = decl.Property
			}
			err = multierr.Append(err, core.Error(core.EMISSING,
				"not a CSS property: %q%s", prop, km.suggest(prop)))
			continue
		}
		keys = append(keys, k)
	}
	return keys, err
}

// suggest proposes keys for a mistyped key, e.g. "border-top" for
// "border-top-colour".
func (km *KeyMap) suggest(key string) string {
	key = cases.Fold().String(strings.TrimSpace(key))
	for key != "" {
		if cands := km.KeysWithPrefix(key); len(cands) > 0 {
			if len(cands) > 3 {
				cands = cands[:3]
			}
			return " (did you mean " + strings.Join(cands, ", ") + "?)"
		}
		i := strings.LastIndexByte(key, '-')
		if i <= 0 {
			break
		}
		key = key[:i]
	}
	return ""
}

// KeywordTag recognizes the CSS-wide keywords `none`, `auto`, `initial`
// and `inherit` in a declaration value.
func KeywordTag(value string) (ValueTag, bool) {
	switch cases.Fold().String(strings.TrimSpace(value)) {
	case "none":
		return None, true
	case "auto":
		return Auto, true
	case "initial":
		return Initial, true
	case "inherit":
		return Inherit, true
	}
	return Exact, false
}

// KeywordProperty creates a property of type t from a keyword value. It
// returns false if value is not one of the keywords accepted by KeywordTag.
func KeywordProperty(t PropertyType, value string) (Property, bool) {
	tag, ok := KeywordTag(value)
	if !ok {
		return Property{}, false
	}
	return tagged(t, tag), true
}
