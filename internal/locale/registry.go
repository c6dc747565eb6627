// internal/locale/registry.go
//
// Immutable registry of supported locales.
//
// Context
// -------
// The registry is built once at boot from the generated CMS locale
// enumeration (see internal/content/generated.go) and is read-only
// afterwards, so it is safe for unsynchronised concurrent use by every
// request.  Construction errors are configuration errors: they abort
// startup, they are never request-time conditions.
//
// The x/text matcher is compiled here, at construction, because it is
// the expensive part of negotiation; Negotiate itself stays allocation-
// light and deterministic.
//
// Notes
// -----
// • Enumeration order is preserved.  It decides matcher tie-breaks, so
//   keep the generated list stable across introspection runs.
// • Oxford commas, two spaces after periods.

package locale

import (
	"fmt"

	"golang.org/x/text/language"
)

// Registry holds the supported locale list, the designated default, and
// the compiled Accept-Language matcher.  Zero value is unusable;
// construct with New.
type Registry struct {
	locales []Locale // enumeration order, what callers see
	def     Locale

	// Matcher state.  tags and matcherLocales are index-aligned in
	// matcher order (default first), so a Match result index maps
	// straight back to a Locale.
	tags           []language.Tag
	matcherLocales []Locale
	matcher        language.Matcher
}

// New derives a Registry from source-form enumeration values and a
// standard-form default.  It fails when the enumeration is empty,
// contains a duplicate or ambiguous entry, contains a tag x/text cannot
// parse, or when def is absent from the derived list.
func New(sourceValues []string, def string) (*Registry, error) {
	if len(sourceValues) == 0 {
		return nil, fmt.Errorf("locale: empty locale enumeration")
	}

	r := &Registry{
		locales: make([]Locale, 0, len(sourceValues)),
		tags:    make([]language.Tag, 0, len(sourceValues)),
	}

	seen := make(map[Locale]struct{}, len(sourceValues))
	for _, sv := range sourceValues {
		loc, err := FromSource(sv)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[loc]; dup {
			return nil, fmt.Errorf("locale: duplicate enumeration entry %q", sv)
		}
		seen[loc] = struct{}{}

		tag, err := language.Parse(loc.String())
		if err != nil {
			return nil, fmt.Errorf("locale: unparseable tag %q: %w", loc, err)
		}

		r.locales = append(r.locales, loc)
		r.tags = append(r.tags, tag)
	}

	r.def = Locale(def)
	if _, ok := seen[r.def]; !ok {
		return nil, fmt.Errorf("locale: default %q not in supported list %v", def, r.locales)
	}

	// Matcher fallback is its first tag; put the default there so an
	// empty preference list and a no-match resolve identically.
	ordered := make([]language.Tag, 0, len(r.tags))
	orderedLocales := make([]Locale, 0, len(r.locales))
	for i, loc := range r.locales {
		if loc == r.def {
			ordered = append([]language.Tag{r.tags[i]}, ordered...)
			orderedLocales = append([]Locale{loc}, orderedLocales...)
			continue
		}
		ordered = append(ordered, r.tags[i])
		orderedLocales = append(orderedLocales, loc)
	}
	r.tags = ordered
	r.matcherLocales = orderedLocales
	r.matcher = language.NewMatcher(ordered)
	return r, nil
}

// Locales returns a copy of the supported list in enumeration order.
func (r *Registry) Locales() []Locale {
	out := make([]Locale, len(r.locales))
	copy(out, r.locales)
	return out
}

// Default returns the designated default locale.
func (r *Registry) Default() Locale { return r.def }

// Contains reports whether loc is a supported locale.
func (r *Registry) Contains(loc Locale) bool {
	for _, l := range r.locales {
		if l == loc {
			return true
		}
	}
	return false
}

// ByRegion returns the first supported locale whose region subtag
// matches the ISO country code, e.g. "PL" → "pl-PL".  Used as a geo
// hint when a visitor sends no Accept-Language header.
func (r *Registry) ByRegion(iso string) (Locale, bool) {
	for i, tag := range r.tags {
		if reg, conf := tag.Region(); conf >= language.High && reg.String() == iso {
			return r.matcherLocales[i], true
		}
	}
	return "", false
}
