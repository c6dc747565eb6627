// internal/locale/negotiate.go
//
// Accept-Language negotiation and locale-prefixed path helpers.
//
// Context
// -------
// Negotiation is a pure function of the header value and the registry:
// identical inputs always select the identical locale.  Real-world
// Accept-Language values are wildly variable (casing, whitespace,
// wildcards, broken q-values), so all parsing is delegated to
// golang.org/x/text/language, and every failure mode degrades to the
// registry default rather than surfacing an error.
//
// Path matching is segment-exact.  A registered "en" must match /en and
// /en/about but never /english/about, so the candidate has to be
// followed by "/" or end-of-string.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.

package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Negotiate selects the best supported locale for an Accept-Language
// header value.  Exact and longest-prefix matches outrank wildcards;
// ranges the client weighted to zero are ignored.  An empty or
// malformed header, or one matching nothing supported, yields the
// registry default.  Never returns a locale outside the registry.
func (r *Registry) Negotiate(header string) Locale {
	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return r.def
	}

	_, idx, conf := r.matcher.Match(desired...)
	if conf == language.No {
		return r.def
	}
	return r.matcherLocales[idx]
}

// PathLocale reports the supported locale a path is prefixed with.
// True only for "/<locale>" exactly or "/<locale>/…"; partial segment
// matches do not count.
func (r *Registry) PathLocale(path string) (Locale, bool) {
	for _, loc := range r.locales {
		prefix := "/" + loc.String()
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return loc, true
		}
	}
	return "", false
}

// RedirectTarget prefixes a request URI with a locale segment.  The
// original path, query string, and trailing segments pass through
// verbatim; no re-encoding or normalisation happens here.
func RedirectTarget(requestURI string, loc Locale) string {
	return "/" + loc.String() + requestURI
}
