// internal/middleware/locale.go
//
// Locale-prefix redirect middleware.
//
// Context
// -------
// Every page URL in the demo carries a locale segment: /en/about,
// /pl-PL/blog.  This middleware runs before any rendering and enforces
// that shape:
//
//   • Path already prefixed with a supported locale → pass through
//     untouched.  The path is authoritative; headers are not consulted.
//   • Otherwise → negotiate a locale from the Accept-Language header
//     (with a geo country hint when the header is absent) and answer
//     with a 302 to the locale-prefixed URL, empty body.
//
// Negotiation never fails: malformed headers degrade silently to the
// registry default.  The redirect preserves the original path and
// query string verbatim.
//
// Notes
// -----
// • The response is written by hand instead of http.Redirect so the
//   body stays empty.
// • Oxford commas, two spaces after periods.

package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/yanizio/polyglot/internal/locale"
	"github.com/yanizio/polyglot/internal/metrics"
	"github.com/yanizio/polyglot/internal/visitor"
)

// LocaleRedirect returns a middleware bound to the given registry.
func LocaleRedirect(reg *locale.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := reg.PathLocale(r.URL.Path); ok {
				next.ServeHTTP(w, r)
				return
			}

			loc := pickLocale(r, reg)
			target := locale.RedirectTarget(r.URL.RequestURI(), loc)

			zap.S().Debugw("locale redirect",
				"from", r.URL.RequestURI(),
				"to", target,
				"locale", loc.String(),
			)
			metrics.LocaleRedirectTotal.WithLabelValues(loc.String()).Inc()

			w.Header().Set("Location", target)
			w.Header().Set("Vary", "Accept-Language")
			w.WriteHeader(http.StatusFound)
		})
	}
}

// pickLocale negotiates from the Accept-Language header.  When the
// header is missing entirely, the visitor's country (if the geo lookup
// is enabled and produced one) hints a region-matched locale before we
// settle on the registry default.
func pickLocale(r *http.Request, reg *locale.Registry) locale.Locale {
	header := r.Header.Get("Accept-Language")
	if header == "" {
		if v := visitor.FromContext(r.Context()); v != nil && v.Geo.CountryISO != "" {
			if loc, ok := reg.ByRegion(v.Geo.CountryISO); ok {
				return loc
			}
		}
		metrics.NegotiationFallbackTotal.Inc()
		return reg.Default()
	}

	return reg.Negotiate(header)
}
