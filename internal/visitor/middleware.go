// internal/visitor/middleware.go
//
// HTTP middleware that enriches each request with *Visitor.
//
/*
Context
--------
Enrich sits early in the chain, before the locale redirect, so the
negotiator can consult the visitor's country when the Accept-Language
header is absent.  For every request it:

  1. Parses the User-Agent header.
  2. Extracts the left-most public client IP from X-Forwarded-For or
     X-Real-IP, falling back to r.RemoteAddr.
  3. Performs a GeoLite2 country lookup (no-op when disabled).
  4. Stores a *Visitor in the request context under an unexported key.

Notes
-----
  • All look-ups are read-only, so the middleware is safe under heavy
    concurrency.
  • Oxford commas, two spaces after periods.
*/
package visitor

import (
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

/*──────────────────────────── middleware ───────────────────────────────────*/

// Enrich wraps an http.Handler, attaches *Visitor, and forwards.
func Enrich(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)

		v := &Visitor{
			UA:             parseUA(r.UserAgent()),
			Geo:            lookupGeo(ip),
			AcceptLanguage: r.Header.Get("Accept-Language"),
			Timestamp:      time.Now().UTC(),
		}

		zap.S().Debugw("visitor info",
			"ip", v.Geo.IP,
			"country", v.Geo.CountryISO,
			"browser", v.UA.Browser,
			"device", v.UA.Device,
			"bot", v.UA.IsBot,
			"accept_language", v.AcceptLanguage,
			"path", r.URL.Path,
		)

		next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), v)))
	})
}

/*──────────────────────────── client IP helper ─────────────────────────────*/

// clientIP extracts the left-most address from X-Forwarded-For or
// X-Real-IP, falling back to r.RemoteAddr ("ip:port").
func clientIP(r *http.Request) net.IP {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		for _, part := range strings.Split(xff, ",") {
			if ip := net.ParseIP(strings.TrimSpace(part)); ip != nil {
				return ip
			}
		}
	}
	if xrip := r.Header.Get("X-Real-Ip"); xrip != "" {
		if ip := net.ParseIP(strings.TrimSpace(xrip)); ip != nil {
			return ip
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return net.ParseIP(host)
	}
	return nil
}
