//
//  internal/visitor/visitor.go
//
//  Per-request visitor metadata: user-agent fingerprint, client IP,
//  geolocation hint, and the raw language preferences.  The structs
//  are inert — no handles, no large buffers — so they are safe to log
//  or JSON-encode.
//
//  Dependencies
//  • github.com/avct/uasurfer          (UA parsing)
//  • github.com/oschwald/geoip2-golang (MaxMind lookup)
//

package visitor

import (
	"context"
	"net"
	"strings"
	"time"

	"github.com/avct/uasurfer"
	"github.com/oschwald/geoip2-golang"
)

//
//  -----------------------------
//  Struct definitions
//  -----------------------------
//

// UA holds the parsed user-agent properties the demo cares about.
type UA struct {
	Raw     string // Entire User-Agent header
	Browser string // "Chrome", "Firefox", "Safari", ...
	OS      string // "MacOSX", "Windows", "Android", ...
	Device  string // "Computer", "Phone", "Tablet", ...
	IsBot   bool
}

// Geo holds IP-based location hints.  Best-effort; empty when the
// GeoLite2 database is not configured or has no match.
type Geo struct {
	IP         net.IP
	CountryISO string // "US", "PL", "BR", ...
}

// Visitor is attached to the request context by the Enrich middleware.
type Visitor struct {
	UA             UA
	Geo            Geo
	AcceptLanguage string // raw header; negotiation happens elsewhere
	Timestamp      time.Time
}

//
//  -----------------------------
//  Package-level state
//  -----------------------------
//

// geoReader is a singleton MaxMind handle.  Safe for concurrent reads,
// which is all we ever perform.  nil when geo lookups are disabled.
var geoReader *geoip2.Reader

// InitGeo opens the GeoLite2-Country database.  Call once from main
// when config provides a path; without it CountryISO stays empty and
// the geo locale hint is simply skipped.
func InitGeo(dbPath string) error {
	r, err := geoip2.Open(dbPath)
	if err != nil {
		return err
	}
	geoReader = r
	return nil
}

// lookupGeo resolves the country for ip, tolerating a nil reader.
func lookupGeo(ip net.IP) Geo {
	g := Geo{IP: ip}
	if geoReader == nil || ip == nil {
		return g
	}
	if rec, err := geoReader.Country(ip); err == nil {
		g.CountryISO = rec.Country.IsoCode
	}
	return g
}

// parseUA converts a raw User-Agent header into UA.
func parseUA(raw string) UA {
	ua := uasurfer.Parse(raw)
	return UA{
		Raw:     raw,
		Browser: strings.TrimPrefix(ua.Browser.Name.String(), "Browser"),
		OS:      strings.TrimPrefix(ua.OS.Name.String(), "OS"),
		Device:  strings.TrimPrefix(ua.DeviceType.String(), "Device"),
		IsBot:   ua.IsBot(),
	}
}

//
//  -----------------------------
//  Context plumbing
//  -----------------------------
//

type ctxKey struct{} // unexported, collision-proof

// NewContext returns ctx carrying v.  Enrich calls this; tests use it
// to inject a canned visitor.
func NewContext(ctx context.Context, v *Visitor) context.Context {
	return context.WithValue(ctx, ctxKey{}, v)
}

// FromContext returns the pointer stored by Enrich, or nil when the
// middleware has not run.
func FromContext(ctx context.Context) *Visitor {
	v, _ := ctx.Value(ctxKey{}).(*Visitor)
	return v
}
