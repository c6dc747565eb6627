// internal/middleware/locale_test.go
//
// Unit-tests for the locale-redirect middleware.
//
// Context
// -------
// The middleware has exactly two terminal behaviours per request:
//
//   • path already locale-prefixed → pass through, path untouched
//   • otherwise → 302 to the locale-prefixed URL, empty body
//
// Each sub-test fires an httptest request through the wrapped handler
// and asserts status, Location, and body.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yanizio/polyglot/internal/locale"
	"github.com/yanizio/polyglot/internal/visitor"
)

func testRegistry(t *testing.T) *locale.Registry {
	t.Helper()
	reg, err := locale.New([]string{"en", "pl_PL"}, "en")
	if err != nil {
		t.Fatalf("locale.New: %v", err)
	}
	return reg
}

func TestLocaleRedirect_NegotiatesAndRedirects(t *testing.T) {
	reg := testRegistry(t)

	req := httptest.NewRequest(http.MethodGet, "/about?x=1", nil)
	req.Header.Set("Accept-Language", "pl-PL,en;q=0.5")
	rr := httptest.NewRecorder()

	LocaleRedirect(reg)(http.NotFoundHandler()).ServeHTTP(rr, req)

	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/pl-PL/about?x=1" {
		t.Fatalf("Location = %q", loc)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("redirect carried a body: %q", rr.Body.String())
	}
}

func TestLocaleRedirect_PrefixedPathPassesThrough(t *testing.T) {
	reg := testRegistry(t)

	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})

	// Header prefers pl-PL, but the path already says /en: path wins.
	req := httptest.NewRequest(http.MethodGet, "/en/about", nil)
	req.Header.Set("Accept-Language", "pl-PL")
	rr := httptest.NewRecorder()

	LocaleRedirect(reg)(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if got != "/en/about" {
		t.Fatalf("path mutated: %q", got)
	}
}

func TestLocaleRedirect_PartialSegmentStillRedirects(t *testing.T) {
	reg := testRegistry(t)

	req := httptest.NewRequest(http.MethodGet, "/english/about", nil)
	rr := httptest.NewRecorder()

	LocaleRedirect(reg)(http.NotFoundHandler()).ServeHTTP(rr, req)

	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/en/english/about" {
		t.Fatalf("Location = %q", loc)
	}
}

func TestLocaleRedirect_NoHeaderFallsBackToDefault(t *testing.T) {
	reg := testRegistry(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	LocaleRedirect(reg)(http.NotFoundHandler()).ServeHTTP(rr, req)

	if loc := rr.Header().Get("Location"); loc != "/en/" {
		t.Fatalf("Location = %q, want /en/", loc)
	}
}

func TestLocaleRedirect_GeoHintWithoutHeader(t *testing.T) {
	reg := testRegistry(t)

	req := httptest.NewRequest(http.MethodGet, "/blog", nil)
	v := &visitor.Visitor{Geo: visitor.Geo{CountryISO: "PL"}}
	req = req.WithContext(visitor.NewContext(req.Context(), v))
	rr := httptest.NewRecorder()

	LocaleRedirect(reg)(http.NotFoundHandler()).ServeHTTP(rr, req)

	if loc := rr.Header().Get("Location"); loc != "/pl-PL/blog" {
		t.Fatalf("Location = %q, want /pl-PL/blog", loc)
	}
}

func TestLocaleRedirect_HeaderOutranksGeoHint(t *testing.T) {
	reg := testRegistry(t)

	req := httptest.NewRequest(http.MethodGet, "/blog", nil)
	req.Header.Set("Accept-Language", "en")
	v := &visitor.Visitor{Geo: visitor.Geo{CountryISO: "PL"}}
	req = req.WithContext(visitor.NewContext(req.Context(), v))
	rr := httptest.NewRecorder()

	LocaleRedirect(reg)(http.NotFoundHandler()).ServeHTTP(rr, req)

	if loc := rr.Header().Get("Location"); loc != "/en/blog" {
		t.Fatalf("Location = %q, want /en/blog", loc)
	}
}
