// internal/locale/negotiate_test.go
//
// Unit-tests for Accept-Language negotiation and path-prefix matching.
//
// Context
// -------
// Negotiate must be deterministic and total: any header value, however
// broken, selects a registry member.  PathLocale must be segment-exact
// so "en" never matches "/english/…".
//
// Notes
// -----
// • Oxford commas, two spaces after periods.

package locale

import "testing"

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := New([]string{"en", "pl_PL"}, "en")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return reg
}

func TestNegotiate(t *testing.T) {
	reg := testRegistry(t)

	cases := []struct {
		name   string
		header string
		want   Locale
	}{
		{"exact match wins", "pl-PL,en;q=0.5", "pl-PL"},
		{"unsupported outranked by supported", "fr;q=0.9,en;q=0.8", "en"},
		{"empty header falls back", "", "en"},
		{"nothing supported falls back", "de,fr;q=0.7", "en"},
		{"wildcard resolves to default", "*", "en"},
		{"garbage falls back", ";;;", "en"},
		{"zero weight is ignored", "pl-PL;q=0,en;q=0.3", "en"},
		{"case-insensitive tags", "PL-pl", "pl-PL"},
	}

	for _, c := range cases {
		got := reg.Negotiate(c.header)
		if got != c.want {
			t.Fatalf("%s: Negotiate(%q) = %q, want %q", c.name, c.header, got, c.want)
		}
		if !reg.Contains(got) {
			t.Fatalf("%s: Negotiate returned unregistered locale %q", c.name, got)
		}
	}
}

func TestNegotiate_Deterministic(t *testing.T) {
	reg := testRegistry(t)
	const header = "pl;q=0.8,en;q=0.7,*;q=0.1"

	first := reg.Negotiate(header)
	for i := 0; i < 50; i++ {
		if got := reg.Negotiate(header); got != first {
			t.Fatalf("run %d: Negotiate(%q) = %q, earlier %q", i, header, got, first)
		}
	}
}

func TestPathLocale(t *testing.T) {
	reg := testRegistry(t)

	cases := []struct {
		path string
		want Locale
		ok   bool
	}{
		{"/en/about", "en", true},
		{"/en", "en", true},
		{"/pl-PL/blog/2025", "pl-PL", true},
		{"/english/about", "", false}, // partial segment must not match
		{"/", "", false},
		{"/about", "", false},
		{"/ennui", "", false},
	}

	for _, c := range cases {
		loc, ok := reg.PathLocale(c.path)
		if ok != c.ok || loc != c.want {
			t.Fatalf("PathLocale(%q) = %q, %v; want %q, %v", c.path, loc, ok, c.want, c.ok)
		}
	}
}

func TestRedirectTarget(t *testing.T) {
	if got := RedirectTarget("/about?x=1", "pl-PL"); got != "/pl-PL/about?x=1" {
		t.Fatalf("RedirectTarget = %q", got)
	}
	if got := RedirectTarget("/", "en"); got != "/en/" {
		t.Fatalf("RedirectTarget(/) = %q", got)
	}
}
