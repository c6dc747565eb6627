// internal/locale/registry_test.go
//
// Unit-tests for Registry construction.
//
// Context
// -------
// Registry failures are configuration errors that must abort boot, so
// every rejection path gets pinned: empty enumeration, ambiguous or
// duplicate entries, and a default outside the derived list.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.

package locale

import "testing"

func TestNew_DerivesStandardForms(t *testing.T) {
	reg, err := New([]string{"en", "pl_PL"}, "en")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got := reg.Locales()
	want := []Locale{"en", "pl-PL"}
	if len(got) != len(want) {
		t.Fatalf("Locales() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Locales()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if reg.Default() != "en" {
		t.Fatalf("Default() = %q, want en", reg.Default())
	}
	if !reg.Contains("pl-PL") || reg.Contains("pl") {
		t.Fatal("Contains misreports membership")
	}
}

func TestNew_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		sources []string
		def     string
	}{
		{"empty enumeration", nil, "en"},
		{"default not supported", []string{"en"}, "pl-PL"},
		{"ambiguous source entry", []string{"en", "pt-BR"}, "en"},
		{"duplicate entry", []string{"en", "en"}, "en"},
		{"unparseable tag", []string{"en", "!!"}, "en"},
	}

	for _, c := range cases {
		if _, err := New(c.sources, c.def); err == nil {
			t.Fatalf("%s: expected construction error", c.name)
		}
	}
}

func TestByRegion(t *testing.T) {
	reg, err := New([]string{"en", "pl_PL", "pt_BR"}, "en")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if loc, ok := reg.ByRegion("PL"); !ok || loc != "pl-PL" {
		t.Fatalf("ByRegion(PL) = %q, %v", loc, ok)
	}
	if loc, ok := reg.ByRegion("BR"); !ok || loc != "pt-BR" {
		t.Fatalf("ByRegion(BR) = %q, %v", loc, ok)
	}

	// "en" carries no explicit region subtag; inferred regions must
	// not count as a hit.
	if _, ok := reg.ByRegion("US"); ok {
		t.Fatal("ByRegion(US) matched an inferred region")
	}
}
