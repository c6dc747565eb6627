// internal/locale/locale_test.go
//
// Unit-tests for source-form <-> standard-form conversion.
//
// Context
// -------
// Conversion is a single validated separator substitution.  The tests
// pin the round-trip property and the ambiguity rejections, which are
// the only ways the transform can go wrong.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.

package locale

import "testing"

func TestFromSource_RoundTrip(t *testing.T) {
	cases := []struct {
		source   string
		standard string
	}{
		{"en", "en"},
		{"pl_PL", "pl-PL"},
		{"pt_BR", "pt-BR"},
	}

	for _, c := range cases {
		loc, err := FromSource(c.source)
		if err != nil {
			t.Fatalf("FromSource(%q): %v", c.source, err)
		}
		if loc.String() != c.standard {
			t.Fatalf("FromSource(%q) = %q, want %q", c.source, loc, c.standard)
		}

		back, err := loc.Source()
		if err != nil {
			t.Fatalf("Source(%q): %v", loc, err)
		}
		if back != c.source {
			t.Fatalf("round-trip of %q = %q", c.source, back)
		}
	}
}

func TestFromSource_RejectsAmbiguous(t *testing.T) {
	if _, err := FromSource("pt-BR"); err == nil {
		t.Fatal("hyphen in source form must be rejected")
	}
	if _, err := FromSource(""); err == nil {
		t.Fatal("empty source form must be rejected")
	}
}

func TestSource_RejectsAmbiguous(t *testing.T) {
	if _, err := Locale("pt_BR").Source(); err == nil {
		t.Fatal("underscore in standard form must be rejected")
	}
	if _, err := Locale("").Source(); err == nil {
		t.Fatal("empty identifier must be rejected")
	}
}
