// internal/locale/locale.go
//
// Locale identifier type and source-form conversion.
//
// Context
// -------
// The CMS stores locales in "source" form, subtags joined by an
// underscore (pl_PL).  The web ecosystem — URLs, Accept-Language,
// hreflang — uses "standard" form, joined by a hyphen (pl-PL).  The two
// must interconvert losslessly, so the transform is an explicit,
// validated separator substitution rather than a blind string replace:
// an input already containing the target separator would collide after
// substitution and is rejected.
//
// Notes
// -----
// • Subtags themselves never contain either separator, so a single
//   substitution is sufficient.  No general-purpose tag parsing here.
// • Oxford commas, two spaces after periods.

package locale

import (
	"fmt"
	"strings"
)

const (
	sourceSep   = "_" // CMS-native joiner
	standardSep = "-" // BCP 47 joiner
)

// Locale is a supported locale identifier in standard form, e.g. "en"
// or "pl-PL".  Values are produced by Registry construction or by
// FromSource; handlers should treat them as opaque.
type Locale string

// String returns the standard-form identifier.
func (l Locale) String() string { return string(l) }

// FromSource converts a CMS-native identifier ("pl_PL") to standard
// form ("pl-PL").  It fails when the input is empty or already contains
// the standard separator, which would make the substitution ambiguous.
func FromSource(s string) (Locale, error) {
	if s == "" {
		return "", fmt.Errorf("locale: empty source identifier")
	}
	if strings.Contains(s, standardSep) {
		return "", fmt.Errorf("locale: source identifier %q already contains %q", s, standardSep)
	}
	return Locale(strings.ReplaceAll(s, sourceSep, standardSep)), nil
}

// Source converts a standard-form identifier back to the CMS-native
// form.  The reverse of FromSource, with the mirrored ambiguity check.
func (l Locale) Source() (string, error) {
	if l == "" {
		return "", fmt.Errorf("locale: empty identifier")
	}
	if strings.Contains(string(l), sourceSep) {
		return "", fmt.Errorf("locale: identifier %q already contains %q", l, sourceSep)
	}
	return strings.ReplaceAll(string(l), standardSep, sourceSep), nil
}
