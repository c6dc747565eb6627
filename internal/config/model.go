// internal/config/model.go
//
// Typed configuration model for the demo.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `conf/.env`                       – dotenv values,
//   • `conf/global.yaml`                         – primary static file,
//   • `POLYGLOT_`-prefixed environment overrides – highest precedence.
//
// Any value of the form `vault:<path>#<key>` (the CMS API token,
// typically) is resolved through the Vault client *after* the overlay
// merge, so the model only ever stores plain strings.
//
// Validation happens immediately after unmarshal; the app fails fast
// if required fields are missing.  A bad locale default is also a
// configuration error, but that membership check belongs to the locale
// registry and runs right after Load in cmd/web.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`—Koanf ignores `yaml`
//     tags unless configured otherwise.
//   • The `Paths` block is filled at runtime; YAML must not set it.
//   • Oxford commas, two spaces after periods.  No em-dash.

package config

import "time"

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr string `koanf:"listen_addr" validate:"required,hostname_port"`
	ForceHTTPS bool   `koanf:"force_https"`
}

//
// Content section
//

// Content points at the CMS GraphQL endpoint.
//
// The *endpoint* lives in YAML so operators can switch environments
// without touching secrets.  The *token* normally arrives through a
// `vault:` reference or an environment override, keeping credentials
// out of flat files and git history.  Timeout is the only cancellation
// policy the query client applies.
type Content struct {
	Endpoint string        `koanf:"endpoint" validate:"required,url"`
	Token    string        `koanf:"token"`
	Timeout  time.Duration `koanf:"timeout"`
}

//
// Locale section
//

// Locale selects the default among the generated CMS locales.
type Locale struct {
	Default string `koanf:"default" validate:"required"`
}

//
// Geo section
//

// Geo optionally enables the GeoLite2 country hint.  Empty path means
// the hint is disabled; nothing else changes.
type Geo struct {
	DBPath string `koanf:"db_path"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime—never set in YAML or env.  The loader
// discovers `Root` (repo root or POLYGLOT_ROOT override) so later code
// can build absolute file paths.
type Paths struct {
	Root string // POLYGLOT_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	HTTP    HTTP    `koanf:"http"`
	Content Content `koanf:"content"`
	Locale  Locale  `koanf:"locale"`
	Geo     Geo     `koanf:"geo"`
	Paths   Paths   `koanf:"-"` // not loaded from config files
}
