// cmd/web/main.go
//
// Polyglot demo – HTTP entry point.
//
// Request life-cycle
// ------------------
//
//  1. Start daily rotating logger (tees to console when running in a TTY).
//
//  2. Load config: conf/.env → conf/global.yaml → POLYGLOT_ env
//     overrides, with vault: references resolved in between.
//
//  3. Build the locale registry from the generated CMS enumeration and
//     the configured default.  A bad enumeration or default aborts boot.
//
//  4. Optionally open the GeoLite2 database for the country hint.
//
//  5. Expose Prometheus /metrics endpoint.
//
//  6. Wire the chi router:
//
//     • security headers        – middleware.Security
//     • HTTPS enforcement       – middleware.ForceHTTPS (config-gated)
//     • visitor enrichment      – visitor.Enrich (UA, IP, geo)
//     • locale redirect         – middleware.LocaleRedirect(registry)
//     • page rendering          – page.Handler (CMS-backed)
//
//  7. Serve with hardened timeouts; SIGINT/SIGTERM drains via errgroup.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/yanizio/polyglot/internal/config"
	"github.com/yanizio/polyglot/internal/content"
	"github.com/yanizio/polyglot/internal/locale"
	"github.com/yanizio/polyglot/internal/logger"
	"github.com/yanizio/polyglot/internal/middleware"
	"github.com/yanizio/polyglot/internal/page"
	"github.com/yanizio/polyglot/internal/server"
	"github.com/yanizio/polyglot/internal/visitor"
)

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootDir, _ := os.Getwd()
	logOut, err := logger.New(rootDir, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}

	//
	// ── 1.  Configuration ───────────────────────────────────────────────
	//
	cfg, err := config.Load(ctx)
	if err != nil {
		logOut.Fatalf("load config: %v", err)
	}

	//
	// ── 2.  Locale registry (generated enumeration + configured default)
	//
	reg, err := locale.New(content.SiteLocales, cfg.Locale.Default)
	if err != nil {
		logOut.Fatalf("locale registry: %v", err)
	}
	logOut.Infow("locale registry online",
		"locales", reg.Locales(), "default", reg.Default().String())

	//
	// ── 3.  Optional GeoLite2 country hint ─────────────────────────────
	//
	if cfg.Geo.DBPath != "" {
		if err := visitor.InitGeo(cfg.Geo.DBPath); err != nil {
			logOut.Fatalf("open GeoLite2 DB: %v", err)
		}
		logOut.Infow("geo hint enabled", "db", cfg.Geo.DBPath)
	}

	//
	// ── 4.  CMS client ─────────────────────────────────────────────────
	//
	cms := content.New(cfg.Content.Endpoint, cfg.Content.Token,
		&http.Client{Timeout: cfg.Content.Timeout})

	//
	// ── 5.  Router: metrics, then the locale-guarded page tree ────────
	//
	r := chi.NewRouter()
	r.Use(middleware.Security)
	if cfg.HTTP.ForceHTTPS {
		r.Use(middleware.ForceHTTPS)
	}

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(gr chi.Router) {
		gr.Use(visitor.Enrich)
		gr.Use(middleware.LocaleRedirect(reg))
		gr.Mount("/", page.New(reg, cms).Routes())
	})

	//
	// ── 6.  Serve with drain-on-signal ─────────────────────────────────
	//
	srv := server.New(cfg.HTTP.ListenAddr, r)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logOut.Infow("listening", "addr", cfg.HTTP.ListenAddr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	})

	if err := g.Wait(); err != nil {
		logOut.Fatalf("http server: %v", err)
	}
	logOut.Infow("shutdown complete")
}
