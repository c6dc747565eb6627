// internal/page/handler.go
//
// Locale-scoped page handlers.
//
// Context
// -------
// By the time a request reaches these handlers the locale-redirect
// middleware has guaranteed a locale-prefixed path, so the {locale}
// route param is authoritative: it is validated against the registry
// and passed straight to the CMS client.  No header negotiation
// happens here.
//
// Failure semantics
// -----------------
// • Unknown locale param → 404 (hand-crafted URL, not our redirect).
// • CMS failure → 502, logged.  The demo has no fallback content.
// • Page absent in this locale → 404.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.

package page

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/yanizio/polyglot/internal/content"
	"github.com/yanizio/polyglot/internal/locale"
)

// Handler serves the locale-prefixed page routes.
type Handler struct {
	reg *locale.Registry
	cms *content.Client
}

// New wires a Handler to the registry and CMS client.
func New(reg *locale.Registry, cms *content.Client) *Handler {
	return &Handler{reg: reg, cms: cms}
}

// Routes mounts the locale-scoped page tree.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{locale}", h.servePage)
	r.Get("/{locale}/*", h.servePage)
	return r
}

// pagePayload mirrors the data envelope of PageBySlugDocument.
type pagePayload struct {
	Page *struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	} `json:"page"`
}

func (h *Handler) servePage(w http.ResponseWriter, r *http.Request) {
	loc := locale.Locale(chi.URLParam(r, "locale"))
	if !h.reg.Contains(loc) {
		http.NotFound(w, r)
		return
	}

	slug := strings.Trim(chi.URLParam(r, "*"), "/")
	if slug == "" {
		slug = "home"
	}

	data, err := h.cms.Query(r.Context(), loc, content.PageBySlugDocument,
		map[string]any{"slug": slug})
	if err != nil {
		var se *content.SourceError
		if errors.As(err, &se) {
			zap.S().Errorw("cms query failed", "slug", slug, "locale", loc.String(), "err", err)
			http.Error(w, "content source unavailable", http.StatusBadGateway)
			return
		}
		zap.S().Errorw("page query failed", "slug", slug, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var payload pagePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		zap.S().Errorw("cms payload decode failed", "slug", slug, "err", err)
		http.Error(w, "content source unavailable", http.StatusBadGateway)
		return
	}
	if payload.Page == nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", loc.String())
	if err := render(w, pageData{
		Locale:  loc.String(),
		Locales: h.reg.Locales(),
		Slug:    slug,
		Title:   payload.Page.Title,
		Body:    payload.Page.Body,
	}); err != nil {
		zap.S().Errorw("template render failed", "slug", slug, "err", err)
	}
}
