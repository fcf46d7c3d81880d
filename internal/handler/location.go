package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/firm-site/internal/domain"
)

// GetLocation handles GET /locations/* in English.
func (s *Server) GetLocation(w http.ResponseWriter, r *http.Request) {
	s.serveLocation(w, r, domain.LocaleEnglish)
}

// GetLocalizedLocation handles GET /{locale}/locations/*, e.g. /es/locations/nc/durham.
// An unsupported locale gets the English 404 page.
func (s *Server) GetLocalizedLocation(w http.ResponseWriter, r *http.Request) {
	locale, err := domain.ParseLocale(chi.URLParam(r, "locale"))
	if err != nil {
		s.writeNotFoundPage(w, r, domain.LocaleEnglish)
		return
	}
	s.serveLocation(w, r, locale)
}

// serveLocation renders the page for the wildcard path. Every well-formed
// state/city[/service] path gets a page; anything else gets the HTML 404 page.
func (s *Server) serveLocation(w http.ResponseWriter, r *http.Request, locale domain.Locale) {
	segments := strings.Split(chi.URLParam(r, "*"), "/")

	page, err := s.pages.ResolveLocalized(r.Context(), locale, segments)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.writeNotFoundPage(w, r, locale)
			return
		}
		slog.ErrorContext(r.Context(), "resolve location page", "path", r.URL.Path, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h := w.Header()
	h.Set("Content-Type", "text/html; charset=utf-8")
	h.Set("Content-Language", string(locale))
	h.Set("X-Page-Source", string(page.Source))
	h.Set("Cache-Control", "public, max-age=300")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page.HTML)
}

func (s *Server) writeNotFoundPage(w http.ResponseWriter, r *http.Request, locale domain.Locale) {
	html, err := s.notFound.NotFound(locale, s.firm)
	if err != nil {
		slog.ErrorContext(r.Context(), "render not found page", "error", err)
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", string(locale))
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write(html)
}
