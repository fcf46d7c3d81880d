// Package handler implements the HTTP handlers for the firm site.
// All handlers are methods on Server. Methods are split into feature files
// (health.go, static_params.go, location.go) but share the same Server struct
// so they can reach its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/firm-site/internal/domain"
)

// StaticParamser defines the build-time operations the static-params
// handlers depend on. Defining the interface here, in the consumer package,
// lets handler tests inject a mock.
type StaticParamser interface {
	LocationParams(opts domain.StaticParamsOptions) ([]string, error)
	States() []string
	StateParams(state string) []domain.StateCityParam
	ServiceParams(services []string) ([]domain.LocationServiceParam, error)
	ShouldGenerate(location string, opts domain.StaticParamsOptions) (bool, error)
	DisplayName(slug string) string
}

// PageResolver resolves location slug segments to a rendered page.
type PageResolver interface {
	ResolveLocalized(ctx context.Context, locale domain.Locale, segments []string) (domain.RenderedPage, error)
}

// NotFoundRenderer renders the HTML 404 page.
type NotFoundRenderer interface {
	NotFound(locale domain.Locale, firm domain.FirmContact) ([]byte, error)
}

// Server holds the dependencies shared by every handler.
type Server struct {
	params   StaticParamser
	pages    PageResolver
	notFound NotFoundRenderer
	firm     domain.FirmContact
	apiDoc   []byte
}

// NewServer constructs the Server with all its dependencies.
// apiDoc is the OpenAPI document served at /openapi.yaml.
func NewServer(params StaticParamser, pages PageResolver, notFound NotFoundRenderer, firm domain.FirmContact, apiDoc []byte) *Server {
	return &Server{params: params, pages: pages, notFound: notFound, firm: firm, apiDoc: apiDoc}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, domain.FirmContact{}, nil)
}

// Routes returns a chi router with every endpoint registered.
// Cross-cutting middleware is applied by the caller.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/static-params", func(r chi.Router) {
		r.Get("/locations", s.GetLocationParams)
		r.Get("/states", s.GetStates)
		r.Get("/states/{state}", s.GetStateParams)
		r.Get("/services", s.GetServiceParams)
		r.Get("/should-generate", s.GetShouldGenerate)
	})
	r.Get("/display-name/{slug}", s.GetDisplayName)

	// The bare prefixes route to the same handlers so a missing slug gets
	// the HTML 404 page like any other bad slug.
	r.Get("/locations", s.GetLocation)
	r.Get("/locations/*", s.GetLocation)
	r.Get("/{locale}/locations", s.GetLocalizedLocation)
	r.Get("/{locale}/locations/*", s.GetLocalizedLocation)

	return r
}
