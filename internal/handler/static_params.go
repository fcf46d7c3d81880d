package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/firm-site/internal/domain"
)

// LocationParamsResponse is the body of GET /static-params/locations.
type LocationParamsResponse struct {
	Locations []string `json:"locations"`
}

// StatesResponse is the body of GET /static-params/states.
type StatesResponse struct {
	States []string `json:"states"`
}

// StateParamsResponse is the body of GET /static-params/states/{state}.
type StateParamsResponse struct {
	Params []domain.StateCityParam `json:"params"`
}

// ServiceParamsResponse is the body of GET /static-params/services.
type ServiceParamsResponse struct {
	Params []domain.LocationServiceParam `json:"params"`
}

// ShouldGenerateResponse is the body of GET /static-params/should-generate.
type ShouldGenerateResponse struct {
	Location string `json:"location"`
	Generate bool   `json:"generate"`
}

// DisplayNameResponse is the body of GET /display-name/{slug}.
type DisplayNameResponse struct {
	Slug        string `json:"slug"`
	DisplayName string `json:"display_name"`
}

// GetLocationParams handles GET /static-params/locations.
// Query: counties, regions, neighborhoods (bool), custom (comma-separated), limit (int).
func (s *Server) GetLocationParams(w http.ResponseWriter, r *http.Request) {
	opts, err := bindStaticParamsOptions(r)
	if err != nil {
		parameterError(w, err.Error())
		return
	}

	locations, err := s.params.LocationParams(opts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, LocationParamsResponse{Locations: locations})
}

// GetStates handles GET /static-params/states.
func (s *Server) GetStates(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, StatesResponse{States: s.params.States()})
}

// GetStateParams handles GET /static-params/states/{state}.
// An unknown state returns 200 with an empty list.
func (s *Server) GetStateParams(w http.ResponseWriter, r *http.Request) {
	params := s.params.StateParams(chi.URLParam(r, "state"))
	writeJSON(w, http.StatusOK, StateParamsResponse{Params: params})
}

// GetServiceParams handles GET /static-params/services?service=a&service=b.
func (s *Server) GetServiceParams(w http.ResponseWriter, r *http.Request) {
	var services []string
	if err := runtime.BindQueryParameter("form", true, false, "service", r.URL.Query(), &services); err != nil {
		parameterError(w, err.Error())
		return
	}

	params, err := s.params.ServiceParams(services)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ServiceParamsResponse{Params: params})
}

// GetShouldGenerate handles GET /static-params/should-generate.
// Takes a required location plus the same options as GetLocationParams.
func (s *Server) GetShouldGenerate(w http.ResponseWriter, r *http.Request) {
	var location string
	if err := runtime.BindQueryParameter("form", true, true, "location", r.URL.Query(), &location); err != nil {
		parameterError(w, err.Error())
		return
	}
	opts, err := bindStaticParamsOptions(r)
	if err != nil {
		parameterError(w, err.Error())
		return
	}

	generate, err := s.params.ShouldGenerate(location, opts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ShouldGenerateResponse{Location: location, Generate: generate})
}

// GetDisplayName handles GET /display-name/{slug}.
func (s *Server) GetDisplayName(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	writeJSON(w, http.StatusOK, DisplayNameResponse{Slug: slug, DisplayName: s.params.DisplayName(slug)})
}

// bindStaticParamsOptions reads the optional catalog flags, custom locations
// and limit from the query string. A value that does not parse is an error,
// never a silently dropped option.
func bindStaticParamsOptions(r *http.Request) (domain.StaticParamsOptions, error) {
	q := r.URL.Query()
	var (
		counties, regions, neighborhoods *bool
		custom                           []string
		limit                            *int
	)

	if err := runtime.BindQueryParameter("form", true, false, "counties", q, &counties); err != nil {
		return domain.StaticParamsOptions{}, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "regions", q, &regions); err != nil {
		return domain.StaticParamsOptions{}, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "neighborhoods", q, &neighborhoods); err != nil {
		return domain.StaticParamsOptions{}, err
	}
	if err := runtime.BindQueryParameter("form", false, false, "custom", q, &custom); err != nil {
		return domain.StaticParamsOptions{}, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", q, &limit); err != nil {
		return domain.StaticParamsOptions{}, err
	}

	return domain.StaticParamsOptions{
		IncludeCounties:      derefBool(counties),
		IncludeRegions:       derefBool(regions),
		IncludeNeighborhoods: derefBool(neighborhoods),
		CustomLocations:      custom,
		Limit:                derefInt(limit),
	}, nil
}

func derefBool(b *bool) bool {
	return b != nil && *b
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
