// Package service contains the location page policy: which pages are
// prerendered at build time and how any other slug is resolved on request.
// No SQL or HTTP lives here; services depend on interfaces and value types.
package service

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkordes/firm-site/internal/catalog"
	"github.com/pkordes/firm-site/internal/domain"
	"github.com/pkordes/firm-site/internal/naming"
)

// StaticParamsService derives the bounded set of pages to prerender from the
// priority catalog. It holds no mutable state and is safe to call from many
// build workers at once.
type StaticParamsService struct {
	catalog *catalog.Catalog
	names   *naming.Formatter
	log     *slog.Logger
}

// NewStaticParamsService constructs a StaticParamsService over an injected catalog.
func NewStaticParamsService(c *catalog.Catalog, log *slog.Logger) *StaticParamsService {
	return &StaticParamsService{
		catalog: c,
		names:   naming.NewFormatter(c.DisplayOverrides()),
		log:     log,
	}
}

// LocationParams returns the location slugs to prerender: the Locations
// catalog, then counties, regions and neighborhoods as selected, then the custom
// locations. Duplicates are dropped keeping the first appearance, so each
// catalog's declaration order is preserved. When opts.Limit > 0 the list is
// truncated to its first Limit entries.
//
// Malformed options wrap domain.ErrConfiguration instead of yielding a
// shorter list.
func (s *StaticParamsService) LocationParams(opts domain.StaticParamsOptions) ([]string, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("service.StaticParamsService.LocationParams: %w", err)
	}

	sources := [][]string{s.catalog.Locations()}
	if opts.IncludeCounties {
		sources = append(sources, s.catalog.Counties())
	}
	if opts.IncludeRegions {
		sources = append(sources, s.catalog.Regions())
	}
	if opts.IncludeNeighborhoods {
		sources = append(sources, s.catalog.Neighborhoods())
	}
	sources = append(sources, opts.CustomLocations)

	out := []string{}
	seen := map[string]bool{}
	for _, src := range sources {
		for _, loc := range src {
			loc = strings.ToLower(strings.TrimSpace(loc))
			if seen[loc] {
				continue
			}
			seen[loc] = true
			out = append(out, loc)
		}
	}

	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	if len(out) == 0 {
		s.log.Warn("static location params are empty",
			"include_counties", opts.IncludeCounties,
			"include_regions", opts.IncludeRegions,
			"include_neighborhoods", opts.IncludeNeighborhoods,
			"custom_locations", len(opts.CustomLocations),
			"limit", opts.Limit,
		)
	}
	return out, nil
}

// StateParams returns the priority (state, city) tuples for a state code.
// An unknown state has no priority cities and yields an empty, non-nil slice.
func (s *StaticParamsService) StateParams(state string) []domain.StateCityParam {
	code := strings.ToLower(strings.TrimSpace(state))
	cities := s.catalog.StateCities(code)

	out := make([]domain.StateCityParam, 0, len(cities))
	for _, city := range cities {
		out = append(out, domain.StateCityParam{State: code, City: city})
	}
	return out
}

// States returns the state codes that have priority cities, sorted.
func (s *StaticParamsService) States() []string {
	return s.catalog.States()
}

// ServiceParams crosses the primary state's priority cities with services,
// city-major. Only the primary state is expanded: secondary-state
// city/service pages are left to the resolver so the prerender set stays
// small. Services are lowercased and de-duplicated; a malformed service wraps
// domain.ErrConfiguration.
func (s *StaticParamsService) ServiceParams(services []string) ([]domain.LocationServiceParam, error) {
	svcs := make([]string, 0, len(services))
	seen := map[string]bool{}
	for _, svc := range services {
		norm := strings.ToLower(strings.TrimSpace(svc))
		if !domain.IsKebabCase(norm) {
			return nil, fmt.Errorf("service.StaticParamsService.ServiceParams: %w: service %q is not a slug", domain.ErrConfiguration, svc)
		}
		if !seen[norm] {
			seen[norm] = true
			svcs = append(svcs, norm)
		}
	}

	state := s.catalog.PrimaryState()
	cities := s.catalog.StateCities(state)

	out := make([]domain.LocationServiceParam, 0, len(cities)*len(svcs))
	for _, city := range cities {
		for _, svc := range svcs {
			out = append(out, domain.LocationServiceParam{State: state, City: city, Service: svc})
		}
	}
	return out, nil
}

// ShouldGenerate reports whether location is in LocationParams(opts).
// The comparison is case-insensitive.
func (s *StaticParamsService) ShouldGenerate(location string, opts domain.StaticParamsOptions) (bool, error) {
	params, err := s.LocationParams(opts)
	if err != nil {
		return false, fmt.Errorf("service.StaticParamsService.ShouldGenerate: %w", err)
	}

	want := strings.ToLower(strings.TrimSpace(location))
	for _, p := range params {
		if p == want {
			return true, nil
		}
	}
	return false, nil
}

// DisplayName formats a location or service slug for display.
func (s *StaticParamsService) DisplayName(slug string) string {
	return s.names.DisplayName(slug)
}
