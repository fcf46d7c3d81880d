package domain

import (
	"fmt"
	"strings"
)

// StaticParamsOptions selects which priority catalogs are unioned into the
// build-time prerender list. The Locations catalog is always included.
type StaticParamsOptions struct {
	IncludeCounties      bool
	IncludeRegions       bool
	IncludeNeighborhoods bool

	// CustomLocations are appended after the catalogs. Matching is case-insensitive.
	CustomLocations []string

	// Limit truncates the result to its first Limit entries.
	// Zero or negative means no limit.
	Limit int
}

// Validate returns ErrConfiguration if any custom location is blank or is not
// a kebab-case slug after lowercasing.
func (o StaticParamsOptions) Validate() error {
	for i, loc := range o.CustomLocations {
		norm := strings.ToLower(strings.TrimSpace(loc))
		if norm == "" {
			return fmt.Errorf("%w: custom location %d is blank", ErrConfiguration, i)
		}
		if !IsKebabCase(norm) {
			return fmt.Errorf("%w: custom location %q is not a slug", ErrConfiguration, loc)
		}
	}
	return nil
}

// StateCityParam is one (state, city) tuple to prerender.
type StateCityParam struct {
	State string `json:"state"`
	City  string `json:"city"`
}

// LocationServiceParam is one (state, city, service) tuple to prerender.
type LocationServiceParam struct {
	State   string `json:"state"`
	City    string `json:"city"`
	Service string `json:"service"`
}
