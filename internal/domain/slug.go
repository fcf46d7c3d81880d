// Package domain contains the core data types for the firm site's location pages.
// This package has zero external dependencies and is imported by every other
// internal package (catalog, service, repo, handler).
package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	stateCodePattern = regexp.MustCompile(`^[a-z]{2}$`)
	kebabPattern     = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// LocationSlug is the parsed form of a location page path:
// state/city[/service]. State and City are always set; Service is optional.
// Values are only built by ParseLocationSlug, so every LocationSlug in the
// program is already known to be well formed.
type LocationSlug struct {
	State   string
	City    string
	Service string
}

// ParseLocationSlug builds a LocationSlug from URL path segments.
// Segments are trimmed and lowercased; empty segments (from doubled or trailing
// slashes) are ignored. Fewer than two or more than three segments, a state that
// is not a two-letter code, or a non-kebab-case city or service wrap ErrNotFound.
func ParseLocationSlug(segments []string) (LocationSlug, error) {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			parts = append(parts, s)
		}
	}

	if len(parts) < 2 || len(parts) > 3 {
		return LocationSlug{}, fmt.Errorf("%w: slug %q must have a state and a city", ErrNotFound, strings.Join(parts, "/"))
	}
	if !stateCodePattern.MatchString(parts[0]) {
		return LocationSlug{}, fmt.Errorf("%w: state %q is not a two-letter code", ErrNotFound, parts[0])
	}
	for _, p := range parts[1:] {
		if !IsKebabCase(p) {
			return LocationSlug{}, fmt.Errorf("%w: segment %q is not a slug", ErrNotFound, p)
		}
	}

	slug := LocationSlug{State: parts[0], City: parts[1]}
	if len(parts) == 3 {
		slug.Service = parts[2]
	}
	return slug, nil
}

// ParseLocationKey parses a "state/city[/service]" registry key.
func ParseLocationKey(key string) (LocationSlug, error) {
	return ParseLocationSlug(strings.Split(key, "/"))
}

// Key returns the registry key "state/city" or "state/city/service".
func (s LocationSlug) Key() string {
	if s.Service == "" {
		return s.State + "/" + s.City
	}
	return s.State + "/" + s.City + "/" + s.Service
}

// HasService reports whether the slug names a practice-area page.
func (s LocationSlug) HasService() bool {
	return s.Service != ""
}

func (s LocationSlug) String() string {
	return s.Key()
}

// IsKebabCase reports whether s is a lowercase, hyphen-separated identifier
// such as "winston-salem" or "immigration-lawyer".
func IsKebabCase(s string) bool {
	return kebabPattern.MatchString(s)
}

// IsStateCode reports whether s is a lowercase two-letter region code.
func IsStateCode(s string) bool {
	return stateCodePattern.MatchString(s)
}
