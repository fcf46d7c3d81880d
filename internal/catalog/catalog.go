// Package catalog holds the priority catalog: the curated locations, counties,
// regions and neighborhoods that must be prerendered at build time, plus the
// per-state priority city lists and display-name overrides.
//
// A Catalog is loaded once at process start and never mutated afterwards, so
// it can be shared freely between goroutines.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pkordes/firm-site/internal/domain"
	"github.com/pkordes/firm-site/internal/naming"
)

//go:embed default.yaml
var defaultYAML []byte

// file is the on-disk YAML layout.
type file struct {
	PrimaryState     string              `yaml:"primary_state"`
	Locations        []string            `yaml:"locations"`
	Counties         []string            `yaml:"counties"`
	Regions          []string            `yaml:"regions"`
	Neighborhoods    []string            `yaml:"neighborhoods"`
	States           map[string][]string `yaml:"states"`
	DisplayOverrides map[string]string   `yaml:"display_overrides"`
}

// Catalog is the immutable priority catalog. Build one with Default, Load or
// LoadFile; accessors return copies so callers cannot mutate it.
type Catalog struct {
	primaryState     string
	locations        []string
	counties         []string
	regions          []string
	neighborhoods    []string
	states           map[string][]string
	displayOverrides map[string]string
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	c, err := Load(bytes.NewReader(defaultYAML))
	if err != nil {
		return nil, fmt.Errorf("catalog.Default: %w", err)
	}
	return c, nil
}

// LoadFile reads a catalog from a YAML file on disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog.LoadFile: %w: %v", domain.ErrConfiguration, err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("catalog.LoadFile: %s: %w", path, err)
	}
	return c, nil
}

// Load decodes and validates a catalog. Unknown YAML keys, malformed slugs,
// duplicates, overlap between the four catalogs, a primary state with no city
// list, and overrides that do not slugify back to their key all wrap
// domain.ErrConfiguration.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: catalog is empty", domain.ErrConfiguration)
		}
		return nil, fmt.Errorf("%w: decode catalog: %v", domain.ErrConfiguration, err)
	}
	return build(f)
}

func build(f file) (*Catalog, error) {
	c := &Catalog{
		primaryState:     strings.ToLower(strings.TrimSpace(f.PrimaryState)),
		states:           make(map[string][]string, len(f.States)),
		displayOverrides: make(map[string]string, len(f.DisplayOverrides)),
	}

	var err error
	owner := map[string]string{} // entry -> catalog name, for the disjointness check
	if c.locations, err = normalizeList("locations", f.Locations, owner); err != nil {
		return nil, err
	}
	if c.counties, err = normalizeList("counties", f.Counties, owner); err != nil {
		return nil, err
	}
	if c.regions, err = normalizeList("regions", f.Regions, owner); err != nil {
		return nil, err
	}
	if c.neighborhoods, err = normalizeList("neighborhoods", f.Neighborhoods, owner); err != nil {
		return nil, err
	}
	if len(c.locations) == 0 {
		return nil, fmt.Errorf("%w: locations catalog is empty", domain.ErrConfiguration)
	}

	for state, cities := range f.States {
		code := strings.ToLower(strings.TrimSpace(state))
		if !domain.IsStateCode(code) {
			return nil, fmt.Errorf("%w: state %q is not a two-letter code", domain.ErrConfiguration, state)
		}
		if _, dup := c.states[code]; dup {
			return nil, fmt.Errorf("%w: state %q listed twice", domain.ErrConfiguration, state)
		}
		list, err := normalizeList("states."+code, cities, map[string]string{})
		if err != nil {
			return nil, err
		}
		c.states[code] = list
	}

	if !domain.IsStateCode(c.primaryState) {
		return nil, fmt.Errorf("%w: primary_state %q is not a two-letter code", domain.ErrConfiguration, f.PrimaryState)
	}
	if len(c.states[c.primaryState]) == 0 {
		return nil, fmt.Errorf("%w: primary_state %q has no priority cities", domain.ErrConfiguration, c.primaryState)
	}

	for slug, name := range f.DisplayOverrides {
		key := strings.ToLower(strings.TrimSpace(slug))
		if !domain.IsKebabCase(key) {
			return nil, fmt.Errorf("%w: display override key %q is not a slug", domain.ErrConfiguration, slug)
		}
		if got := naming.Slugify(name); got != key {
			return nil, fmt.Errorf("%w: display override %q slugifies to %q, not %q", domain.ErrConfiguration, name, got, key)
		}
		c.displayOverrides[key] = name
	}

	return c, nil
}

// normalizeList lowercases and validates entries, rejecting duplicates within
// the list and entries already claimed by another catalog in owner.
func normalizeList(name string, entries []string, owner map[string]string) ([]string, error) {
	out := make([]string, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		slug := strings.ToLower(strings.TrimSpace(e))
		if !domain.IsKebabCase(slug) {
			return nil, fmt.Errorf("%w: %s entry %q is not a slug", domain.ErrConfiguration, name, e)
		}
		if seen[slug] {
			return nil, fmt.Errorf("%w: %s lists %q twice", domain.ErrConfiguration, name, slug)
		}
		if other, ok := owner[slug]; ok {
			return nil, fmt.Errorf("%w: %q appears in both %s and %s", domain.ErrConfiguration, slug, other, name)
		}
		seen[slug] = true
		owner[slug] = name
		out = append(out, slug)
	}
	return out, nil
}

// PrimaryState is the state whose priority cities are crossed with services.
func (c *Catalog) PrimaryState() string { return c.primaryState }

// Locations returns the city-level catalog in declaration order.
func (c *Catalog) Locations() []string { return clone(c.locations) }

// Counties returns the county catalog in declaration order.
func (c *Catalog) Counties() []string { return clone(c.counties) }

// Regions returns the region catalog in declaration order.
func (c *Catalog) Regions() []string { return clone(c.regions) }

// Neighborhoods returns the neighborhood catalog in declaration order.
func (c *Catalog) Neighborhoods() []string { return clone(c.neighborhoods) }

// StateCities returns the ordered priority cities for a state code, or nil
// when the state has none. The lookup is case-insensitive.
func (c *Catalog) StateCities(state string) []string {
	return clone(c.states[strings.ToLower(strings.TrimSpace(state))])
}

// States returns the configured state codes, sorted.
func (c *Catalog) States() []string {
	out := make([]string, 0, len(c.states))
	for s := range c.states {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// DisplayOverrides returns a copy of the irregular display-name table.
func (c *Catalog) DisplayOverrides() map[string]string {
	out := make(map[string]string, len(c.displayOverrides))
	for k, v := range c.displayOverrides {
		out[k] = v
	}
	return out
}

func clone(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
