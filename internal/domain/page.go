package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Locale is a site language. The site is published in English and Spanish.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleSpanish Locale = "es"
)

// ParseLocale accepts "en" or "es" in any case. Anything else wraps ErrValidation.
func ParseLocale(s string) (Locale, error) {
	switch l := Locale(strings.ToLower(strings.TrimSpace(s))); l {
	case LocaleEnglish, LocaleSpanish:
		return l, nil
	}
	return "", fmt.Errorf("%w: unsupported locale %q", ErrValidation, s)
}

// PageSource tells whether a page came from a registered implementation or
// the generic location template.
type PageSource string

const (
	SourceSpecific PageSource = "specific"
	SourceGeneric  PageSource = "generic"
)

// FirmContact is the static contact block shown on every location page.
type FirmContact struct {
	Name  string
	Phone string
	CTA   string
}

// GenericLocationView holds the display values for the generic location
// template. It is computed from the slug alone, with no I/O.
type GenericLocationView struct {
	CityDisplayName    string
	StateCode          string
	ServiceDisplayName string // empty for city-only pages
	Locale             Locale
	Firm               FirmContact
}

// RenderedPage is the outcome of resolving a location slug.
// Generic is set only when Source is SourceGeneric.
type RenderedPage struct {
	Key     string
	Source  PageSource
	Title   string
	HTML    []byte
	Generic *GenericLocationView
}

// LocationPage is a hand-authored page stored in the database.
// Service is empty for city-level pages.
type LocationPage struct {
	ID        uuid.UUID
	State     string
	City      string
	Service   string
	Title     string
	Headline  string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Slug returns the location slug the page is registered under.
func (p LocationPage) Slug() LocationSlug {
	return LocationSlug{State: p.State, City: p.City, Service: p.Service}
}
