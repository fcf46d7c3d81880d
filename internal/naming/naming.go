// Package naming turns kebab-case location and practice-area slugs into
// display names and back.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Formatter derives display names from slugs. Irregular names that the
// generic rule gets wrong ("Winston-Salem", "NoDa") come from an override
// table supplied at construction. A Formatter is immutable and safe for
// concurrent use.
type Formatter struct {
	overrides map[string]string
}

// NewFormatter copies overrides, keyed by lowercase slug.
func NewFormatter(overrides map[string]string) *Formatter {
	f := &Formatter{overrides: make(map[string]string, len(overrides))}
	for slug, name := range overrides {
		f.overrides[strings.ToLower(strings.TrimSpace(slug))] = name
	}
	return f
}

// DisplayName formats a slug for display: the override table wins, otherwise
// each hyphen-separated word is title-cased and the words are joined with spaces.
//
//	DisplayName("asheboro")           // "Asheboro"
//	DisplayName("winston-salem")      // "Winston-Salem" (override)
//	DisplayName("immigration-lawyer") // "Immigration Lawyer"
func (f *Formatter) DisplayName(slug string) string {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if name, ok := f.overrides[slug]; ok {
		return name
	}

	// cases.Caser keeps state between calls, so it is never shared.
	caser := cases.Title(language.English)
	words := strings.FieldsFunc(slug, func(r rune) bool { return r == '-' })
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}

// Slugify converts a display name to a kebab-case slug. Accents are stripped
// ("Peñuelas" → "penuelas"), letters are lowercased, and every run of other
// characters becomes a single hyphen.
func Slugify(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, name)
	if err != nil {
		plain = name
	}

	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(plain) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}
