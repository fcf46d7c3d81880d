// Package render turns location page values into HTML using the templates
// embedded under templates/.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/pkordes/firm-site/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// copyText is the fixed wording for one locale.
type copyText struct {
	CallPrefix  string
	ContactPath string

	cityTitle     string // city, state, firm
	serviceTitle  string // service, city, state, firm
	cityHeading   string // city, state
	serviceHead   string // service, city, state
	cityIntro     string // firm, city, state
	serviceIntro  string // firm, service, city, state
	notFoundTitle string
	notFoundIntro string
}

var copyByLocale = map[domain.Locale]copyText{
	domain.LocaleEnglish: {
		CallPrefix:    "Call us today:",
		ContactPath:   "/contact",
		cityTitle:     "%s, %s Lawyers | %s",
		serviceTitle:  "%s in %s, %s | %s",
		cityHeading:   "Lawyers Serving %s, %s",
		serviceHead:   "%s in %s, %s",
		cityIntro:     "%s represents clients in %s, %s and the surrounding communities.",
		serviceIntro:  "%s handles %s matters for clients in %s, %s.",
		notFoundTitle: "Page not found",
		notFoundIntro: "We could not find that page, but we can still help.",
	},
	domain.LocaleSpanish: {
		CallPrefix:    "Llámenos hoy:",
		ContactPath:   "/es/contacto",
		cityTitle:     "Abogados en %s, %s | %s",
		serviceTitle:  "%s en %s, %s | %s",
		cityHeading:   "Abogados en %s, %s",
		serviceHead:   "%s en %s, %s",
		cityIntro:     "%s representa a clientes en %s, %s y las comunidades cercanas.",
		serviceIntro:  "%s atiende casos de %s para clientes en %s, %s.",
		notFoundTitle: "Página no encontrada",
		notFoundIntro: "No encontramos esa página, pero aún podemos ayudarle.",
	},
}

// pageData is what every template sees.
type pageData struct {
	Lang        string
	Title       string
	Description string
	Heading     string
	Intro       string
	Paragraphs  []string
	Copy        copyText
	Firm        domain.FirmContact
}

// Renderer holds the parsed templates. It is safe for concurrent use.
type Renderer struct {
	generic  *template.Template
	stored   *template.Template
	notFound *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	parse := func(name string) (*template.Template, error) {
		t, err := template.ParseFS(templateFS, "templates/partials.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("render.New: parse %s: %w", name, err)
		}
		return t.Lookup(name), nil
	}

	r := &Renderer{}
	var err error
	if r.generic, err = parse("generic.html"); err != nil {
		return nil, err
	}
	if r.stored, err = parse("stored.html"); err != nil {
		return nil, err
	}
	if r.notFound, err = parse("not_found.html"); err != nil {
		return nil, err
	}
	return r, nil
}

// Generic renders the generic location template for view.
func (r *Renderer) Generic(view domain.GenericLocationView) (domain.RenderedPage, error) {
	c := copyFor(view.Locale)
	data := pageData{
		Lang: string(localeOrDefault(view.Locale)),
		Copy: c,
		Firm: view.Firm,
	}
	if view.ServiceDisplayName != "" {
		data.Title = fmt.Sprintf(c.serviceTitle, view.ServiceDisplayName, view.CityDisplayName, view.StateCode, view.Firm.Name)
		data.Heading = fmt.Sprintf(c.serviceHead, view.ServiceDisplayName, view.CityDisplayName, view.StateCode)
		data.Intro = fmt.Sprintf(c.serviceIntro, view.Firm.Name, view.ServiceDisplayName, view.CityDisplayName, view.StateCode)
	} else {
		data.Title = fmt.Sprintf(c.cityTitle, view.CityDisplayName, view.StateCode, view.Firm.Name)
		data.Heading = fmt.Sprintf(c.cityHeading, view.CityDisplayName, view.StateCode)
		data.Intro = fmt.Sprintf(c.cityIntro, view.Firm.Name, view.CityDisplayName, view.StateCode)
	}
	data.Description = data.Intro

	html, err := execute(r.generic, data)
	if err != nil {
		return domain.RenderedPage{}, fmt.Errorf("render.Generic: %w", err)
	}

	v := view
	return domain.RenderedPage{
		Source:  domain.SourceGeneric,
		Title:   data.Title,
		HTML:    html,
		Generic: &v,
	}, nil
}

// Stored renders a hand-authored page. Blank lines in Body separate paragraphs.
func (r *Renderer) Stored(page domain.LocationPage, locale domain.Locale, firm domain.FirmContact) (domain.RenderedPage, error) {
	data := pageData{
		Lang:        string(localeOrDefault(locale)),
		Title:       page.Title,
		Description: page.Headline,
		Heading:     page.Headline,
		Paragraphs:  paragraphs(page.Body),
		Copy:        copyFor(locale),
		Firm:        firm,
	}

	html, err := execute(r.stored, data)
	if err != nil {
		return domain.RenderedPage{}, fmt.Errorf("render.Stored: %w", err)
	}
	return domain.RenderedPage{
		Key:    page.Slug().Key(),
		Source: domain.SourceSpecific,
		Title:  page.Title,
		HTML:   html,
	}, nil
}

// NotFound renders the 404 page.
func (r *Renderer) NotFound(locale domain.Locale, firm domain.FirmContact) ([]byte, error) {
	c := copyFor(locale)
	data := pageData{
		Lang:    string(localeOrDefault(locale)),
		Title:   c.notFoundTitle + " | " + firm.Name,
		Heading: c.notFoundTitle,
		Intro:   c.notFoundIntro,
		Copy:    c,
		Firm:    firm,
	}
	html, err := execute(r.notFound, data)
	if err != nil {
		return nil, fmt.Errorf("render.NotFound: %w", err)
	}
	return html, nil
}

func execute(t *template.Template, data pageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func localeOrDefault(l domain.Locale) domain.Locale {
	if _, ok := copyByLocale[l]; ok {
		return l
	}
	return domain.LocaleEnglish
}

func copyFor(l domain.Locale) copyText {
	return copyByLocale[localeOrDefault(l)]
}

func paragraphs(body string) []string {
	var out []string
	for _, p := range strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
