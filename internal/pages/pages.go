// Package pages holds the location pages written in code rather than stored
// in the database. Each one is registered under its exact slug key at startup.
package pages

import (
	"context"
	"fmt"

	"github.com/pkordes/firm-site/internal/domain"
	"github.com/pkordes/firm-site/internal/service"
)

// Renderer is the subset of render.Renderer the pages need.
type Renderer interface {
	Stored(page domain.LocationPage, locale domain.Locale, firm domain.FirmContact) (domain.RenderedPage, error)
}

// page is a bilingual page written in code.
type page struct {
	en, es   domain.LocationPage
	renderer Renderer
	firm     domain.FirmContact
}

func (p *page) Render(_ context.Context, _ domain.LocationSlug, locale domain.Locale) (domain.RenderedPage, error) {
	content := p.en
	if locale == domain.LocaleSpanish && p.es.Title != "" {
		content = p.es
	}
	return p.renderer.Stored(content, locale, p.firm)
}

var definitions = []struct{ en, es domain.LocationPage }{
	{
		en: domain.LocationPage{
			State: "nc", City: "charlotte", Service: "immigration-lawyer",
			Title:    "Charlotte Immigration Lawyer",
			Headline: "Immigration help from our Charlotte office",
			Body: "Family petitions, green cards, naturalization and removal defense, handled by attorneys who have practiced in Charlotte for over a decade.\n\n" +
				"Consultations are available in English and Spanish.",
		},
		es: domain.LocationPage{
			State: "nc", City: "charlotte", Service: "immigration-lawyer",
			Title:    "Abogado de Inmigración en Charlotte",
			Headline: "Ayuda de inmigración desde nuestra oficina en Charlotte",
			Body: "Peticiones familiares, residencia permanente, ciudadanía y defensa contra la deportación.\n\n" +
				"Ofrecemos consultas en español e inglés.",
		},
	},
	{
		en: domain.LocationPage{
			State: "nc", City: "raleigh",
			Title:    "Raleigh Law Office",
			Headline: "Our Raleigh office serves the whole Triangle",
			Body:     "From downtown Raleigh we represent clients in Wake, Durham and Johnston counties.",
		},
	},
}

// Register adds every page in this package to reg.
func Register(reg *service.Registry, renderer Renderer, firm domain.FirmContact) error {
	for _, c := range definitions {
		p := &page{en: c.en, es: c.es, renderer: renderer, firm: firm}
		if err := reg.Register(c.en.Slug().Key(), p); err != nil {
			return fmt.Errorf("pages.Register: %w", err)
		}
	}
	return nil
}

// Keys returns the keys Register adds, in declaration order.
func Keys() []string {
	keys := make([]string, 0, len(definitions))
	for _, c := range definitions {
		keys = append(keys, c.en.Slug().Key())
	}
	return keys
}
