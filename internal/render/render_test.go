package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/firm-site/internal/domain"
	"github.com/pkordes/firm-site/internal/render"
)

var firm = domain.FirmContact{Name: "Carolina Law Group", Phone: "704-555-0100", CTA: "Free consultation"}

func newRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	r, err := render.New()
	require.NoError(t, err)
	return r
}

func TestGeneric_CityOnly(t *testing.T) {
	r := newRenderer(t)
	view := domain.GenericLocationView{CityDisplayName: "Asheboro", StateCode: "NC", Locale: domain.LocaleEnglish, Firm: firm}

	page, err := r.Generic(view)

	require.NoError(t, err)
	assert.Equal(t, domain.SourceGeneric, page.Source)
	assert.Equal(t, "Asheboro, NC Lawyers | Carolina Law Group", page.Title)
	require.NotNil(t, page.Generic)
	assert.Equal(t, view, *page.Generic)

	html := string(page.HTML)
	assert.Contains(t, html, `<html lang="en">`)
	assert.Contains(t, html, "Lawyers Serving Asheboro, NC")
	assert.Contains(t, html, "704-555-0100")
	assert.Contains(t, html, "Free consultation")
}

func TestGeneric_WithService(t *testing.T) {
	r := newRenderer(t)
	view := domain.GenericLocationView{
		CityDisplayName:    "Winston-Salem",
		StateCode:          "NC",
		ServiceDisplayName: "Immigration Lawyer",
		Locale:             domain.LocaleEnglish,
		Firm:               firm,
	}

	page, err := r.Generic(view)

	require.NoError(t, err)
	assert.Equal(t, "Immigration Lawyer in Winston-Salem, NC | Carolina Law Group", page.Title)
	assert.Contains(t, string(page.HTML), "<h1>Immigration Lawyer in Winston-Salem, NC</h1>")
}

func TestGeneric_Spanish(t *testing.T) {
	r := newRenderer(t)
	view := domain.GenericLocationView{CityDisplayName: "Durham", StateCode: "NC", Locale: domain.LocaleSpanish, Firm: firm}

	page, err := r.Generic(view)

	require.NoError(t, err)
	assert.Equal(t, "Abogados en Durham, NC | Carolina Law Group", page.Title)
	assert.Contains(t, string(page.HTML), `<html lang="es">`)
}

func TestGeneric_EscapesInput(t *testing.T) {
	r := newRenderer(t)
	view := domain.GenericLocationView{CityDisplayName: "<script>", StateCode: "NC", Firm: firm}

	page, err := r.Generic(view)

	require.NoError(t, err)
	assert.NotContains(t, string(page.HTML), "<script>")
	assert.Contains(t, string(page.HTML), `lang="en"`, "unknown locale falls back to English")
}

func TestStored_SplitsParagraphs(t *testing.T) {
	r := newRenderer(t)
	row := domain.LocationPage{
		State:    "nc",
		City:     "durham",
		Service:  "personal-injury-lawyer",
		Title:    "Durham Personal Injury Lawyer",
		Headline: "Hurt in Durham?",
		Body:     "First paragraph.\n\nSecond paragraph.\n\n",
	}

	page, err := r.Stored(row, domain.LocaleEnglish, firm)

	require.NoError(t, err)
	assert.Equal(t, domain.SourceSpecific, page.Source)
	assert.Equal(t, "nc/durham/personal-injury-lawyer", page.Key)
	assert.Nil(t, page.Generic)
	assert.Contains(t, string(page.HTML), "<p>First paragraph.</p>")
	assert.Contains(t, string(page.HTML), "<p>Second paragraph.</p>")
}

func TestNotFound(t *testing.T) {
	r := newRenderer(t)

	html, err := r.NotFound(domain.LocaleSpanish, firm)

	require.NoError(t, err)
	assert.Contains(t, string(html), "Página no encontrada")
}
