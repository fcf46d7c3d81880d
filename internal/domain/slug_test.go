package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/firm-site/internal/domain"
)

func TestParseLocationSlug_StateAndCity(t *testing.T) {
	got, err := domain.ParseLocationSlug([]string{"nc", "asheboro"})

	require.NoError(t, err)
	assert.Equal(t, domain.LocationSlug{State: "nc", City: "asheboro"}, got)
	assert.False(t, got.HasService())
	assert.Equal(t, "nc/asheboro", got.Key())
}

func TestParseLocationSlug_WithService(t *testing.T) {
	got, err := domain.ParseLocationSlug([]string{"nc", "charlotte", "immigration-lawyer"})

	require.NoError(t, err)
	assert.True(t, got.HasService())
	assert.Equal(t, "nc/charlotte/immigration-lawyer", got.Key())
}

func TestParseLocationSlug_NormalizesCaseAndEmptySegments(t *testing.T) {
	got, err := domain.ParseLocationSlug([]string{"", "NC", " Winston-Salem ", ""})

	require.NoError(t, err)
	assert.Equal(t, "nc/winston-salem", got.Key())
}

func TestParseLocationSlug_NotFound(t *testing.T) {
	cases := map[string][]string{
		"empty":          nil,
		"single segment": {"es"},
		"only blanks":    {"", " "},
		"too many":       {"nc", "charlotte", "car-accident", "extra"},
		"long state":     {"ncc", "charlotte"},
		"numeric state":  {"n1", "charlotte"},
		"bad city":       {"nc", "char lotte"},
		"bad service":    {"nc", "charlotte", "car_accident"},
		"double hyphen":  {"nc", "winston--salem"},
	}
	for name, segments := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := domain.ParseLocationSlug(segments)
			assert.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

func TestParseLocationKey(t *testing.T) {
	got, err := domain.ParseLocationKey("sc/greenville/workers-compensation")

	require.NoError(t, err)
	assert.Equal(t, domain.LocationSlug{State: "sc", City: "greenville", Service: "workers-compensation"}, got)
}

func TestStaticParamsOptions_Validate(t *testing.T) {
	ok := domain.StaticParamsOptions{CustomLocations: []string{"Asheboro", "boone"}}
	require.NoError(t, ok.Validate())

	blank := domain.StaticParamsOptions{CustomLocations: []string{"boone", "  "}}
	assert.ErrorIs(t, blank.Validate(), domain.ErrConfiguration)

	malformed := domain.StaticParamsOptions{CustomLocations: []string{"new york"}}
	assert.ErrorIs(t, malformed.Validate(), domain.ErrConfiguration)
}

func TestParseLocale(t *testing.T) {
	l, err := domain.ParseLocale("ES")
	require.NoError(t, err)
	assert.Equal(t, domain.LocaleSpanish, l)

	_, err = domain.ParseLocale("fr")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPageRenderError_Unwraps(t *testing.T) {
	err := &domain.PageRenderError{Key: "nc/raleigh", Err: domain.ErrNotFound}

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "nc/raleigh")
}
