package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/firm-site/internal/domain"
	"github.com/pkordes/firm-site/internal/render"
	"github.com/pkordes/firm-site/internal/repo"
	"github.com/pkordes/firm-site/internal/service"
)

// ---- mock LocationPageRepo -------------------------------------------------

type mockLocationPageRepo struct {
	list     func(ctx context.Context) ([]domain.LocationPage, error)
	getByKey func(ctx context.Context, slug domain.LocationSlug) (domain.LocationPage, error)
}

func (m *mockLocationPageRepo) List(ctx context.Context) ([]domain.LocationPage, error) {
	return m.list(ctx)
}
func (m *mockLocationPageRepo) GetByKey(ctx context.Context, slug domain.LocationSlug) (domain.LocationPage, error) {
	return m.getByKey(ctx, slug)
}

// compile-time check
var _ repo.LocationPageRepo = (*mockLocationPageRepo)(nil)

func storedRows() []domain.LocationPage {
	return []domain.LocationPage{
		{State: "nc", City: "durham", Service: "personal-injury-lawyer", Title: "Durham PI", Headline: "Hurt?", Body: "Call us."},
		{State: "sc", City: "greenville", Title: "Greenville", Headline: "Upstate", Body: "Hello."},
	}
}

func TestRegisterStoredPages(t *testing.T) {
	r, err := render.New()
	require.NoError(t, err)
	reg := service.NewRegistry()
	pages := &mockLocationPageRepo{
		list: func(context.Context) ([]domain.LocationPage, error) { return storedRows(), nil },
	}

	n, err := service.RegisterStoredPages(context.Background(), reg, pages, r, testFirm)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"nc/durham/personal-injury-lawyer", "sc/greenville"}, reg.Keys())
}

func TestRegisterStoredPages_ListError(t *testing.T) {
	r, err := render.New()
	require.NoError(t, err)
	pages := &mockLocationPageRepo{
		list: func(context.Context) ([]domain.LocationPage, error) { return nil, errors.New("connection refused") },
	}

	_, err = service.RegisterStoredPages(context.Background(), service.NewRegistry(), pages, r, testFirm)

	assert.ErrorContains(t, err, "connection refused")
}

func TestRegisterStoredPages_KeyTaken(t *testing.T) {
	r, err := render.New()
	require.NoError(t, err)
	reg := service.NewRegistry()
	require.NoError(t, reg.Register("sc/greenville", noopPage()))
	pages := &mockLocationPageRepo{
		list: func(context.Context) ([]domain.LocationPage, error) { return storedRows(), nil },
	}

	_, err = service.RegisterStoredPages(context.Background(), reg, pages, r, testFirm)

	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestStoredPage_ResolvedThroughRegistry(t *testing.T) {
	r, err := render.New()
	require.NoError(t, err)
	reg := service.NewRegistry()
	pages := &mockLocationPageRepo{
		list: func(context.Context) ([]domain.LocationPage, error) { return storedRows(), nil },
		getByKey: func(_ context.Context, slug domain.LocationSlug) (domain.LocationPage, error) {
			for _, row := range storedRows() {
				if row.Slug() == slug {
					return row, nil
				}
			}
			return domain.LocationPage{}, domain.ErrNotFound
		},
	}
	_, err = service.RegisterStoredPages(context.Background(), reg, pages, r, testFirm)
	require.NoError(t, err)
	res := newResolver(t, reg, discardLogger())

	page, err := res.Resolve(context.Background(), []string{"nc", "durham", "personal-injury-lawyer"})

	require.NoError(t, err)
	assert.Equal(t, domain.SourceSpecific, page.Source)
	assert.Equal(t, "Durham PI", page.Title)
}

func TestStoredPage_RowDeletedAfterStartup_DegradesToGeneric(t *testing.T) {
	r, err := render.New()
	require.NoError(t, err)
	reg := service.NewRegistry()
	pages := &mockLocationPageRepo{
		list: func(context.Context) ([]domain.LocationPage, error) { return storedRows(), nil },
		getByKey: func(context.Context, domain.LocationSlug) (domain.LocationPage, error) {
			return domain.LocationPage{}, domain.ErrNotFound
		},
	}
	_, err = service.RegisterStoredPages(context.Background(), reg, pages, r, testFirm)
	require.NoError(t, err)
	res := newResolver(t, reg, discardLogger())

	page, err := res.Resolve(context.Background(), []string{"sc", "greenville"})

	require.NoError(t, err, "a missing row must not become a 404")
	assert.Equal(t, domain.SourceGeneric, page.Source)
	assert.Equal(t, "SC", page.Generic.StateCode)
}
