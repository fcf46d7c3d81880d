package service

import (
	"context"
	"fmt"

	"github.com/pkordes/firm-site/internal/domain"
	"github.com/pkordes/firm-site/internal/repo"
)

// StoredRenderer renders a hand-authored page row.
type StoredRenderer interface {
	Stored(page domain.LocationPage, locale domain.Locale, firm domain.FirmContact) (domain.RenderedPage, error)
}

// StoredPage is a PageImplementation backed by a location_pages row.
// Content is read on every render so edits show up without a restart; only
// the set of registered keys is fixed at startup.
type StoredPage struct {
	pages    repo.LocationPageRepo
	renderer StoredRenderer
	firm     domain.FirmContact
}

// NewStoredPage constructs a StoredPage.
func NewStoredPage(pages repo.LocationPageRepo, renderer StoredRenderer, firm domain.FirmContact) *StoredPage {
	return &StoredPage{pages: pages, renderer: renderer, firm: firm}
}

// Render loads the row for slug and renders it.
func (p *StoredPage) Render(ctx context.Context, slug domain.LocationSlug, locale domain.Locale) (domain.RenderedPage, error) {
	row, err := p.pages.GetByKey(ctx, slug)
	if err != nil {
		return domain.RenderedPage{}, fmt.Errorf("service.StoredPage.Render: %w", err)
	}
	page, err := p.renderer.Stored(row, locale, p.firm)
	if err != nil {
		return domain.RenderedPage{}, fmt.Errorf("service.StoredPage.Render: %w", err)
	}
	return page, nil
}

// RegisterStoredPages registers one StoredPage per row in location_pages and
// returns how many were registered. A row whose key is already taken (for
// example by a code-registered page) is an error.
func RegisterStoredPages(ctx context.Context, reg *Registry, pages repo.LocationPageRepo, renderer StoredRenderer, firm domain.FirmContact) (int, error) {
	rows, err := pages.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("service.RegisterStoredPages: %w", err)
	}

	impl := NewStoredPage(pages, renderer, firm)
	for _, row := range rows {
		if err := reg.Register(row.Slug().Key(), impl); err != nil {
			return 0, fmt.Errorf("service.RegisterStoredPages: %w", err)
		}
	}
	return len(rows), nil
}
