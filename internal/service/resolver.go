package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/pkordes/firm-site/internal/domain"
	"github.com/pkordes/firm-site/internal/naming"
)

// GenericRenderer renders the generic location template.
type GenericRenderer interface {
	Generic(view domain.GenericLocationView) (domain.RenderedPage, error)
}

// PageLookup is the read side of the specific-page registry.
type PageLookup interface {
	Lookup(key string) (PageImplementation, bool)
}

// Resolver serves any well-formed location slug. It never consults the
// priority catalog: a registered page wins, and everything else gets the
// generic template built from the slug alone.
type Resolver struct {
	pages    PageLookup
	names    *naming.Formatter
	renderer GenericRenderer
	firm     domain.FirmContact
	log      *slog.Logger

	// group collapses concurrent renders of the same key and locale.
	group singleflight.Group
}

// NewResolver constructs a Resolver. names supplies the display-name
// overrides; firm is the contact block shown on generic pages.
func NewResolver(pages PageLookup, names *naming.Formatter, renderer GenericRenderer, firm domain.FirmContact, log *slog.Logger) *Resolver {
	return &Resolver{
		pages:    pages,
		names:    names,
		renderer: renderer,
		firm:     firm,
		log:      log,
	}
}

// Resolve resolves slug segments in the default (English) locale.
func (r *Resolver) Resolve(ctx context.Context, segments []string) (domain.RenderedPage, error) {
	return r.ResolveLocalized(ctx, domain.LocaleEnglish, segments)
}

// ResolveLocalized resolves slug segments to a rendered page.
//
// Fewer than two segments, or a malformed segment, wraps domain.ErrNotFound;
// that is the only way resolution fails for a page. A registered page that
// fails or panics while rendering is logged and replaced by the generic page.
func (r *Resolver) ResolveLocalized(ctx context.Context, locale domain.Locale, segments []string) (domain.RenderedPage, error) {
	slug, err := domain.ParseLocationSlug(segments)
	if err != nil {
		return domain.RenderedPage{}, fmt.Errorf("service.Resolver.Resolve: %w", err)
	}

	if impl, ok := r.pages.Lookup(slug.Key()); ok {
		page, err := r.renderSpecific(ctx, impl, slug, locale)
		if err == nil {
			return page, nil
		}
		r.log.WarnContext(ctx, "specific page failed, serving generic page",
			"key", slug.Key(),
			"locale", string(locale),
			"error", err,
		)
	}

	page, err := r.renderer.Generic(r.GenericView(slug, locale))
	if err != nil {
		return domain.RenderedPage{}, fmt.Errorf("service.Resolver.Resolve: generic %s: %w", slug.Key(), err)
	}
	page.Key = slug.Key()
	return page, nil
}

// GenericView computes the generic template values for slug. It does no I/O.
func (r *Resolver) GenericView(slug domain.LocationSlug, locale domain.Locale) domain.GenericLocationView {
	view := domain.GenericLocationView{
		CityDisplayName: r.names.DisplayName(slug.City),
		StateCode:       strings.ToUpper(slug.State),
		Locale:          locale,
		Firm:            r.firm,
	}
	if slug.HasService() {
		view.ServiceDisplayName = r.names.DisplayName(slug.Service)
	}
	return view
}

// specificRenderTimeout bounds a shared specific render, which no longer
// follows any single caller's cancellation.
const specificRenderTimeout = 10 * time.Second

// renderSpecific runs a registered implementation. Concurrent calls for the
// same key and locale share one render. The shared render runs detached from
// the caller that started it, so one cancelled request cannot fail the
// others; each caller still stops waiting when its own ctx is done. Errors
// and panics come back as *domain.PageRenderError.
func (r *Resolver) renderSpecific(ctx context.Context, impl PageImplementation, slug domain.LocationSlug, locale domain.Locale) (domain.RenderedPage, error) {
	ch := r.group.DoChan(string(locale)+":"+slug.Key(), func() (any, error) {
		renderCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), specificRenderTimeout)
		defer cancel()
		return safeRender(renderCtx, impl, slug, locale)
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return domain.RenderedPage{}, &domain.PageRenderError{Key: slug.Key(), Err: ctx.Err()}
	}

	if err := res.Err; err != nil {
		var renderErr *domain.PageRenderError
		if !errors.As(err, &renderErr) {
			err = &domain.PageRenderError{Key: slug.Key(), Err: err}
		}
		return domain.RenderedPage{}, err
	}

	page := res.Val.(domain.RenderedPage)
	page.Key = slug.Key()
	page.Source = domain.SourceSpecific
	return page, nil
}

func safeRender(ctx context.Context, impl PageImplementation, slug domain.LocationSlug, locale domain.Locale) (page domain.RenderedPage, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &domain.PageRenderError{Key: slug.Key(), Err: fmt.Errorf("panic: %v", p)}
		}
	}()

	page, err = impl.Render(ctx, slug, locale)
	if err != nil {
		return domain.RenderedPage{}, &domain.PageRenderError{Key: slug.Key(), Err: err}
	}
	return page, nil
}
