// Package repo contains all database access logic for the firm site.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/firm-site/internal/domain"
)

// db is the read-only interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// LocationPageRepo defines the persistence operations for hand-authored
// location pages.
type LocationPageRepo interface {
	// List returns every stored page ordered by state, city, service.
	List(ctx context.Context) ([]domain.LocationPage, error)

	// GetByKey returns the page stored under slug.
	// Returns domain.ErrNotFound if there is none.
	GetByKey(ctx context.Context, slug domain.LocationSlug) (domain.LocationPage, error)
}

// pgLocationPageRepo is the Postgres implementation of LocationPageRepo.
type pgLocationPageRepo struct {
	db db
}

// NewLocationPageRepo constructs a LocationPageRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewLocationPageRepo(db db) LocationPageRepo {
	return &pgLocationPageRepo{db: db}
}

// List returns all stored pages.
func (r *pgLocationPageRepo) List(ctx context.Context) ([]domain.LocationPage, error) {
	const q = `
		SELECT id, state, city, service, title, headline, body, created_at, updated_at
		FROM location_pages
		ORDER BY state, city, service`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.LocationPageRepo.List: %w", err)
	}
	defer rows.Close()

	pages := []domain.LocationPage{}
	for rows.Next() {
		p, err := scanLocationPage(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.LocationPageRepo.List: scan: %w", err)
		}
		pages = append(pages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.LocationPageRepo.List: rows: %w", err)
	}
	return pages, nil
}

// GetByKey retrieves a page by its (state, city, service) key.
func (r *pgLocationPageRepo) GetByKey(ctx context.Context, slug domain.LocationSlug) (domain.LocationPage, error) {
	const q = `
		SELECT id, state, city, service, title, headline, body, created_at, updated_at
		FROM location_pages
		WHERE state = @state AND city = @city AND service = @service`

	args := pgx.NamedArgs{"state": slug.State, "city": slug.City, "service": slug.Service}
	result, err := scanLocationPage(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.LocationPage{}, fmt.Errorf("repo.LocationPageRepo.GetByKey: %w", err)
	}
	return result, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanLocationPage maps a single database row into a domain.LocationPage.
func scanLocationPage(s scanner) (domain.LocationPage, error) {
	var (
		p  domain.LocationPage
		id pgtype.UUID
	)
	err := s.Scan(&id, &p.State, &p.City, &p.Service, &p.Title, &p.Headline, &p.Body, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.LocationPage{}, domain.ErrNotFound
		}
		return domain.LocationPage{}, err
	}
	p.ID = uuid.UUID(id.Bytes)
	return p, nil
}
