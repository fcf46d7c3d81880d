package testutil_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/firm-site/migrations"
	"github.com/pkordes/firm-site/testutil"
)

// TestMigrations checks the full migration round trip against Postgres:
// up creates location_pages with its seed rows, down-to 0 removes it.
// The schema is re-applied on cleanup because other packages share the DB.
func TestMigrations(t *testing.T) {
	db := testutil.NewSQLDB(t)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	require.NoError(t, err, "create goose provider")

	ctx := context.Background()
	t.Cleanup(func() {
		_, _ = provider.Up(context.Background())
	})

	// Another package's TestMain may already have migrated the shared DB.
	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err, "initial reset")

	results, err := provider.Up(ctx)
	require.NoError(t, err, "goose up")
	assert.Len(t, results, 2)

	assert.True(t, tableExists(t, db, "location_pages"))

	var seeded int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT count(*) FROM location_pages`).Scan(&seeded))
	assert.Equal(t, 2, seeded)

	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err, "goose down-to 0")

	assert.False(t, tableExists(t, db, "location_pages"))
}

func tableExists(t *testing.T, db *sql.DB, table string) bool {
	t.Helper()

	const q = `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public'
			AND   table_name   = $1
		)`
	var exists bool
	require.NoError(t, db.QueryRowContext(context.Background(), q, table).Scan(&exists), "check table %q", table)
	return exists
}
