package cookies

import (
	"context"
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE cookies (
  name      TEXT PRIMARY KEY,
  value     TEXT NOT NULL,
  path      TEXT NOT NULL DEFAULT '',
  domain    TEXT NOT NULL DEFAULT '',
  expires   INTEGER NOT NULL DEFAULT 0,
  secure    INTEGER NOT NULL DEFAULT 0,
  http_only INTEGER NOT NULL DEFAULT 0
);`)
	require.NoError(t, err)
	return db
}

func TestUpsertAndList_RoundTripsAttributes(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	exp := time.Unix(1_900_000_000, 0)

	require.NoError(t, r.Upsert(ctx, &http.Cookie{
		Name: "session", Value: "abc", Path: "/", Expires: exp, HttpOnly: true,
	}))

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	c := list[0]
	assert.Equal(t, "session", c.Name)
	assert.Equal(t, "abc", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.HttpOnly)
	assert.False(t, c.Secure)
	assert.True(t, exp.Equal(c.Expires))
}

func TestUpsert_OverwritesByName(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, &http.Cookie{Name: "session", Value: "old"}))
	require.NoError(t, r.Upsert(ctx, &http.Cookie{Name: "session", Value: "new"}))

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "new", list[0].Value)
	assert.True(t, list[0].Expires.IsZero(), "session cookie keeps zero expiry")
}

func TestDelete_RemovesOnlyNamed_AndIsIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, &http.Cookie{Name: "a", Value: "1"}))
	require.NoError(t, r.Upsert(ctx, &http.Cookie{Name: "b", Value: "2"}))

	require.NoError(t, r.Delete(ctx, "a"))
	require.NoError(t, r.Delete(ctx, "a"))

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "b", list[0].Name)
}

func TestClear_EmptiesTable(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, &http.Cookie{Name: "a", Value: "1"}))
	require.NoError(t, r.Clear(ctx))

	list, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
