package client

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
	"time"

	"github.com/dmitrijs2005/certkeeper/internal/client/repositories/cookies"
	"github.com/dmitrijs2005/certkeeper/internal/dbx"
	"github.com/dmitrijs2005/certkeeper/internal/logging"
	"golang.org/x/net/publicsuffix"
)

// PersistentJar is an http.CookieJar that mirrors the backend's cookies into
// the local session database, so a session survives restarts of the CLI.
// Only cookies set by the configured backend host are persisted.
type PersistentJar struct {
	mu    sync.Mutex
	base  *url.URL
	db    *sql.DB
	inner *cookiejar.Jar
	log   logging.Logger
	now   func() time.Time
}

var _ http.CookieJar = (*PersistentJar)(nil)

func newInnerJar() (*cookiejar.Jar, error) {
	return cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
}

// NewPersistentJar builds the jar and seeds it with the unexpired cookies
// stored for baseURL.
func NewPersistentJar(ctx context.Context, baseURL string, db *sql.DB, log logging.Logger) (*PersistentJar, error) {
	u, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	inner, err := newInnerJar()
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	j := &PersistentJar{base: u, db: db, inner: inner, log: log, now: time.Now}
	if err := j.load(ctx); err != nil {
		return nil, err
	}
	return j, nil
}

func (j *PersistentJar) load(ctx context.Context) error {
	return dbx.WithTx(ctx, j.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := cookies.NewSQLiteRepository(tx)

		stored, err := repo.List(ctx)
		if err != nil {
			return err
		}

		live := make([]*http.Cookie, 0, len(stored))
		for _, c := range stored {
			if j.expired(c) {
				if err := repo.Delete(ctx, c.Name); err != nil {
					return err
				}
				continue
			}
			live = append(live, c)
		}

		j.inner.SetCookies(j.base, live)
		j.log.Debug(ctx, "session cookies restored", "count", len(live))
		return nil
	})
}

func (j *PersistentJar) expired(c *http.Cookie) bool {
	if c.MaxAge < 0 {
		return true
	}
	return !c.Expires.IsZero() && !c.Expires.After(j.now())
}

// SetCookies implements http.CookieJar. Persistence failures are logged and
// do not affect the in-memory jar.
func (j *PersistentJar) SetCookies(u *url.URL, cs []*http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.inner.SetCookies(u, cs)
	if u.Hostname() != j.base.Hostname() || len(cs) == 0 {
		return
	}

	ctx := context.Background()
	err := dbx.WithTx(ctx, j.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := cookies.NewSQLiteRepository(tx)
		for _, c := range cs {
			if j.expired(c) {
				if err := repo.Delete(ctx, c.Name); err != nil {
					return err
				}
				continue
			}

			stored := *c
			if c.MaxAge > 0 {
				stored.Expires = j.now().Add(time.Duration(c.MaxAge) * time.Second)
				stored.MaxAge = 0
			}
			if err := repo.Upsert(ctx, &stored); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		j.log.Warn(ctx, "persist session cookies", "error", err)
	}
}

func (j *PersistentJar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.inner.Cookies(u)
}

// Reset forgets every cookie, in memory and on disk.
func (j *PersistentJar) Reset(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	inner, err := newInnerJar()
	if err != nil {
		return fmt.Errorf("create cookie jar: %w", err)
	}
	j.inner = inner

	return cookies.NewSQLiteRepository(j.db).Clear(ctx)
}
