package cookies

import (
	"context"
	"net/http"
)

type Repository interface {
	Upsert(ctx context.Context, c *http.Cookie) error
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]*http.Cookie, error)
	Clear(ctx context.Context) error
}
