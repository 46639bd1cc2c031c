// Package stores holds the per-resource state containers: thin
// cache-plus-fetch wrappers over the shared API client. Each operation
// performs exactly one request, updates the cache on success and records the
// error on failure; derived views are pure reads over the cached collection.
package stores

import (
	"context"
	"net/url"

	"github.com/luizavanter/guialmeidapersonal/internal/models"
)

// Doer is the slice of the API client the stores depend on.
type Doer interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	GetPage(ctx context.Context, path string, query url.Values, out any) (*models.PaginationMeta, error)
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}
