package cache

import (
	"context"
	"errors"

	"github.com/luxtime/backend/internal/domain"
)

// CatalogCache holds slug lookups for the read-only catalog and blog
// collections. Seed data never changes after insert, so entries only ever
// expire, never invalidate.
type CatalogCache interface {
	GetWatch(ctx context.Context, slug string) (*domain.Watch, error)
	SetWatch(ctx context.Context, slug string, w *domain.Watch) error
	GetPost(ctx context.Context, slug string) (*domain.BlogPost, error)
	SetPost(ctx context.Context, slug string, p *domain.BlogPost) error
}

var ErrCacheMiss = errors.New("cache miss")
