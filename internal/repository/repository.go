package repository

import (
	"context"
	"errors"

	"github.com/luxtime/backend/internal/domain"
)

var (
	ErrWatchNotFound = errors.New("watch not found")
	ErrPostNotFound  = errors.New("post not found")

	// ErrUnavailable is returned by every operation when the store was
	// never configured or could not be reached at startup. Callers treat
	// it as a hard precondition failure; there is no retry.
	ErrUnavailable = errors.New("database not configured")
)

// Per-entity repository interfaces. Consumers define these, not the
// MongoDB implementation.

type WatchRepository interface {
	List(ctx context.Context) ([]domain.Watch, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Watch, error)
	Insert(ctx context.Context, w *domain.Watch) (string, error)
	Count(ctx context.Context) (int64, error)
}

type BlogPostRepository interface {
	List(ctx context.Context) ([]domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	Insert(ctx context.Context, p *domain.BlogPost) (string, error)
	Count(ctx context.Context) (int64, error)
}

type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (string, error)
}
