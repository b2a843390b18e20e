package service

import (
	"context"
	"errors"

	"github.com/luxtime/backend/internal/cache"
	"github.com/luxtime/backend/internal/domain"
	"github.com/luxtime/backend/internal/repository"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// CatalogService serves the two read-only collections. Watches and posts
// share the same access pattern: list everything in store order, or look a
// single record up by exact slug. Slug lookups go through an optional
// read-through cache with singleflight to suppress stampedes on a miss.
type CatalogService struct {
	watches repository.WatchRepository
	posts   repository.BlogPostRepository
	cache   cache.CatalogCache // nil when REDIS_ADDR is unset
	logger  zerolog.Logger
	sfg     singleflight.Group
}

func NewCatalogService(
	watches repository.WatchRepository,
	posts repository.BlogPostRepository,
	catalogCache cache.CatalogCache,
	logger zerolog.Logger,
) *CatalogService {
	return &CatalogService{
		watches: watches,
		posts:   posts,
		cache:   catalogCache,
		logger:  logger,
	}
}

func (s *CatalogService) ListWatches(ctx context.Context) ([]domain.Watch, error) {
	return s.watches.List(ctx)
}

func (s *CatalogService) ListPosts(ctx context.Context) ([]domain.BlogPost, error) {
	return s.posts.List(ctx)
}

func (s *CatalogService) GetWatch(ctx context.Context, slug string) (*domain.Watch, error) {
	v, err, _ := s.sfg.Do("watch:"+slug, func() (interface{}, error) {
		if s.cache != nil {
			w, err := s.cache.GetWatch(ctx, slug)
			if err == nil {
				return w, nil
			}
			if !errors.Is(err, cache.ErrCacheMiss) {
				s.logger.Warn().Err(err).Str("slug", slug).Msg("cache get failed")
			}
		}

		w, err := s.watches.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}

		if s.cache != nil {
			go func() {
				if err := s.cache.SetWatch(context.Background(), slug, w); err != nil {
					s.logger.Warn().Err(err).Str("slug", slug).Msg("cache set failed")
				}
			}()
		}
		return w, nil
	})

	if err != nil {
		return nil, err
	}
	return v.(*domain.Watch), nil
}

func (s *CatalogService) GetPost(ctx context.Context, slug string) (*domain.BlogPost, error) {
	v, err, _ := s.sfg.Do("post:"+slug, func() (interface{}, error) {
		if s.cache != nil {
			p, err := s.cache.GetPost(ctx, slug)
			if err == nil {
				return p, nil
			}
			if !errors.Is(err, cache.ErrCacheMiss) {
				s.logger.Warn().Err(err).Str("slug", slug).Msg("cache get failed")
			}
		}

		p, err := s.posts.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}

		if s.cache != nil {
			go func() {
				if err := s.cache.SetPost(context.Background(), slug, p); err != nil {
					s.logger.Warn().Err(err).Str("slug", slug).Msg("cache set failed")
				}
			}()
		}
		return p, nil
	})

	if err != nil {
		return nil, err
	}
	return v.(*domain.BlogPost), nil
}
