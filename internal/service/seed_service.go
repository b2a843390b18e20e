package service

import (
	"context"
	"fmt"

	"github.com/luxtime/backend/internal/domain"
	"github.com/luxtime/backend/internal/repository"
	"github.com/rs/zerolog"
)

// SeedService populates the demo catalog and blog. Each collection is only
// seeded while empty, so repeated calls never duplicate content.
type SeedService struct {
	watches repository.WatchRepository
	posts   repository.BlogPostRepository
	logger  zerolog.Logger
}

func NewSeedService(
	watches repository.WatchRepository,
	posts repository.BlogPostRepository,
	logger zerolog.Logger,
) *SeedService {
	return &SeedService{watches: watches, posts: posts, logger: logger}
}

func (s *SeedService) Seed(ctx context.Context) (int, error) {
	inserted := 0

	watchCount, err := s.watches.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count watches: %w", err)
	}
	if watchCount == 0 {
		for _, w := range demoWatches() {
			if _, err := s.watches.Insert(ctx, &w); err != nil {
				return inserted, fmt.Errorf("failed to seed watch %q: %w", w.Slug, err)
			}
			inserted++
		}
	}

	postCount, err := s.posts.Count(ctx)
	if err != nil {
		return inserted, fmt.Errorf("failed to count posts: %w", err)
	}
	if postCount == 0 {
		for _, p := range demoPosts() {
			if _, err := s.posts.Insert(ctx, &p); err != nil {
				return inserted, fmt.Errorf("failed to seed post %q: %w", p.Slug, err)
			}
			inserted++
		}
	}

	s.logger.Info().Int("inserted", inserted).Msg("seed completed")
	return inserted, nil
}

func demoWatches() []domain.Watch {
	return []domain.Watch{
		{
			Name:        "Cosmograph Daytona",
			Brand:       "Rolex",
			Price:       14999.0,
			Description: "Iconic chronograph crafted in Oystersteel with Cerachrom bezel.",
			Image:       "https://images.unsplash.com/photo-1548171916-c0dea5c53030?q=80&w=1600&auto=format&fit=crop",
			Slug:        "cosmograph-daytona",
			InStock:     true,
		},
		{
			Name:        "Submariner Date",
			Brand:       "Rolex",
			Price:       12999.0,
			Description: "The archetype of the diver's watch with Oyster bracelet.",
			Image:       "https://images.unsplash.com/photo-1524805444758-089113d48a6d?q=80&w=1600&auto=format&fit=crop",
			Slug:        "submariner-date",
			InStock:     true,
		},
		{
			Name:        "GMT-Master II",
			Brand:       "Rolex",
			Price:       13999.0,
			Description: "Designed to show the time in two different time zones simultaneously.",
			Image:       "https://images.unsplash.com/photo-1594535182308-8ffb6d6b8a34?q=80&w=1600&auto=format&fit=crop",
			Slug:        "gmt-master-ii",
			InStock:     true,
		},
	}
}

func demoPosts() []domain.BlogPost {
	return []domain.BlogPost{
		{
			Title:      "The Art of Precision",
			Excerpt:    "Inside the craftsmanship that defines a legend.",
			Content:    "Precision is not an act, but a habit. Our timepieces embody decades of innovation and mastery.",
			CoverImage: "https://images.unsplash.com/photo-1490367532201-b9bc1dc483f6?q=80&w=1600&auto=format&fit=crop",
			Author:     "Editorial Team",
			Slug:       "the-art-of-precision",
		},
		{
			Title:      "Diving into Excellence",
			Excerpt:    "Why divers trust our iconic Submariner.",
			Content:    "From the depths of the ocean to the boardroom, a symbol of performance and style.",
			CoverImage: "https://images.unsplash.com/photo-1514890547357-a9ee0b733005?q=80&w=1600&auto=format&fit=crop",
			Author:     "Editorial Team",
			Slug:       "diving-into-excellence",
		},
	}
}
