package repository

import (
	"context"

	"github.com/luxtime/backend/internal/domain"
	"go.mongodb.org/mongo-driver/mongo"
)

func NewWatchRepository(db *mongo.Database) WatchRepository {
	return &slugCollection[domain.Watch]{
		coll:     collectionOrNil(db, WatchCollection),
		notFound: ErrWatchNotFound,
	}
}

func NewBlogPostRepository(db *mongo.Database) BlogPostRepository {
	return &slugCollection[domain.BlogPost]{
		coll:     collectionOrNil(db, BlogPostCollection),
		notFound: ErrPostNotFound,
	}
}

type mongoOrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) OrderRepository {
	return &mongoOrderRepository{coll: collectionOrNil(db, OrderCollection)}
}

func (m *mongoOrderRepository) Create(ctx context.Context, o *domain.Order) (string, error) {
	if m.coll == nil {
		return "", ErrUnavailable
	}
	return insertOne(ctx, m.coll, o)
}
