package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	WatchCollection    = "watch"
	BlogPostCollection = "blogpost"
	OrderCollection    = "order"
)

// slugCollection is the shared mongo implementation behind the catalog and
// blog repositories: documents of one type in one collection, looked up by
// exact slug match, listed in the store's natural order. A nil collection
// means the store was never configured and every call fails with
// ErrUnavailable.
type slugCollection[T any] struct {
	coll     *mongo.Collection
	notFound error
}

func (c *slugCollection[T]) List(ctx context.Context) ([]T, error) {
	if c.coll == nil {
		return nil, ErrUnavailable
	}

	cursor, err := c.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %w", err)
	}
	return docs, nil
}

func (c *slugCollection[T]) GetBySlug(ctx context.Context, slug string) (*T, error) {
	if c.coll == nil {
		return nil, ErrUnavailable
	}

	var doc T
	err := c.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, c.notFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return &doc, nil
}

func (c *slugCollection[T]) Insert(ctx context.Context, doc *T) (string, error) {
	if c.coll == nil {
		return "", ErrUnavailable
	}
	return insertOne(ctx, c.coll, doc)
}

func (c *slugCollection[T]) Count(ctx context.Context) (int64, error) {
	if c.coll == nil {
		return 0, ErrUnavailable
	}

	count, err := c.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return count, nil
}

func insertOne(ctx context.Context, coll *mongo.Collection, doc any) (string, error) {
	result, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert document: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return id.Hex(), nil
}

func collectionOrNil(db *mongo.Database, name string) *mongo.Collection {
	if db == nil {
		return nil
	}
	return db.Collection(name)
}
