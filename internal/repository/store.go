package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store wraps the process-wide database handle for the diagnostics
// endpoint. The inner db may be nil when DATABASE_URL was never set or the
// startup connection failed; Store methods report that instead of panicking.
type Store struct {
	db *mongo.Database
}

func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

func (s *Store) Configured() bool {
	return s != nil && s.db != nil
}

func (s *Store) Database() *mongo.Database {
	if s == nil {
		return nil
	}
	return s.db
}

func (s *Store) Ping(ctx context.Context) error {
	if !s.Configured() {
		return ErrUnavailable
	}
	return s.db.Client().Ping(ctx, nil)
}

func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	if !s.Configured() {
		return nil, ErrUnavailable
	}
	return s.db.ListCollectionNames(ctx, bson.M{})
}
