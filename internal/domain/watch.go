package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

const DefaultBrand = "Rolex"

// Watch is a catalog entry. Stored in the "watch" collection; created only
// by seeding, never mutated. The store-assigned id is kept for bson round
// trips but never serialized to JSON, so callers only ever see the slug.
type Watch struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name        string             `bson:"name" json:"name"`
	Brand       string             `bson:"brand" json:"brand"`
	Price       float64            `bson:"price" json:"price"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image" json:"image"`
	Slug        string             `bson:"slug" json:"slug"`
	InStock     bool               `bson:"in_stock" json:"in_stock"`
}

// Normalize applies schema defaults to fields left empty by the caller.
func (w *Watch) Normalize() {
	if w.Brand == "" {
		w.Brand = DefaultBrand
	}
}

func (w *Watch) Validate() error {
	if w.Name == "" {
		return invalid("name", "is required")
	}
	if w.Price < 0 {
		return invalid("price", "must be non-negative")
	}
	if w.Description == "" {
		return invalid("description", "is required")
	}
	if w.Image == "" {
		return invalid("image", "is required")
	}
	if w.Slug == "" {
		return invalid("slug", "is required")
	}
	return nil
}
