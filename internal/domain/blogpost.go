package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// BlogPost is an editorial article in the "blogpost" collection. Same
// lifecycle as Watch: seed-created, read-only, looked up by slug.
type BlogPost struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Title      string             `bson:"title" json:"title"`
	Excerpt    string             `bson:"excerpt" json:"excerpt"`
	Content    string             `bson:"content" json:"content"`
	CoverImage string             `bson:"cover_image" json:"cover_image"`
	Author     string             `bson:"author" json:"author"`
	Slug       string             `bson:"slug" json:"slug"`
}

func (p *BlogPost) Validate() error {
	if p.Title == "" {
		return invalid("title", "is required")
	}
	if p.Excerpt == "" {
		return invalid("excerpt", "is required")
	}
	if p.Content == "" {
		return invalid("content", "is required")
	}
	if p.CoverImage == "" {
		return invalid("cover_image", "is required")
	}
	if p.Author == "" {
		return invalid("author", "is required")
	}
	if p.Slug == "" {
		return invalid("slug", "is required")
	}
	return nil
}
