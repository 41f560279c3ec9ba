package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nabeelsyed11/Kimia-Reality/utils"
)

// PlaceholderImage is used when a blog is created without a featured image.
const PlaceholderImage = "/placeholder-blog.jpg"

// SuggestedCategories is the category set offered by the admin form. It is a
// suggestion only; any free-text label is accepted.
var SuggestedCategories = []string{
	"Real Estate Tips",
	"Market Trends",
	"Investment",
	"Home Improvement",
	"Buying Guide",
	"Selling Guide",
	"News",
}

type Author struct {
	Name   string `bson:"name" json:"name" validate:"required"`
	Avatar string `bson:"avatar,omitempty" json:"avatar,omitempty"`
}

type Blog struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title" validate:"required,max=200"`
	Slug          string             `bson:"slug" json:"slug" validate:"required"`
	Excerpt       string             `bson:"excerpt" json:"excerpt" validate:"required,max=500"`
	Content       string             `bson:"content" json:"content" validate:"required"`
	Author        Author             `bson:"author" json:"author"`
	Category      string             `bson:"category" json:"category" validate:"required"`
	Tags          []string           `bson:"tags" json:"tags"`
	FeaturedImage string             `bson:"featuredImage" json:"featuredImage" validate:"required"`
	Published     bool               `bson:"published" json:"published"`
	Views         int                `bson:"views" json:"views"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SetDefaults fills schema defaults: the slug is derived from the title when
// absent, and a missing featured image falls back to the placeholder.
func (b *Blog) SetDefaults() {
	if b.Slug == "" {
		b.Slug = utils.Slugify(b.Title)
	}
	if b.FeaturedImage == "" {
		b.FeaturedImage = PlaceholderImage
	}
}
