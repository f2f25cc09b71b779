package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Movie is a subdocument embedded in a user's movies array. Its identity
// within the list is the subdocument ID; movie_id references the external
// catalog entry and nothing prevents the same catalog title being added
// twice.
type Movie struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	MovieID   string             `bson:"movie_id" json:"movie_id"`
	Title     string             `bson:"title" json:"title"`
	Year      string             `bson:"year" json:"year"`
	PosterURL string             `bson:"poster_url" json:"poster_url"`
	DateAdded time.Time          `bson:"date_added" json:"date_added"`

	// Rating is nullable: a freshly added movie has no rating. The intended
	// range is 1-10 but the data layer does not enforce it.
	Rating *float64 `bson:"rating" json:"rating"`
	Note   string   `bson:"note" json:"note"`
}

// FeedItem pairs a movie with the followed user whose list it belongs to.
type FeedItem struct {
	Owner UserSummary `bson:"owner" json:"owner"`
	Movie Movie       `bson:"movie" json:"movie"`
}
