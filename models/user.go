// Package models defines the documents stored in MongoDB. The whole system
// lives in a single users collection: movies are embedded subdocuments on the
// owning user, and the follow graph is a pair of mutually-inverse ObjectID
// arrays (if A follows B, A appears in B's followers and B in A's
// users_followed).
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is one document in the users collection.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`

	// Movies is the user's personal watched list, embedded on the document.
	Movies []Movie `bson:"movies" json:"movies"`

	// UsersFollowed and Followers are maintained as mutual inverses across
	// two documents by two sequential writes; a crash between them leaves a
	// one-sided relation that self-heals on the next follow/unfollow.
	UsersFollowed []primitive.ObjectID `bson:"users_followed" json:"users_followed"`
	Followers     []primitive.ObjectID `bson:"followers" json:"followers"`
}

// UserSummary is the public projection of a user used in search results and
// feed items.
type UserSummary struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Username string             `bson:"username" json:"username"`
}
