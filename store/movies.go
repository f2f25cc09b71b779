package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/user/cinelog-go/models"
)

// MovieRepository holds the queries touching the embedded movie lists and
// the feed aggregation.
type MovieRepository struct {
	users *mongo.Collection
}

// NewMovieRepository creates a MovieRepository over the store's users collection.
func NewMovieRepository(s *Store) *MovieRepository {
	return &MovieRepository{users: s.Collection(usersCollection)}
}

// MoviesByUser returns the user's embedded movie array unmodified: no
// pagination, no server-side sort.
func (r *MovieRepository) MoviesByUser(ctx context.Context, userID string) ([]models.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	var user models.User
	err = r.users.FindOne(ctx, bson.M{"_id": oid},
		options.FindOne().SetProjection(bson.M{"movies": 1}),
	).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if user.Movies == nil {
		return []models.Movie{}, nil
	}
	return user.Movies, nil
}

// AddMovie appends a new movie to the user's list and returns the updated
// list. The subdocument gets its own id and timestamp here; rating starts
// null and the note empty. No de-duplication: adding the same catalog title
// twice yields two entries.
func (r *MovieRepository) AddMovie(ctx context.Context, userID string, movie models.Movie) ([]models.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	movie.ID = primitive.NewObjectID()
	movie.DateAdded = time.Now().UTC()
	movie.Rating = nil
	movie.Note = ""

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"movies": 1})

	var user models.User
	err = r.users.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$push": bson.M{"movies": movie}},
		opts,
	).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user.Movies, nil
}

// UpdateMovie applies a partial update to one movie in the user's list.
// Only non-nil fields are written; an absent field is left untouched, not
// cleared. Returns the movie as stored after the update.
func (r *MovieRepository) UpdateMovie(ctx context.Context, userID, movieID string, rating *float64, note *string) (*models.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	mid, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		// A malformed subdocument id can never match a stored movie.
		if missing, lookupErr := r.userMissing(ctx, oid); lookupErr != nil {
			return nil, lookupErr
		} else if missing {
			return nil, ErrUserNotFound
		}
		return nil, ErrMovieNotFound
	}

	set := bson.M{}
	if rating != nil {
		set["movies.$.rating"] = *rating
	}
	if note != nil {
		set["movies.$.note"] = *note
	}

	filter := bson.M{"_id": oid, "movies._id": mid}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"movies": 1})

	var user models.User
	if len(set) == 0 {
		// Nothing to write; read the current state instead.
		err = r.users.FindOne(ctx, filter,
			options.FindOne().SetProjection(bson.M{"movies": 1}),
		).Decode(&user)
	} else {
		err = r.users.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&user)
	}
	if err == mongo.ErrNoDocuments {
		if missing, lookupErr := r.userMissing(ctx, oid); lookupErr != nil {
			return nil, lookupErr
		} else if missing {
			return nil, ErrUserNotFound
		}
		return nil, ErrMovieNotFound
	}
	if err != nil {
		return nil, err
	}

	for i := range user.Movies {
		if user.Movies[i].ID == mid {
			return &user.Movies[i], nil
		}
	}
	return nil, ErrMovieNotFound
}

func (r *MovieRepository) userMissing(ctx context.Context, id primitive.ObjectID) (bool, error) {
	err := r.users.FindOne(ctx, bson.M{"_id": id},
		options.FindOne().SetProjection(bson.M{"_id": 1}),
	).Err()
	if err == mongo.ErrNoDocuments {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}

// DeleteMovie removes a movie by filtering it out of the embedded array.
// Deleting an id that is already absent (or malformed) is a no-op, not an
// error.
func (r *MovieRepository) DeleteMovie(ctx context.Context, userID, movieID string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrUserNotFound
	}

	mid, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		// Nothing stored can match a malformed id; still require the user.
		if missing, lookupErr := r.userMissing(ctx, oid); lookupErr != nil {
			return lookupErr
		} else if missing {
			return ErrUserNotFound
		}
		return nil
	}

	res, err := r.users.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$pull": bson.M{"movies": bson.M{"_id": mid}}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Feed flattens the followed users' embedded movie lists into (owner, movie)
// pairs sorted by date added, newest first, truncated to limit. The whole
// operation runs store-side as one aggregation pipeline, so large lists are
// never shipped to the application just to be sorted. Tie-break on equal
// timestamps is whatever order the sort yields.
func (r *MovieRepository) Feed(ctx context.Context, followedIDs []primitive.ObjectID, limit int64) ([]models.FeedItem, error) {
	if len(followedIDs) == 0 {
		return []models.FeedItem{}, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": bson.M{"$in": followedIDs}}}},
		{{Key: "$project", Value: bson.M{"username": 1, "movies": 1}}},
		{{Key: "$unwind", Value: "$movies"}},
		{{Key: "$replaceRoot", Value: bson.M{"newRoot": bson.M{
			"owner": bson.M{"_id": "$_id", "username": "$username"},
			"movie": "$movies",
		}}}},
		{{Key: "$sort", Value: bson.M{"movie.date_added": -1}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.users.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.FeedItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
