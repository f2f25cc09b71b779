package store

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/user/cinelog-go/models"
)

// UserRepository holds the queries touching user identity and the follow
// graph. Lookups that miss return (nil, nil); callers decide whether a
// missing user is an error.
type UserRepository struct {
	users *mongo.Collection
}

// NewUserRepository creates a UserRepository over the store's users collection.
func NewUserRepository(s *Store) *UserRepository {
	return &UserRepository{users: s.Collection(usersCollection)}
}

// CreateUser inserts a new user document with an empty movie list and empty
// follow sets, returning the stored document.
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	user.Movies = []models.Movie{}
	user.UsersFollowed = []primitive.ObjectID{}
	user.Followers = []primitive.ObjectID{}

	if _, err := r.users.InsertOne(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := r.users.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID returns the user with the given hex id, or nil when the id is
// malformed or matches nothing.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

// FindByEmail returns the user registered under the given email, or nil.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// FindByUsername returns the user with the given username, or nil.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

// FindByIDOrUsername resolves an identifier that may be either an ObjectID
// hex string or a username. The id form wins when both could match.
func (r *UserRepository) FindByIDOrUsername(ctx context.Context, identifier string) (*models.User, error) {
	if oid, err := primitive.ObjectIDFromHex(identifier); err == nil {
		user, err := r.findOne(ctx, bson.M{"_id": oid})
		if err != nil {
			return nil, err
		}
		if user != nil {
			return user, nil
		}
	}
	return r.findOne(ctx, bson.M{"username": identifier})
}

// SearchByUsername performs a case-insensitive substring match on usernames.
// The query is escaped so regex metacharacters match literally.
func (r *UserRepository) SearchByUsername(ctx context.Context, query string, limit int64) ([]models.UserSummary, error) {
	filter := bson.M{
		"username": primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"},
	}
	opts := options.Find().
		SetProjection(bson.M{"username": 1}).
		SetLimit(limit)

	cursor, err := r.users.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	results := []models.UserSummary{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *UserRepository) exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	err := r.users.FindOne(ctx, bson.M{"_id": id}, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// AddFollowing records current -> target in both directions. Each side is
// updated with $addToSet in its own write, so re-following is a no-op and a
// previously half-written relation heals here. The two writes are not
// transactional; a crash between them leaves a one-sided edge until the next
// toggle.
func (r *UserRepository) AddFollowing(ctx context.Context, currentUserID string, targetID primitive.ObjectID) error {
	currentID, err := primitive.ObjectIDFromHex(currentUserID)
	if err != nil {
		return ErrUserNotFound
	}

	for _, id := range []primitive.ObjectID{currentID, targetID} {
		ok, err := r.exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrUserNotFound
		}
	}

	if _, err := r.users.UpdateOne(ctx,
		bson.M{"_id": currentID},
		bson.M{"$addToSet": bson.M{"users_followed": targetID}},
	); err != nil {
		return err
	}

	_, err = r.users.UpdateOne(ctx,
		bson.M{"_id": targetID},
		bson.M{"$addToSet": bson.M{"followers": currentID}},
	)
	return err
}

// RemoveFollowing is the symmetric removal: both sides are $pull-ed
// independently, so removing an absent relation is a no-op.
func (r *UserRepository) RemoveFollowing(ctx context.Context, currentUserID string, targetID primitive.ObjectID) error {
	currentID, err := primitive.ObjectIDFromHex(currentUserID)
	if err != nil {
		return ErrUserNotFound
	}

	for _, id := range []primitive.ObjectID{currentID, targetID} {
		ok, err := r.exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrUserNotFound
		}
	}

	if _, err := r.users.UpdateOne(ctx,
		bson.M{"_id": currentID},
		bson.M{"$pull": bson.M{"users_followed": targetID}},
	); err != nil {
		return err
	}

	_, err = r.users.UpdateOne(ctx,
		bson.M{"_id": targetID},
		bson.M{"$pull": bson.M{"followers": currentID}},
	)
	return err
}

// FollowedIDs returns the ids of the users the given user follows. A missing
// user yields an empty list rather than an error.
func (r *UserRepository) FollowedIDs(ctx context.Context, userID string) ([]primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return []primitive.ObjectID{}, nil
	}

	var user models.User
	err = r.users.FindOne(ctx, bson.M{"_id": oid},
		options.FindOne().SetProjection(bson.M{"users_followed": 1}),
	).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return []primitive.ObjectID{}, nil
	}
	if err != nil {
		return nil, err
	}
	if user.UsersFollowed == nil {
		return []primitive.ObjectID{}, nil
	}
	return user.UsersFollowed, nil
}

// IsFollowing reports whether current follows target, judged from the
// current user's side of the relation.
func (r *UserRepository) IsFollowing(ctx context.Context, currentUserID string, targetID primitive.ObjectID) (bool, error) {
	followed, err := r.FollowedIDs(ctx, currentUserID)
	if err != nil {
		return false, err
	}
	for _, id := range followed {
		if id == targetID {
			return true, nil
		}
	}
	return false, nil
}
