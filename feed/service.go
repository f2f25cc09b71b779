// Package feed assembles the activity feed: the recently added movies of
// everyone the requesting user follows, newest first. The heavy lifting is a
// single store-side aggregation; this service only decides who to ask about
// and how much to return.
package feed

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/user/cinelog-go/apperror"
	"github.com/user/cinelog-go/models"
)

// DefaultLimit is used when the client doesn't request a feed size.
const DefaultLimit = 20

// MaxLimit caps the feed size regardless of what the client asks for.
const MaxLimit = 100

// FollowStore resolves who the requesting user follows.
type FollowStore interface {
	FollowedIDs(ctx context.Context, userID string) ([]primitive.ObjectID, error)
}

// MovieStore runs the feed aggregation over the followed users.
type MovieStore interface {
	Feed(ctx context.Context, followedIDs []primitive.ObjectID, limit int64) ([]models.FeedItem, error)
}

// Service builds feeds.
type Service struct {
	users  FollowStore
	movies MovieStore
}

// NewService creates a feed Service.
func NewService(users FollowStore, movies MovieStore) *Service {
	return &Service{users: users, movies: movies}
}

// GetFeed returns up to min(limit, MaxLimit) (owner, movie) pairs across the
// users the requester follows, sorted by date added descending. A user who
// follows nobody gets an empty feed without a query being issued. The
// requester's own movies never appear: the aggregation only sees followed
// ids, and self-follow is forbidden upstream.
func (s *Service) GetFeed(ctx context.Context, currentUserID string, limit int64) ([]models.FeedItem, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	followedIDs, err := s.users.FollowedIDs(ctx, currentUserID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to load followed users", err)
	}
	if len(followedIDs) == 0 {
		return []models.FeedItem{}, nil
	}

	items, err := s.movies.Feed(ctx, followedIDs, limit)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to build feed", err)
	}
	return items, nil
}
