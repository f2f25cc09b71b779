package users

import (
	"context"
	"errors"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/user/cinelog-go/apperror"
	"github.com/user/cinelog-go/models"
	"github.com/user/cinelog-go/store"
)

// UserStore is the slice of the user repository this service needs.
type UserStore interface {
	FindByIDOrUsername(ctx context.Context, identifier string) (*models.User, error)
	IsFollowing(ctx context.Context, currentUserID string, targetID primitive.ObjectID) (bool, error)
}

// MovieStore fetches a user's movie list.
type MovieStore interface {
	MoviesByUser(ctx context.Context, userID string) ([]models.Movie, error)
}

// Service builds profile views.
type Service struct {
	users  UserStore
	movies MovieStore
}

// NewService creates a users Service.
func NewService(users UserStore, movies MovieStore) *Service {
	return &Service{users: users, movies: movies}
}

// GetUserMoviesWithOwner resolves a profile by id or username and returns
// the owner's movies sorted by date added descending, along with whether the
// viewer follows them. One user's list is small enough that the sort happens
// application-side, unlike the cross-user feed.
func (s *Service) GetUserMoviesWithOwner(ctx context.Context, identifier, currentUserID string) (*UserMoviesResponse, error) {
	target, err := s.users.FindByIDOrUsername(ctx, identifier)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to resolve user", err)
	}
	if target == nil {
		return nil, apperror.NewNotFoundError("User not found", nil)
	}

	movies, err := s.movies.MoviesByUser(ctx, target.ID.Hex())
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, apperror.NewNotFoundError("User not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to load movies", err)
	}

	sorted := make([]models.Movie, len(movies))
	copy(sorted, movies)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DateAdded.After(sorted[j].DateAdded)
	})

	isFollowed, err := s.users.IsFollowing(ctx, currentUserID, target.ID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to check follow state", err)
	}

	return &UserMoviesResponse{
		Owner: Owner{
			ID:         target.ID.Hex(),
			Username:   target.Username,
			IsFollowed: isFollowed,
		},
		Movies: sorted,
	}, nil
}
