package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/user/cinelog-go/apperror"
	"github.com/user/cinelog-go/models"
	"github.com/user/cinelog-go/store"
)

type fakeUserStore struct {
	user      *models.User
	following bool
}

func (f *fakeUserStore) FindByIDOrUsername(_ context.Context, identifier string) (*models.User, error) {
	if f.user == nil {
		return nil, nil
	}
	if identifier == f.user.ID.Hex() || identifier == f.user.Username {
		return f.user, nil
	}
	return nil, nil
}

func (f *fakeUserStore) IsFollowing(_ context.Context, _ string, _ primitive.ObjectID) (bool, error) {
	return f.following, nil
}

type fakeMovieStore struct {
	movies []models.Movie
}

func (f *fakeMovieStore) MoviesByUser(_ context.Context, _ string) ([]models.Movie, error) {
	if f.movies == nil {
		return nil, store.ErrUserNotFound
	}
	return f.movies, nil
}

func movieAddedAt(title string, added time.Time) models.Movie {
	return models.Movie{ID: primitive.NewObjectID(), Title: title, DateAdded: added}
}

func TestGetUserMoviesSortsNewestFirst(t *testing.T) {
	owner := &models.User{ID: primitive.NewObjectID(), Username: "bob"}
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	stored := []models.Movie{
		movieAddedAt("oldest", base),
		movieAddedAt("newest", base.Add(48*time.Hour)),
		movieAddedAt("middle", base.Add(24*time.Hour)),
	}
	svc := NewService(&fakeUserStore{user: owner, following: true}, &fakeMovieStore{movies: stored})

	resp, err := svc.GetUserMoviesWithOwner(context.Background(), "bob", "viewer")
	require.NoError(t, err)

	require.Len(t, resp.Movies, 3)
	assert.Equal(t, "newest", resp.Movies[0].Title)
	assert.Equal(t, "middle", resp.Movies[1].Title)
	assert.Equal(t, "oldest", resp.Movies[2].Title)

	// The stored order is left untouched.
	assert.Equal(t, "oldest", stored[0].Title)

	assert.Equal(t, owner.ID.Hex(), resp.Owner.ID)
	assert.Equal(t, "bob", resp.Owner.Username)
	assert.True(t, resp.Owner.IsFollowed)
}

func TestGetUserMoviesNotFollowed(t *testing.T) {
	owner := &models.User{ID: primitive.NewObjectID(), Username: "bob"}
	svc := NewService(&fakeUserStore{user: owner}, &fakeMovieStore{movies: []models.Movie{}})

	resp, err := svc.GetUserMoviesWithOwner(context.Background(), owner.ID.Hex(), "viewer")
	require.NoError(t, err)
	assert.False(t, resp.Owner.IsFollowed)
	assert.Empty(t, resp.Movies)
}

func TestGetUserMoviesUnknownUser(t *testing.T) {
	svc := NewService(&fakeUserStore{}, &fakeMovieStore{})

	_, err := svc.GetUserMoviesWithOwner(context.Background(), "nobody", "viewer")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, "User not found", appErr.Message)
}
