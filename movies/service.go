package movies

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/user/cinelog-go/apperror"
	"github.com/user/cinelog-go/models"
	"github.com/user/cinelog-go/store"
)

// Store is the slice of the movie repository this service needs.
type Store interface {
	MoviesByUser(ctx context.Context, userID string) ([]models.Movie, error)
	AddMovie(ctx context.Context, userID string, movie models.Movie) ([]models.Movie, error)
	UpdateMovie(ctx context.Context, userID, movieID string, rating *float64, note *string) (*models.Movie, error)
	DeleteMovie(ctx context.Context, userID, movieID string) error
}

var validate = validator.New()

// Service applies the list-management rules on top of the repository.
type Service struct {
	movies Store
}

// NewService creates a movies Service.
func NewService(movies Store) *Service {
	return &Service{movies: movies}
}

// translate maps repository sentinels to user-facing errors.
func translate(err error, action string) error {
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return apperror.NewNotFoundError("User not found", nil)
	case errors.Is(err, store.ErrMovieNotFound):
		return apperror.NewNotFoundError("Movie not found", nil)
	default:
		return apperror.NewDatabaseError(action, err)
	}
}

// ListMovies returns the user's movie list unmodified.
func (s *Service) ListMovies(ctx context.Context, userID string) ([]models.Movie, error) {
	list, err := s.movies.MoviesByUser(ctx, userID)
	if err != nil {
		return nil, translate(err, "failed to list movies")
	}
	return list, nil
}

// AddMovie appends a movie to the list and returns the updated list. A new
// entry starts with a null rating and an empty note; nothing prevents the
// same catalog title being added twice.
func (s *Service) AddMovie(ctx context.Context, userID string, req AddMovieRequest) ([]models.Movie, error) {
	if err := validate.Struct(req); err != nil {
		return nil, apperror.NewValidationError("Missing required fields", nil)
	}

	list, err := s.movies.AddMovie(ctx, userID, models.Movie{
		MovieID:   req.MovieID,
		Title:     req.Title,
		Year:      req.Year,
		PosterURL: req.PosterURL,
	})
	if err != nil {
		return nil, translate(err, "failed to add movie")
	}
	return list, nil
}

// UpdateMovie applies a partial rating/note update to the movie with the
// given subdocument id and returns it as stored afterwards.
func (s *Service) UpdateMovie(ctx context.Context, userID, movieID string, req UpdateMovieRequest) (*models.Movie, error) {
	movie, err := s.movies.UpdateMovie(ctx, userID, movieID, req.Rating, req.Note)
	if err != nil {
		return nil, translate(err, "failed to update movie")
	}
	return movie, nil
}

// DeleteMovie removes the movie with the given subdocument id. Deleting an
// id that is already gone is a no-op, not an error.
func (s *Service) DeleteMovie(ctx context.Context, userID, movieID string) error {
	if err := s.movies.DeleteMovie(ctx, userID, movieID); err != nil {
		return translate(err, "failed to delete movie")
	}
	return nil
}
