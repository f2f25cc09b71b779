// Package movies manages a user's personal watched list: the embedded movie
// array on their document. Listing returns the array as stored; sorting and
// view modes are a client-side concern.
package movies

// AddMovieRequest is the payload for adding a catalog search result to the
// list. movie_id and title are required; year and poster are whatever the
// catalog had.
type AddMovieRequest struct {
	MovieID   string `json:"movie_id" validate:"required" example:"tt0113277"`
	Title     string `json:"title" validate:"required" example:"Heat"`
	Year      string `json:"year" example:"1995"`
	PosterURL string `json:"poster_url" example:"https://image.example/heat.jpg"`
}

// UpdateMovieRequest is the partial-update payload for rating and note.
// Pointer fields distinguish "absent" from "set to zero value": an absent
// field is left untouched, not cleared.
type UpdateMovieRequest struct {
	Rating *float64 `json:"rating,omitempty" example:"8"`
	Note   *string  `json:"note,omitempty" example:"Rewatched with friends"`
}
