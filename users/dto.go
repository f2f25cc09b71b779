// Package users serves public profile views: another user's movie list
// together with who they are and whether the viewer already follows them.
package users

import "github.com/user/cinelog-go/models"

// Owner describes the list's owner from the viewer's perspective.
type Owner struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	IsFollowed bool   `json:"is_followed"`
}

// UserMoviesResponse is the profile payload: the owner plus their movies
// sorted by date added, newest first.
type UserMoviesResponse struct {
	Owner  Owner          `json:"owner"`
	Movies []models.Movie `json:"movies"`
}
