package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/cinelog-go/apperror"
	"github.com/user/cinelog-go/auth"
)

// Handlers exposes profile views over HTTP.
type Handlers struct {
	service *Service
}

// NewHandlers creates the users Handlers.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// HandleGetUserMovies godoc
// @Summary Another user's movie list
// @Description Resolves the profile by id or username; movies sorted newest first.
// @Tags users
// @Produce json
// @Param identifier path string true "User id or username"
// @Success 200 {object} users.UserMoviesResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse "Unknown user"
// @Router /users/{identifier}/movies [get]
func (h *Handlers) HandleGetUserMovies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.GetUserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("No token, authorization denied", nil))
			return
		}

		resp, err := h.service.GetUserMoviesWithOwner(r.Context(), chi.URLParam(r, "identifier"), userID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, resp)
	}
}
