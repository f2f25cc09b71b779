package movies

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/cinelog-go/apperror"
	"github.com/user/cinelog-go/auth"
)

// Handlers exposes the movies service over HTTP. All routes sit behind the
// session middleware; the user id always comes from the request context.
type Handlers struct {
	service *Service
}

// NewHandlers creates the movies Handlers.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes mounts the movie-list routes on the given router.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleListMovies())
	r.Post("/", h.HandleAddMovie())
	r.Put("/{id}", h.HandleUpdateMovie())
	r.Delete("/{id}", h.HandleDeleteMovie())
}

// HandleListMovies godoc
// @Summary List my movies
// @Description Returns the authenticated user's movie list as stored (no sort, no pagination).
// @Tags movies
// @Produce json
// @Success 200 {array} models.Movie
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /movies [get]
func (h *Handlers) HandleListMovies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.GetUserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("No token, authorization denied", nil))
			return
		}

		list, err := h.service.ListMovies(r.Context(), userID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, list)
	}
}

// HandleAddMovie godoc
// @Summary Add a movie to my list
// @Description Appends a catalog result to the list; rating starts null, note empty.
// @Tags movies
// @Accept json
// @Produce json
// @Param movieBody body movies.AddMovieRequest true "Movie to add"
// @Success 200 {array} models.Movie "Updated list"
// @Failure 400 {object} apperror.ErrorResponse "Missing required fields"
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /movies [post]
func (h *Handlers) HandleAddMovie() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.GetUserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("No token, authorization denied", nil))
			return
		}

		var req AddMovieRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		list, err := h.service.AddMovie(r.Context(), userID, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, list)
	}
}

// HandleUpdateMovie godoc
// @Summary Update rating or note
// @Description Partial update: absent fields are left untouched.
// @Tags movies
// @Accept json
// @Produce json
// @Param id path string true "Movie subdocument id"
// @Param updateBody body movies.UpdateMovieRequest true "Fields to update"
// @Success 200 {object} models.Movie
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse "Movie not found"
// @Router /movies/{id} [put]
func (h *Handlers) HandleUpdateMovie() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.GetUserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("No token, authorization denied", nil))
			return
		}

		var req UpdateMovieRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		movie, err := h.service.UpdateMovie(r.Context(), userID, chi.URLParam(r, "id"), req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, movie)
	}
}

// HandleDeleteMovie godoc
// @Summary Remove a movie from my list
// @Description Deleting an id that is already absent is a no-op.
// @Tags movies
// @Param id path string true "Movie subdocument id"
// @Success 204 "Removed"
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /movies/{id} [delete]
func (h *Handlers) HandleDeleteMovie() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.GetUserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("No token, authorization denied", nil))
			return
		}

		if err := h.service.DeleteMovie(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
			auth.WriteError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
