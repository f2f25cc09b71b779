package follow

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/cinelog-go/apperror"
	"github.com/user/cinelog-go/auth"
)

// defaultSearchLimit caps search results when the client doesn't ask for a
// specific limit.
const defaultSearchLimit = 10

// Handlers exposes the follow service over HTTP.
type Handlers struct {
	service *Service
}

// NewHandlers creates the follow Handlers.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes mounts the follow routes on the given router.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/search/users", h.HandleSearchUsers())
	r.Post("/{target}", h.HandleFollow())
	r.Delete("/{target}", h.HandleUnfollow())
}

// HandleSearchUsers godoc
// @Summary Search users by username
// @Description Case-insensitive substring match; empty query returns an empty list.
// @Tags follow
// @Produce json
// @Param q query string false "Username fragment"
// @Param limit query int false "Maximum results" default(10)
// @Success 200 {array} models.UserSummary
// @Failure 401 {object} apperror.ErrorResponse
// @Router /follow/search/users [get]
func (h *Handlers) HandleSearchUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")

		limit := int64(defaultSearchLimit)
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
				limit = parsed
			}
		}

		results, err := h.service.SearchUsers(r.Context(), query, limit)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, results)
	}
}

// HandleFollow godoc
// @Summary Follow a user
// @Description Target may be a user id or a username. Idempotent.
// @Tags follow
// @Produce json
// @Param target path string true "Target user id or username"
// @Success 200 {object} follow.FollowResponse
// @Failure 400 {object} apperror.ErrorResponse "Self-follow"
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse "Unknown target"
// @Router /follow/{target} [post]
func (h *Handlers) HandleFollow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.GetUserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("No token, authorization denied", nil))
			return
		}

		resp, err := h.service.FollowUser(r.Context(), userID, chi.URLParam(r, "target"))
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleUnfollow godoc
// @Summary Unfollow a user
// @Description Idempotent removal of both sides of the relation.
// @Tags follow
// @Produce json
// @Param target path string true "Target user id or username"
// @Success 200 {object} follow.FollowResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse "Unknown target"
// @Router /follow/{target} [delete]
func (h *Handlers) HandleUnfollow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.GetUserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("No token, authorization denied", nil))
			return
		}

		resp, err := h.service.UnfollowUser(r.Context(), userID, chi.URLParam(r, "target"))
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, resp)
	}
}
