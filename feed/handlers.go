package feed

import (
	"net/http"
	"strconv"

	"github.com/user/cinelog-go/apperror"
	"github.com/user/cinelog-go/auth"
)

// Handlers exposes the feed service over HTTP.
type Handlers struct {
	service *Service
}

// NewHandlers creates the feed Handlers.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// HandleGetFeed godoc
// @Summary Activity feed
// @Description Recently added movies of followed users, newest first.
// @Tags feed
// @Produce json
// @Param limit query int false "Maximum items, capped at 100" default(20)
// @Success 200 {array} models.FeedItem
// @Failure 401 {object} apperror.ErrorResponse
// @Router /feed [get]
func (h *Handlers) HandleGetFeed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.GetUserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("No token, authorization denied", nil))
			return
		}

		limit := int64(DefaultLimit)
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil {
				limit = parsed
			}
		}

		items, err := h.service.GetFeed(r.Context(), userID, limit)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, items)
	}
}
