package auth

import (
	"context"
	"net/http"

	"github.com/user/cinelog-go/apperror"
)

// contextKey is a private type for context keys so other packages cannot
// collide with ours.
type contextKey string

const userIDKey contextKey = "userID"

// SessionCookieName is the cookie carrying the session token. The token is
// opaque to the client: HTTP-only, so scripts never see it.
const SessionCookieName = "token"

// Middleware authenticates a request from its session cookie and stores the
// user id in the request context. Every failure mode is a uniform 401: a
// missing cookie and an invalid token differ only in message, never in
// status.
func Middleware(svc *Service) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				WriteError(w, r, apperror.NewAuthError("No token, authorization denied", nil))
				return
			}

			claims, err := svc.VerifyToken(cookie.Value)
			if err != nil {
				WriteError(w, r, apperror.NewAuthError("Token is not valid", err))
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext retrieves the authenticated user's id set by
// Middleware. The second return value is false when the request never passed
// through the middleware.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
