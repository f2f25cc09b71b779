package auth

import (
	"encoding/json"
	"net/http"

	"github.com/user/cinelog-go/apperror"
	"github.com/user/cinelog-go/config"
)

// sessionMaxAge is the cookie lifetime in seconds, matching the 7-day token
// expiry.
const sessionMaxAge = 7 * 24 * 60 * 60

// Handlers exposes the auth service over HTTP and owns the session cookie.
type Handlers struct {
	service *Service
	server  *config.ServerConfig
}

// NewHandlers creates the auth Handlers.
func NewHandlers(service *Service, server *config.ServerConfig) *Handlers {
	return &Handlers{service: service, server: server}
}

// sessionCookie builds the session cookie. In production the cookie is
// Secure with SameSite=None so browsers send it on cross-site API calls;
// in development it stays Lax over plain HTTP. A negative maxAge clears the
// cookie (Max-Age=0 on the wire).
func (h *Handlers) sessionCookie(token string, maxAge int) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if h.server.IsProduction() {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.server.IsProduction(),
		SameSite: sameSite,
	}
}

// HandleRegister godoc
// @Summary Register a new user
// @Description Creates an account and starts a session via an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerBody body auth.RegisterRequest true "Registration details"
// @Success 201 {object} auth.RegisterResponse
// @Failure 400 {object} apperror.ErrorResponse "Missing fields or email already in use"
// @Failure 500 {object} apperror.ErrorResponse
// @Router /auth/register [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		result, err := h.service.Register(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		http.SetCookie(w, h.sessionCookie(result.Token, sessionMaxAge))
		WriteJSON(w, http.StatusCreated, RegisterResponse{
			Message: "User registered successfully",
			UserID:  result.UserID,
		})
	}
}

// HandleLogin godoc
// @Summary Log in
// @Description Authenticates by username and password; sets the session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "Login credentials"
// @Success 200 {object} auth.LoginResponse
// @Failure 400 {object} apperror.ErrorResponse "Missing fields or invalid credentials"
// @Failure 500 {object} apperror.ErrorResponse
// @Router /auth/login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		result, err := h.service.Login(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		http.SetCookie(w, h.sessionCookie(result.Token, sessionMaxAge))
		WriteJSON(w, http.StatusOK, LoginResponse{
			Message: "Login successful",
			User:    SessionUser{ID: result.UserID, Username: result.Username},
		})
	}
}

// HandleLogout godoc
// @Summary Log out
// @Description Clears the session cookie. Tokens are stateless and carry no
// revocation list, so a previously issued token stays valid until its
// natural expiry; logout only removes it from the browser.
// @Tags auth
// @Produce json
// @Success 200 {object} auth.MessageResponse
// @Router /auth/logout [post]
func (h *Handlers) HandleLogout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, h.sessionCookie("", -1))
		WriteJSON(w, http.StatusOK, MessageResponse{Message: "Logged out"})
	}
}
