package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/cinelog-go/config"
)

func newTestHandlers(env string) (*Handlers, *fakeUserStore) {
	store := &fakeUserStore{}
	svc := NewService(store, testAuthConfig())
	return NewHandlers(svc, &config.ServerConfig{Port: "5000", Env: env}), store
}

func findSessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	t.Fatalf("no %q cookie in response", SessionCookieName)
	return nil
}

func TestHandleRegisterSetsCookie(t *testing.T) {
	h, _ := newTestHandlers("development")

	body := `{"username":"alice","email":"alice@example.com","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleRegister()(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp RegisterResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "User registered successfully", resp.Message)
	assert.NotEmpty(t, resp.UserID)

	cookie := findSessionCookie(t, rec)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, sessionMaxAge, cookie.MaxAge)
}

func TestHandleRegisterProductionCookie(t *testing.T) {
	h, _ := newTestHandlers("production")

	body := `{"username":"alice","email":"alice@example.com","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleRegister()(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	cookie := findSessionCookie(t, rec)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
}

func TestHandleRegisterMissingFields(t *testing.T) {
	h, _ := newTestHandlers("development")

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"username":"alice"}`))
	rec := httptest.NewRecorder()
	h.HandleRegister()(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "All fields are required", decodeError(t, rec))
	assert.Empty(t, rec.Result().Cookies())
}

func TestHandleLoginInvalidCredentials(t *testing.T) {
	h, _ := newTestHandlers("development")

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"nobody","password":"x"}`))
	rec := httptest.NewRecorder()
	h.HandleLogin()(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid credentials", decodeError(t, rec))
}

func TestHandleLoginSuccess(t *testing.T) {
	h, _ := newTestHandlers("development")

	reg := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"username":"alice","email":"alice@example.com","password":"hunter22"}`))
	regRec := httptest.NewRecorder()
	h.HandleRegister()(regRec, reg)
	require.Equal(t, http.StatusCreated, regRec.Code)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"username":"alice","password":"hunter22"}`))
	rec := httptest.NewRecorder()
	h.HandleLogin()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, "alice", resp.User.Username)
	assert.NotEmpty(t, resp.User.ID)

	cookie := findSessionCookie(t, rec)
	assert.NotEmpty(t, cookie.Value)
}

func TestHandleLogoutClearsCookie(t *testing.T) {
	h, _ := newTestHandlers("development")

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	h.HandleLogout()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Logged out", resp.Message)

	cookie := findSessionCookie(t, rec)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestHandleRegisterBadBody(t *testing.T) {
	h, _ := newTestHandlers("development")

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.HandleRegister()(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
