package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/cinelog-go/apperror"
	"github.com/user/cinelog-go/config"
	"github.com/user/cinelog-go/models"
)

// fakeUserStore is an in-memory UserStore keyed by email and username.
type fakeUserStore struct {
	users []*models.User
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *models.User) (*models.User, error) {
	created := *user
	created.ID = primitive.NewObjectID()
	created.CreatedAt = time.Now().UTC()
	f.users = append(f.users, &created)
	return &created, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:     "test-secret",
		TokenDuration: time.Hour,
	}
}

func TestRegisterMissingFields(t *testing.T) {
	svc := NewService(&fakeUserStore{}, testAuthConfig())

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		// no password
	})
	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))

	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, "All fields are required", appErr.Message)
	assert.Equal(t, 400, appErr.StatusCode())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewService(store, testAuthConfig())

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), RegisterRequest{
		Username: "alice2", Email: "alice@example.com", Password: "hunter22",
	})
	require.Error(t, err)

	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, "Email already in use.", appErr.Message)
	assert.Equal(t, 400, appErr.StatusCode())
	assert.Len(t, store.users, 1)
}

func TestRegisterHashesPasswordAndSignsToken(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewService(store, testAuthConfig())

	result, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "hunter22",
	})
	require.NoError(t, err)
	require.Len(t, store.users, 1)

	created := store.users[0]
	assert.Equal(t, created.ID.Hex(), result.UserID)
	assert.NotEqual(t, "hunter22", created.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("hunter22")))

	claims, err := svc.VerifyToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.UserID, claims.UserID)
}

func TestLoginSuccess(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewService(store, testAuthConfig())

	reg, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, reg.UserID, result.UserID)
	assert.Equal(t, "alice", result.Username)

	claims, err := svc.VerifyToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.UserID, claims.UserID)
}

// Unknown username and wrong password must be indistinguishable from the
// outside: same status, same message.
func TestLoginInvalidCredentials(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewService(store, testAuthConfig())

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	for name, req := range map[string]LoginRequest{
		"unknown username": {Username: "nobody", Password: "hunter22"},
		"wrong password":   {Username: "alice", Password: "wrong"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), req)
			require.Error(t, err)

			appErr, ok := apperror.FromError(err)
			require.True(t, ok)
			assert.Equal(t, "Invalid credentials", appErr.Message)
			assert.Equal(t, 400, appErr.StatusCode())
		})
	}
}

func TestLoginMissingFields(t *testing.T) {
	svc := NewService(&fakeUserStore{}, testAuthConfig())

	_, err := svc.Login(context.Background(), LoginRequest{Username: "alice"})
	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))
}

func TestVerifyTokenRejectsTampered(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewService(store, testAuthConfig())

	reg, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = svc.VerifyToken(reg.Token + "x")
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))

	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, "Token is not valid", appErr.Message)
	assert.Equal(t, 401, appErr.StatusCode())
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	store := &fakeUserStore{}
	expired := NewService(store, config.AuthConfig{
		JWTSecret:     "test-secret",
		TokenDuration: -time.Hour,
	})

	reg, err := expired.Register(context.Background(), RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = expired.VerifyToken(reg.Token)
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewService(store, testAuthConfig())

	reg, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	other := NewService(store, config.AuthConfig{JWTSecret: "other-secret", TokenDuration: time.Hour})
	_, err = other.VerifyToken(reg.Token)
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	svc := NewService(&fakeUserStore{}, testAuthConfig())

	_, err := svc.VerifyToken("not-a-jwt")
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))
}
