package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/cinelog-go/apperror"
	"github.com/user/cinelog-go/config"
	"github.com/user/cinelog-go/models"
)

// UserStore is the slice of the user repository the auth service needs.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

var validate = validator.New()

// Service implements registration, login and token verification.
type Service struct {
	users UserStore
	cfg   config.AuthConfig
}

// NewService creates an auth Service.
func NewService(users UserStore, cfg config.AuthConfig) *Service {
	return &Service{users: users, cfg: cfg}
}

// Claims is the session token payload: just the user id plus the standard
// registered claims (expiry, issued-at).
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// RegisterResult carries the created user's id and a freshly signed session
// token back to the handler, which turns the token into a cookie.
type RegisterResult struct {
	UserID string
	Token  string
}

// LoginResult carries the authenticated user's identity and session token.
type LoginResult struct {
	UserID   string
	Username string
	Token    string
}

// Register creates a new user. It fails with a 400 if any field is missing
// or the email is already registered. The password is stored as a bcrypt
// hash; the plaintext never leaves this function.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	if err := validate.Struct(req); err != nil {
		return nil, apperror.NewValidationError("All fields are required", nil)
	}

	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to check existing user", err)
	}
	if existing != nil {
		return nil, apperror.NewBadRequestError("Email already in use.", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashed),
	})
	if err != nil {
		// A duplicate username trips the unique index here and surfaces as a
		// 500; only the email duplicate gets a friendly message.
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}

	token, err := s.signToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	return &RegisterResult{UserID: user.ID.Hex(), Token: token}, nil
}

// Login authenticates a user by username and password. Unknown username and
// wrong password produce the same generic failure so the two cases cannot be
// told apart from outside.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if err := validate.Struct(req); err != nil {
		return nil, apperror.NewValidationError("All fields are required", nil)
	}

	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}
	if user == nil {
		return nil, apperror.NewBadRequestError("Invalid credentials", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.NewBadRequestError("Invalid credentials", nil)
	}

	token, err := s.signToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		UserID:   user.ID.Hex(),
		Username: user.Username,
		Token:    token,
	}, nil
}

// VerifyToken decodes and validates a session token, returning its claims.
// Malformed, expired and tampered tokens all fail the same way.
func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, apperror.NewAuthError("Token is not valid", err)
	}
	if !token.Valid || claims.UserID == "" {
		return nil, apperror.NewAuthError("Token is not valid", nil)
	}
	return claims, nil
}

// signToken issues an HS256 session token for the given user id. Tokens are
// self-contained: there is no server-side session state and no refresh
// mechanism, so after expiry the user logs in again.
func (s *Service) signToken(userID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}
