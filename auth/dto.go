// Package auth handles registration, login and session verification.
// This file defines the request and response payloads for the auth
// endpoints. The validate tags are enforced in the service layer; a missing
// field fails the whole request with a single generic message.
package auth

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Email    string `json:"email" validate:"required" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"strongpassword123"`
}

// LoginRequest is the login payload. Login is by username only.
type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Password string `json:"password" validate:"required" example:"strongpassword123"`
}

// SessionUser is the slice of the user returned to the client on login.
type SessionUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// RegisterResponse is the body of a successful registration. The session
// token itself travels in an HTTP-only cookie, never in the body.
type RegisterResponse struct {
	Message string `json:"message" example:"User registered successfully"`
	UserID  string `json:"userId"`
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	Message string      `json:"message" example:"Login successful"`
	User    SessionUser `json:"user"`
}

// MessageResponse is a bare confirmation body (logout).
type MessageResponse struct {
	Message string `json:"message" example:"Logged out"`
}
