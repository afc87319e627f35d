package v1

import (
	"time"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/accounts"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// CredentialsRequest is the body of signup and login requests
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToDomain converts the request into domain credentials
func (r *CredentialsRequest) ToDomain() *accounts.Credentials {
	return &accounts.Credentials{Email: r.Email, Password: r.Password}
}

// UserResponse is the public view of an account
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthResponse is returned after a successful signup or login
type AuthResponse struct {
	User    UserResponse    `json:"user"`
	Session *accounts.Token `json:"session"`
}

// NewAuthResponse builds an AuthResponse
func NewAuthResponse(account *accounts.Account, token *accounts.Token) AuthResponse {
	return AuthResponse{
		User:    UserResponse{ID: account.ID, Email: account.Email},
		Session: token,
	}
}

// HealthResponse reports whether the service and its database are up
type HealthResponse struct {
	Status            string    `json:"status"`
	Message           string    `json:"message"`
	Timestamp         time.Time `json:"timestamp"`
	DatabaseConnected bool      `json:"database_connected"`
}

// PingResponse is the body of /ping
type PingResponse struct {
	Message string `json:"message"`
}
