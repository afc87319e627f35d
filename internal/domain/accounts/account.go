// Package accounts holds local user accounts and the token contracts used to authenticate requests.
package accounts

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// RoleAuthenticated is the role claim carried by every user token
const RoleAuthenticated = "authenticated"

// Account entity
type Account struct {
	ID           string    `json:"id" validate:"required,uuid4"`
	Email        string    `json:"email" validate:"required,email,max=254"`
	PasswordHash string    `json:"-" validate:"required"`
	CreatedAt    time.Time `json:"created_at" validate:"required"`
}

// Validate for validating Account struct
func (a *Account) Validate() error {
	return validateStruct(a)
}

// MaxPasswordBytes is the longest password bcrypt accepts
const MaxPasswordBytes = 72

// Credentials are submitted on signup and login
type Credentials struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// Normalize lower-cases and trims the email
func (c *Credentials) Normalize() {
	c.Email = NormalizeEmail(c.Email)
}

// Validate for validating Credentials struct. The rune based max tag cannot
// see the bcrypt limit, so the byte length is checked separately.
func (c *Credentials) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}
	if len(c.Password) > MaxPasswordBytes {
		return fmt.Errorf("validation failed: [Field: Password, Tag: max_bytes]")
	}
	return nil
}

// NormalizeEmail is the canonical stored form of an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Principal is the authenticated caller of a request
type Principal struct {
	UserID string
	Email  string
	Role   string
}

// Token is an issued access token
type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func validateStruct(s any) error {
	validate := validator.New()
	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}
