package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/accounts"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType is the scheme returned alongside issued tokens
const TokenType = "bearer"

// Claims are the registered claims plus the email and role fields set by the auth provider
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTTokenService implements accounts.TokenService with a shared HMAC secret
type JWTTokenService struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

// NewJWTTokenService creates a token service. An empty secret is accepted so that the
// server can boot; every Issue and Verify then fails with accounts.ErrSecretNotConfigured.
func NewJWTTokenService(settings *config.AuthSettings) (*JWTTokenService, error) {
	if settings == nil {
		return nil, fmt.Errorf("auth settings are required")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &JWTTokenService{
		secret:   []byte(settings.JWTSecret),
		issuer:   settings.Issuer,
		audience: settings.Audience,
		ttl:      settings.TokenTTL,
		now:      time.Now,
	}, nil
}

// Issue signs a token for the account
func (s *JWTTokenService) Issue(account *accounts.Account) (*accounts.Token, error) {
	if len(s.secret) == 0 {
		return nil, accounts.ErrSecretNotConfigured
	}
	if account == nil || account.ID == "" {
		return nil, accounts.ErrMissingSubject
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := Claims{
		Email: account.Email,
		Role:  accounts.RoleAuthenticated,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &accounts.Token{
		AccessToken: signed,
		TokenType:   TokenType,
		ExpiresAt:   expiresAt.UTC(),
	}, nil
}

// Verify checks signature, expiry and audience and returns the principal
func (s *JWTTokenService) Verify(token string) (*accounts.Principal, error) {
	if len(s.secret) == 0 {
		return nil, accounts.ErrSecretNotConfigured
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	var claims Claims
	_, err := parser.ParseWithClaims(strings.TrimSpace(token), &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", accounts.ErrInvalidToken, err)
	}

	if strings.TrimSpace(claims.Subject) == "" {
		return nil, accounts.ErrMissingSubject
	}

	role := claims.Role
	if role == "" {
		role = accounts.RoleAuthenticated
	}

	return &accounts.Principal{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   role,
	}, nil
}

// IsConfigured reports whether a secret is set
func (s *JWTTokenService) IsConfigured() bool {
	return len(s.secret) > 0
}

var _ accounts.TokenService = (*JWTTokenService)(nil)
