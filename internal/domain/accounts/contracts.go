package accounts

import "context"

// AccountService defines methods for registering and signing in local accounts
type AccountService interface {
	// Signup creates an account and returns a token for it. Returns ErrEmailTaken for duplicates.
	Signup(ctx context.Context, credentials *Credentials) (*Account, *Token, error)

	// Login returns ErrInvalidCredentials for unknown emails and wrong passwords alike.
	Login(ctx context.Context, credentials *Credentials) (*Account, *Token, error)
}

// AccountRepository defines the persistence operations for accounts
type AccountRepository interface {
	// Create returns ErrEmailTaken when the email is already stored.
	Create(ctx context.Context, account *Account) error
	GetByEmail(ctx context.Context, email string) (*Account, error)
}

// TokenService issues and verifies access tokens
type TokenService interface {
	Issue(account *Account) (*Token, error)

	// Verify returns ErrSecretNotConfigured, ErrInvalidToken or ErrMissingSubject on failure.
	Verify(token string) (*Principal, error)
}

// PasswordHasher hashes and compares passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
