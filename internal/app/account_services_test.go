//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/accounts"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAccountFixture(t *testing.T) (accounts.AccountService, *MockAccountRepository, *MockTokenService, *MockPasswordHasher) {
	t.Helper()
	repo := new(MockAccountRepository)
	tokens := new(MockTokenService)
	hasher := new(MockPasswordHasher)
	svc, err := NewAccountService(repo, tokens, hasher, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return svc, repo, tokens, hasher
}

func TestAccountService_Signup(t *testing.T) {
	ctx := context.Background()
	token := &accounts.Token{AccessToken: "jwt", TokenType: "bearer", ExpiresAt: time.Now().Add(time.Hour)}

	t.Run("creates account", func(t *testing.T) {
		svc, repo, tokens, hasher := newAccountFixture(t)
		hasher.On("Hash", "correct horse").Return("hashed", nil)
		repo.On("Create", ctx, mock.MatchedBy(func(a *accounts.Account) bool {
			return a.Email == "ada@example.com" && a.PasswordHash == "hashed"
		})).Return(nil)
		tokens.On("Issue", mock.Anything).Return(token, nil)

		account, issued, err := svc.Signup(ctx, &accounts.Credentials{Email: " Ada@Example.com", Password: "correct horse"})
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", account.Email)
		assert.Equal(t, token, issued)
	})

	t.Run("invalid input", func(t *testing.T) {
		svc, repo, _, _ := newAccountFixture(t)
		_, _, err := svc.Signup(ctx, &accounts.Credentials{Email: "ada@example.com", Password: "short"})
		assert.ErrorIs(t, err, accounts.ErrInvalidSignup)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("password over 72 bytes", func(t *testing.T) {
		svc, repo, _, hasher := newAccountFixture(t)
		_, _, err := svc.Signup(ctx, &accounts.Credentials{Email: "ada@example.com", Password: strings.Repeat("é", 40)})
		assert.ErrorIs(t, err, accounts.ErrInvalidSignup)
		hasher.AssertNotCalled(t, "Hash", mock.Anything)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, repo, _, hasher := newAccountFixture(t)
		hasher.On("Hash", mock.Anything).Return("hashed", nil)
		repo.On("Create", ctx, mock.Anything).Return(accounts.ErrEmailTaken)

		_, _, err := svc.Signup(ctx, &accounts.Credentials{Email: "ada@example.com", Password: "correct horse"})
		assert.ErrorIs(t, err, accounts.ErrEmailTaken)
	})
}

func TestAccountService_Login(t *testing.T) {
	ctx := context.Background()
	stored := &accounts.Account{ID: "u1", Email: "ada@example.com", PasswordHash: "hashed"}

	t.Run("valid credentials", func(t *testing.T) {
		svc, repo, tokens, hasher := newAccountFixture(t)
		repo.On("GetByEmail", ctx, "ada@example.com").Return(stored, nil)
		hasher.On("Compare", "hashed", "correct horse").Return(nil)
		tokens.On("Issue", stored).Return(&accounts.Token{AccessToken: "jwt"}, nil)

		account, token, err := svc.Login(ctx, &accounts.Credentials{Email: "ADA@example.com", Password: "correct horse"})
		require.NoError(t, err)
		assert.Equal(t, "u1", account.ID)
		assert.Equal(t, "jwt", token.AccessToken)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, repo, _, _ := newAccountFixture(t)
		repo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, accounts.ErrAccountNotFound)

		_, _, err := svc.Login(ctx, &accounts.Credentials{Email: "nobody@example.com", Password: "whatever1"})
		assert.ErrorIs(t, err, accounts.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, repo, tokens, hasher := newAccountFixture(t)
		repo.On("GetByEmail", ctx, "ada@example.com").Return(stored, nil)
		hasher.On("Compare", "hashed", "wrong pass").Return(errors.New("mismatch"))

		_, _, err := svc.Login(ctx, &accounts.Credentials{Email: "ada@example.com", Password: "wrong pass"})
		assert.ErrorIs(t, err, accounts.ErrInvalidCredentials)
		tokens.AssertNotCalled(t, "Issue")
	})

	t.Run("repository failure", func(t *testing.T) {
		svc, repo, _, _ := newAccountFixture(t)
		repo.On("GetByEmail", ctx, "ada@example.com").Return(nil, errors.New("db down"))

		_, _, err := svc.Login(ctx, &accounts.Credentials{Email: "ada@example.com", Password: "correct horse"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, accounts.ErrInvalidCredentials)
	})
}
