package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/accounts"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/logger"

	"github.com/google/uuid"
)

// accountService implements the AccountService interface
type accountService struct {
	accountRepository accounts.AccountRepository
	tokenService      accounts.TokenService
	hasher            accounts.PasswordHasher
	logger            logger.Logger
}

// NewAccountService creates a new instance of AccountService
func NewAccountService(
	accountRepository accounts.AccountRepository,
	tokenService accounts.TokenService,
	hasher accounts.PasswordHasher,
	logger logger.Logger,
) (accounts.AccountService, error) {
	return &accountService{
		accountRepository: accountRepository,
		tokenService:      tokenService,
		hasher:            hasher,
		logger:            logger,
	}, nil
}

// Signup registers a new account and signs it in
func (s *accountService) Signup(ctx context.Context, credentials *accounts.Credentials) (*accounts.Account, *accounts.Token, error) {
	if credentials == nil {
		return nil, nil, accounts.ErrInvalidSignup
	}
	credentials.Normalize()
	if err := credentials.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", accounts.ErrInvalidSignup, err)
	}

	hash, err := s.hasher.Hash(credentials.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &accounts.Account{
		ID:           uuid.NewString(),
		Email:        credentials.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.accountRepository.Create(ctx, account); err != nil {
		return nil, nil, fmt.Errorf("failed to create account: %w", err)
	}

	token, err := s.tokenService.Issue(account)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("account created", "user_id", account.ID)
	return account, token, nil
}

// Login verifies the credentials and issues a token
func (s *accountService) Login(ctx context.Context, credentials *accounts.Credentials) (*accounts.Account, *accounts.Token, error) {
	if credentials == nil {
		return nil, nil, accounts.ErrInvalidCredentials
	}
	credentials.Normalize()
	if credentials.Email == "" || credentials.Password == "" {
		return nil, nil, accounts.ErrInvalidCredentials
	}

	account, err := s.accountRepository.GetByEmail(ctx, credentials.Email)
	if err != nil {
		if errors.Is(err, accounts.ErrAccountNotFound) {
			return nil, nil, accounts.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to fetch account: %w", err)
	}

	if err := s.hasher.Compare(account.PasswordHash, credentials.Password); err != nil {
		s.logger.Warn("failed login attempt", "user_id", account.ID)
		return nil, nil, accounts.ErrInvalidCredentials
	}

	token, err := s.tokenService.Issue(account)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return account, token, nil
}
