//go:build unit
// +build unit

package app

import (
	"context"
	"time"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/accounts"
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/clothing"
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/profiles"
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/weather"

	"github.com/stretchr/testify/mock"
)

// MockClothingItemRepository is a mock implementation of ClothingItemRepository
type MockClothingItemRepository struct {
	mock.Mock
}

func (m *MockClothingItemRepository) Create(ctx context.Context, item *clothing.ClothingItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockClothingItemRepository) List(ctx context.Context, userID string, query *clothing.ClothingItemQuery) ([]*clothing.ClothingItem, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*clothing.ClothingItem), args.Error(1)
}

func (m *MockClothingItemRepository) GetByID(ctx context.Context, userID, itemID string) (*clothing.ClothingItem, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clothing.ClothingItem), args.Error(1)
}

func (m *MockClothingItemRepository) DeleteByID(ctx context.Context, userID, itemID string) error {
	args := m.Called(ctx, userID, itemID)
	return args.Error(0)
}

// MockPhotoConnector is a mock implementation of PhotoConnector
type MockPhotoConnector struct {
	mock.Mock
}

func (m *MockPhotoConnector) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	args := m.Called(ctx, path, data, contentType)
	return args.Error(0)
}

func (m *MockPhotoConnector) Download(ctx context.Context, path string) (*clothing.Photo, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clothing.Photo), args.Error(1)
}

func (m *MockPhotoConnector) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

// MockProfileRepository is a mock implementation of ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID string) (*profiles.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profiles.UserProfile), args.Error(1)
}

func (m *MockProfileRepository) Upsert(ctx context.Context, profile *profiles.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// MockWeatherProvider is a mock implementation of weather.Provider
type MockWeatherProvider struct {
	mock.Mock
}

func (m *MockWeatherProvider) Current(ctx context.Context, city string) (*weather.Observation, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*weather.Observation), args.Error(1)
}

// MockWeatherCache is a mock implementation of weather.Cache
type MockWeatherCache struct {
	mock.Mock
}

func (m *MockWeatherCache) Get(ctx context.Context, city string) (*weather.Observation, bool, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*weather.Observation), args.Bool(1), args.Error(2)
}

func (m *MockWeatherCache) Set(ctx context.Context, city string, obs *weather.Observation, ttl time.Duration) error {
	args := m.Called(ctx, city, obs, ttl)
	return args.Error(0)
}

// MockWeatherService is a mock implementation of WeatherService
type MockWeatherService struct {
	mock.Mock
}

func (m *MockWeatherService) Current(ctx context.Context, city string) (*weather.Report, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*weather.Report), args.Error(1)
}

// MockStylist is a mock implementation of outfits.Stylist
type MockStylist struct {
	mock.Mock
}

func (m *MockStylist) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockAccountRepository is a mock implementation of AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, account *accounts.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) GetByEmail(ctx context.Context, email string) (*accounts.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Account), args.Error(1)
}

// MockTokenService is a mock implementation of TokenService
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(account *accounts.Account) (*accounts.Token, error) {
	args := m.Called(account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Token), args.Error(1)
}

func (m *MockTokenService) Verify(token string) (*accounts.Principal, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Principal), args.Error(1)
}

// MockPasswordHasher is a mock implementation of PasswordHasher
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) error {
	args := m.Called(hash, password)
	return args.Error(0)
}
