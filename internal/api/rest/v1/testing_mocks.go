//go:build unit
// +build unit

package v1

import (
	"context"
	"mime/multipart"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/accounts"
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/clothing"
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/outfits"
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/profiles"
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/weather"

	"github.com/stretchr/testify/mock"
)

// MockClothingUploadService is a mock implementation of ClothingUploadService
type MockClothingUploadService struct {
	mock.Mock
}

func (m *MockClothingUploadService) Upload(ctx context.Context, userID string, input *clothing.ClothingItemInput, photo *multipart.FileHeader) (*clothing.ClothingItem, error) {
	args := m.Called(ctx, userID, input, photo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clothing.ClothingItem), args.Error(1)
}

// MockClothingMetadataService is a mock implementation of ClothingMetadataService
type MockClothingMetadataService struct {
	mock.Mock
}

func (m *MockClothingMetadataService) List(ctx context.Context, userID string, query *clothing.ClothingItemQuery) ([]*clothing.ClothingItem, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*clothing.ClothingItem), args.Error(1)
}

func (m *MockClothingMetadataService) GetByID(ctx context.Context, userID, itemID string) (*clothing.ClothingItem, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clothing.ClothingItem), args.Error(1)
}

func (m *MockClothingMetadataService) DeleteByID(ctx context.Context, userID, itemID string) error {
	args := m.Called(ctx, userID, itemID)
	return args.Error(0)
}

// MockClothingPhotoService is a mock implementation of ClothingPhotoService
type MockClothingPhotoService struct {
	mock.Mock
}

func (m *MockClothingPhotoService) DownloadByID(ctx context.Context, userID, itemID string) (*clothing.Photo, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clothing.Photo), args.Error(1)
}

// MockProfileService is a mock implementation of ProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Get(ctx context.Context, userID string) (*profiles.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profiles.UserProfile), args.Error(1)
}

func (m *MockProfileService) Update(ctx context.Context, userID string, update *profiles.ProfileUpdate) (*profiles.UserProfile, error) {
	args := m.Called(ctx, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profiles.UserProfile), args.Error(1)
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

// MockOutfitService is a mock implementation of OutfitService
type MockOutfitService struct {
	mock.Mock
}

func (m *MockOutfitService) Generate(ctx context.Context, userID, city string) (*outfits.Suggestion, error) {
	args := m.Called(ctx, userID, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*outfits.Suggestion), args.Error(1)
}

func (m *MockOutfitService) Prompt(ctx context.Context, userID, city string) (string, error) {
	args := m.Called(ctx, userID, city)
	return args.String(0), args.Error(1)
}

func (m *MockOutfitService) FindGaps(ctx context.Context, userID string) (*outfits.GapReport, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*outfits.GapReport), args.Error(1)
}

// MockAccountService is a mock implementation of AccountService
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Signup(ctx context.Context, credentials *accounts.Credentials) (*accounts.Account, *accounts.Token, error) {
	args := m.Called(ctx, credentials)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*accounts.Account), args.Get(1).(*accounts.Token), args.Error(2)
}

func (m *MockAccountService) Login(ctx context.Context, credentials *accounts.Credentials) (*accounts.Account, *accounts.Token, error) {
	args := m.Called(ctx, credentials)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*accounts.Account), args.Get(1).(*accounts.Token), args.Error(2)
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
