//go:build integration
// +build integration

package app

import (
	"testing"
	"time"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/accounts"
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/clothing"
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/profiles"
	"github.com/CharlieZimmermann/wardrobe-app/internal/infrastructure/auth"
	"github.com/CharlieZimmermann/wardrobe-app/internal/infrastructure/connector"
	"github.com/CharlieZimmermann/wardrobe-app/internal/infrastructure/persistence"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/config"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestJWTSecret signs tokens issued during integration tests
const TestJWTSecret = "integration-test-secret-0123456789abcdef"

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	// Clothing services
	ClothingUploadService   clothing.ClothingUploadService
	ClothingMetadataService clothing.ClothingMetadataService
	ClothingPhotoService    clothing.ClothingPhotoService

	ProfileService profiles.ProfileService

	// Account services
	AccountService accounts.AccountService
	TokenService   accounts.TokenService

	// Infrastructure
	PhotoConnector clothing.PhotoConnector
	DBContext      *persistence.TestContext
}

// SetupTestServices wires the services against a fresh database and a temporary photo directory
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	photoConnector, err := connector.NewLocalPhotoConnector(&config.PhotoStorageSettings{
		Provider:       config.LocalStorageProvider,
		LocalPath:      t.TempDir(),
		MaxUploadBytes: DefaultMaxPhotoBytes,
	}, logger)
	require.NoError(t, err, "Failed to create photo connector")

	tokenService, err := auth.NewJWTTokenService(&config.AuthSettings{
		JWTSecret: TestJWTSecret,
		Issuer:    "wardrobe-app-test",
		Audience:  accounts.RoleAuthenticated,
		TokenTTL:  time.Hour,
	})
	require.NoError(t, err, "Failed to create token service")

	uploadService, err := NewClothingUploadService(photoConnector, dbContext.ItemRepo, DefaultMaxPhotoBytes, logger)
	require.NoError(t, err, "Failed to create ClothingUploadService")

	metadataService, err := NewClothingMetadataService(dbContext.ItemRepo, photoConnector, logger)
	require.NoError(t, err, "Failed to create ClothingMetadataService")

	photoService, err := NewClothingPhotoService(dbContext.ItemRepo, photoConnector, logger)
	require.NoError(t, err, "Failed to create ClothingPhotoService")

	profileService, err := NewProfileService(dbContext.ProfileRepo, logger)
	require.NoError(t, err, "Failed to create ProfileService")

	accountService, err := NewAccountService(dbContext.AccountRepo, tokenService, auth.NewBcryptHasher(bcrypt.MinCost), logger)
	require.NoError(t, err, "Failed to create AccountService")

	return &TestServices{
		ClothingUploadService:   uploadService,
		ClothingMetadataService: metadataService,
		ClothingPhotoService:    photoService,
		ProfileService:          profileService,
		AccountService:          accountService,
		TokenService:            tokenService,
		PhotoConnector:          photoConnector,
		DBContext:               dbContext,
	}
}
