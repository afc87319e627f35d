//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/accounts"
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/clothing"
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/profiles"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/config"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB          *gorm.DB
	ItemRepo    clothing.ClothingItemRepository
	ProfileRepo profiles.ProfileRepository
	AccountRepo accounts.AccountRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)

	itemRepo, err := NewGormClothingItemRepository(db, logger)
	require.NoError(t, err, "Failed to create clothing item repository")

	profileRepo, err := NewGormProfileRepository(db, logger)
	require.NoError(t, err, "Failed to create profile repository")

	accountRepo, err := NewGormAccountRepository(db, logger)
	require.NoError(t, err, "Failed to create account repository")

	return &TestContext{
		DB:          db,
		ItemRepo:    itemRepo,
		ProfileRepo: profileRepo,
		AccountRepo: accountRepo,
	}
}

// CreateTestItem creates a valid clothing item owned by userID
func CreateTestItem(t *testing.T, userID, itemType string, createdAt time.Time) *clothing.ClothingItem {
	t.Helper()

	return &clothing.ClothingItem{
		ID:        uuid.NewString(),
		UserID:    userID,
		PhotoURL:  clothing.PhotoPath(userID, uuid.NewString()+".png"),
		ItemType:  itemType,
		StyleTags: []string{"casual"},
		CreatedAt: createdAt,
	}
}
