//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/profiles"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepository_GetByUserID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.ProfileRepo.GetByUserID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, profiles.ErrProfileNotFound)
}

func TestProfileRepository_Upsert(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	background := context.Background()

	userID := uuid.NewString()
	created := time.Now().UTC().Truncate(time.Second)
	style := "casual"
	profile := &profiles.UserProfile{UserID: userID, StylePreference: &style, CreatedAt: created, UpdatedAt: created}
	require.NoError(t, ctx.ProfileRepo.Upsert(background, profile))

	size := "L"
	update := &profiles.UserProfile{UserID: userID, SizeTop: &size, CreatedAt: created.Add(time.Hour), UpdatedAt: created.Add(time.Hour)}
	require.NoError(t, ctx.ProfileRepo.Upsert(background, update))

	stored, err := ctx.ProfileRepo.GetByUserID(background, userID)
	require.NoError(t, err)
	assert.Nil(t, stored.StylePreference, "upsert replaces the whole row")
	assert.Equal(t, "L", *stored.SizeTop)
	assert.True(t, stored.CreatedAt.Equal(created), "created_at is kept on conflict")
	assert.True(t, stored.UpdatedAt.Equal(created.Add(time.Hour)))

	var count int64
	require.NoError(t, ctx.DB.Table("user_profiles").Where("user_id = ?", userID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestProfileRepository_Upsert_RequiresUser(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	assert.Error(t, ctx.ProfileRepo.Upsert(context.Background(), &profiles.UserProfile{}))
}
