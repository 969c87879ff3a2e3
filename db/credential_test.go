package db_test

import (
	"context"
	"testing"

	"github.com/YahyaBCR/car-rental-BO-sub000/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB sets up an in-memory SQLite database for testing purposes.
func setupTestDB(t *testing.T) *gorm.DB {
	dbObject, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dbObject.AutoMigrate(&db.Credential{}))
	return dbObject
}

func TestCredentialRepository_GetMissingKeyReturnsEmpty(t *testing.T) {
	repo := db.NewCredentialRepository(setupTestDB(t))

	value, err := repo.Get(context.Background(), db.KeyAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestCredentialRepository_SetThenGet(t *testing.T) {
	repo := db.NewCredentialRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, db.KeyAccessToken, "A1"))

	value, err := repo.Get(ctx, db.KeyAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "A1", value)
}

func TestCredentialRepository_SetOverwritesExistingValue(t *testing.T) {
	repo := db.NewCredentialRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, db.KeyRefreshToken, "R1"))
	require.NoError(t, repo.Set(ctx, db.KeyRefreshToken, "R2"))

	value, err := repo.Get(ctx, db.KeyRefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "R2", value)
}

func TestCredentialRepository_SetManyWritesAllEntries(t *testing.T) {
	repo := db.NewCredentialRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, db.KeyAccessToken, "A1"))
	require.NoError(t, repo.Set(ctx, db.KeyRefreshToken, "R1"))

	require.NoError(t, repo.SetMany(ctx, map[string]string{
		db.KeyAccessToken:  "A2",
		db.KeyRefreshToken: "R2",
	}))

	access, err := repo.Get(ctx, db.KeyAccessToken)
	require.NoError(t, err)
	refresh, err := repo.Get(ctx, db.KeyRefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "A2", access)
	assert.Equal(t, "R2", refresh)
}

func TestCredentialRepository_ClearRemovesAdminKeys(t *testing.T) {
	repo := db.NewCredentialRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SetMany(ctx, map[string]string{
		db.KeyAccessToken:  "A1",
		db.KeyRefreshToken: "R1",
		db.KeyUser:         `{"id":"u1"}`,
	}))
	require.NoError(t, repo.Clear(ctx))

	for _, key := range []string{db.KeyAccessToken, db.KeyRefreshToken, db.KeyUser} {
		value, err := repo.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "", value, "key %s should be cleared", key)
	}
}

func TestCredentialRepository_UninitializedDB(t *testing.T) {
	repo := db.NewCredentialRepository(nil)
	ctx := context.Background()

	_, err := repo.Get(ctx, db.KeyAccessToken)
	assert.Error(t, err)
	assert.Error(t, repo.Set(ctx, db.KeyAccessToken, "A1"))
	assert.Error(t, repo.SetMany(ctx, map[string]string{db.KeyAccessToken: "A1"}))
	assert.Error(t, repo.Clear(ctx))
}
