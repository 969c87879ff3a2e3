package db_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/YahyaBCR/car-rental-BO-sub000/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInitDB verifies that InitDB creates the database file and its directory.
func TestInitDB(t *testing.T) {
	originalPath := db.Path
	defer func() { db.Path = originalPath }()

	db.Path = filepath.Join(t.TempDir(), "store", "rentadmin.db")
	require.NoError(t, db.InitDB())
	defer func() { require.NoError(t, db.CloseDB()) }()

	_, err := os.Stat(db.Path)
	assert.NoError(t, err, "database file should exist after InitDB")
	assert.NotNil(t, db.Db)
}
