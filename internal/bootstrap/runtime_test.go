package bootstrap

import (
	"testing"

	"atrium/internal/config"
	"atrium/internal/models"
	"atrium/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestEnsureDevRootAdmin_DisabledIsNoop(t *testing.T) {
	db := testutil.NewTestDB(t)

	cfg := &config.Config{Env: "development", DevBootstrapRoot: false}
	require.NoError(t, ensureDevRootAdmin(cfg, db))

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Zero(t, count)
}

func TestEnsureDevRootAdmin_NotInProduction(t *testing.T) {
	db := testutil.NewTestDB(t)

	cfg := &config.Config{Env: "production", DevBootstrapRoot: true, DevRootPassword: "rootpass123"}
	require.NoError(t, ensureDevRootAdmin(cfg, db))

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Zero(t, count)
}

func TestEnsureDevRootAdmin_CreatesRoot(t *testing.T) {
	db := testutil.NewTestDB(t)

	cfg := &config.Config{
		Env:              "development",
		DevBootstrapRoot: true,
		DevRootUsername:  "root",
		DevRootPassword:  "rootpass123",
	}
	require.NoError(t, ensureDevRootAdmin(cfg, db))

	var root models.User
	require.NoError(t, db.First(&root, 1).Error)
	assert.Equal(t, "root", root.Username)
	assert.True(t, root.IsAdmin)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(root.Password), []byte("rootpass123")))
}

func TestEnsureDevRootAdmin_RepairsExistingUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	require.NoError(t, db.Create(&models.User{ID: 1, Username: "existing", Password: "x", IsAdmin: false}).Error)

	cfg := &config.Config{
		Env:              "development",
		DevBootstrapRoot: true,
		DevRootPassword:  "rootpass123",
	}
	require.NoError(t, ensureDevRootAdmin(cfg, db))

	var root models.User
	require.NoError(t, db.First(&root, 1).Error)
	assert.Equal(t, "existing", root.Username, "existing account keeps its username")
	assert.True(t, root.IsAdmin)
}

func TestEnsureDevRootAdmin_RequiresPassword(t *testing.T) {
	db := testutil.NewTestDB(t)

	cfg := &config.Config{Env: "development", DevBootstrapRoot: true}
	assert.Error(t, ensureDevRootAdmin(cfg, db))
}
