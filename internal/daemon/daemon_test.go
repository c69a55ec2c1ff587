package daemon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gojira/gojira/internal/auth"
	"github.com/gojira/gojira/internal/config"
	"github.com/gojira/gojira/internal/db/models"
)

func sqliteConfig() *config.Config {
	return &config.Config{
		DB: config.DB{GormEngine: config.EngineSQLite, Name: ":memory:"},
	}
}

func TestOpenMigrateSeed(t *testing.T) {
	cfg := sqliteConfig()

	db, err := OpenDB(cfg)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	require.NoError(t, seed(db))
	require.NoError(t, seed(db))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	user, err := auth.NewLocalProvider(db).Authenticate(seedAdminUser, seedAdminPassword)
	require.NoError(t, err)
	assert.True(t, user.IsStaff())
	assert.True(t, user.IsAuthenticated())
}

func TestSessionStorage_SQLiteIsMemory(t *testing.T) {
	assert.Nil(t, SessionStorage(sqliteConfig()))
}

func TestNew_NilConfig(t *testing.T) {
	d, err := New(nil)
	assert.Error(t, err)
	assert.Nil(t, d)
}
