package services_test

import (
	"path/filepath"
	"testing"

	"catatan/app/models"
	"catatan/app/repo"
	"catatan/app/services"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Note{}))
	return db
}

func newUserService(t *testing.T) (*services.UserService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return services.NewUserService(repo.NewUserRepository(db)), db
}

func newNoteService(t *testing.T) (*services.NoteService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return services.NewNoteService(repo.NewNoteRepository(db)), db
}
