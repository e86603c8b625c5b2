package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kztJames01/makerSpace/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Team{},
		&model.TeamMember{},
		&model.Project{},
		&model.Task{},
		&model.Note{},
		&model.Channel{},
		&model.Message{},
		&model.AIMessage{},
		&model.Post{},
	))
	return db
}

func createTestUser(t *testing.T, auth *AuthService, email string) *model.User {
	t.Helper()
	user, _, _, err := auth.SignUp("Test", "User", email, "password123", "password123")
	require.NoError(t, err)
	return user
}
