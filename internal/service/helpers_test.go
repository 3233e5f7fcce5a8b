package service

import (
	"context"
	"testing"

	"anoa.com/redsocial/internal/model"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A pooled second connection would see its own empty :memory: database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Follow{},
		&model.Publication{},
		&model.Message{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, nickname string) *model.User {
	t.Helper()

	user := &model.User{
		Name:     nickname,
		Surname:  "Test",
		Nickname: nickname,
		Email:    nickname + "@example.com",
		Password: "irrelevant",
		Role:     model.RoleUser,
	}
	require.NoError(t, db.Create(user).Error)

	return user
}

func seedUserWithPassword(t *testing.T, db *gorm.DB, nickname, password string) *model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &model.User{
		Name:     nickname,
		Surname:  "Test",
		Nickname: nickname,
		Email:    nickname + "@example.com",
		Password: string(hash),
		Role:     model.RoleUser,
	}
	require.NoError(t, db.Create(user).Error)

	return user
}

func testCtx() context.Context {
	return context.Background()
}
