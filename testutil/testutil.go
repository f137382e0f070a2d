// Package testutil はテスト用のデータベースとフィクスチャを提供する
package testutil

import (
	"fmt"
	"gin-ratings/infra"
	"gin-ratings/models"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// NewTestDB はテストごとに独立したインメモリSQLiteを作成し、マイグレーション済みで返す
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := infra.OpenSQLite(dsn)
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func CreateRole(t *testing.T, db *gorm.DB, name string) models.Role {
	t.Helper()

	role := models.Role{Name: name}
	require.NoError(t, db.Create(&role).Error)
	return role
}

// CreateUser はパスワードをハッシュ化してユーザーを作成する
func CreateUser(t *testing.T, db *gorm.DB, username, email, password string, roles ...models.Role) models.User {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Roles:        roles,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func CreateReview(t *testing.T, db *gorm.DB, userID uint, content string) models.Review {
	t.Helper()

	review := models.Review{UserID: userID, Content: content}
	require.NoError(t, db.Omit("User").Create(&review).Error)
	return review
}
