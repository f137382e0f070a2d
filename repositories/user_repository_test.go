package repositories

import (
	"errors"
	"gin-ratings/models"
	"gin-ratings/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository_CreateWithRoles(t *testing.T) {
	db := testutil.NewTestDB(t)
	admin := testutil.CreateRole(t, db, "Admin")
	user := testutil.CreateRole(t, db, "User")
	repository := NewUserRepository(db)

	created, err := repository.Create(models.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Roles:        []models.Role{user, admin},
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	require.Len(t, created.Roles, 2)
	// ロールはID順に読み込まれる
	assert.Equal(t, "Admin", created.Roles[0].Name)
	assert.Equal(t, "Admin", created.PrimaryRole())

	var roleCount int64
	require.NoError(t, db.Model(&models.Role{}).Count(&roleCount).Error)
	assert.Equal(t, int64(2), roleCount)
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	db := testutil.NewTestDB(t)
	repository := NewUserRepository(db)
	testutil.CreateUser(t, db, "alice", "alice@example.com", "password")

	tests := []struct {
		name  string
		input models.User
	}{
		{name: "duplicate email", input: models.User{Username: "other", Email: "alice@example.com", PasswordHash: "hash"}},
		{name: "duplicate username", input: models.User{Username: "alice", Email: "other@example.com", PasswordHash: "hash"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repository.Create(tt.input)
			require.Error(t, err)
			assert.True(t, IsDuplicateKey(err), "unexpected error: %v", err)

			var count int64
			require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
			assert.Equal(t, int64(1), count)
		})
	}
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db := testutil.NewTestDB(t)
	role := testutil.CreateRole(t, db, "User")
	testutil.CreateUser(t, db, "alice", "alice@example.com", "password", role)
	repository := NewUserRepository(db)

	found, err := repository.FindByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)
	assert.Equal(t, []string{"User"}, found.RoleNames())

	_, err = repository.FindByEmail("nobody@example.com")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestUserRepository_UpdateReplacesRoles(t *testing.T) {
	db := testutil.NewTestDB(t)
	admin := testutil.CreateRole(t, db, "Admin")
	userRole := testutil.CreateRole(t, db, "User")
	user := testutil.CreateUser(t, db, "alice", "alice@example.com", "password", admin)
	repository := NewUserRepository(db)

	target, err := repository.FindById(user.ID)
	require.NoError(t, err)

	updated, err := repository.Update(target, map[string]interface{}{"username": "alice2"}, []models.Role{userRole})
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, "alice@example.com", updated.Email)
	assert.Equal(t, []string{"User"}, updated.RoleNames())
}

func TestUserRepository_UpdateKeepsRolesWhenNil(t *testing.T) {
	db := testutil.NewTestDB(t)
	admin := testutil.CreateRole(t, db, "Admin")
	user := testutil.CreateUser(t, db, "alice", "alice@example.com", "password", admin)
	repository := NewUserRepository(db)

	target, err := repository.FindById(user.ID)
	require.NoError(t, err)

	updated, err := repository.Update(target, map[string]interface{}{"email": "new@example.com"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, []string{"Admin"}, updated.RoleNames())
}

func TestUserRepository_UpdateDuplicateEmail(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.CreateUser(t, db, "alice", "alice@example.com", "password")
	bob := testutil.CreateUser(t, db, "bob", "bob@example.com", "password")
	repository := NewUserRepository(db)

	_, err := repository.Update(&bob, map[string]interface{}{"email": "alice@example.com"}, nil)
	require.Error(t, err)
	assert.True(t, IsDuplicateKey(err))
}

func TestUserRepository_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	role := testutil.CreateRole(t, db, "Admin")
	user := testutil.CreateUser(t, db, "alice", "alice@example.com", "password", role)
	repository := NewUserRepository(db)

	require.NoError(t, repository.Delete(user.ID))

	_, err := repository.FindById(user.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	var links int64
	require.NoError(t, db.Table("user_roles").Where("user_id = ?", user.ID).Count(&links).Error)
	assert.Zero(t, links)

	// ロール自体は残る
	_, err = NewRoleRepository(db).FindById(role.ID)
	assert.NoError(t, err)
}

func TestUserRepository_DeleteNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repository := NewUserRepository(db)

	err := repository.Delete(999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestUserRepository_DeleteWithReviewsViolatesForeignKey(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "alice", "alice@example.com", "password")
	testutil.CreateReview(t, db, user.ID, "great")
	repository := NewUserRepository(db)

	count, err := repository.CountReviews(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	err = repository.Delete(user.ID)
	require.Error(t, err)
	assert.True(t, IsForeignKeyViolation(err), "unexpected error: %v", err)

	_, err = repository.FindById(user.ID)
	assert.NoError(t, err)
}
